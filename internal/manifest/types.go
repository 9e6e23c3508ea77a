package manifest

// Manifest maps the fields of appsscript.json this tool reads or writes.
// The file is owned by the script project; scriptctl only ever touches the
// advanced-service declarations.
type Manifest struct {
	TimeZone         string        `json:"timeZone,omitempty"`
	RuntimeVersion   string        `json:"runtimeVersion,omitempty"`
	ExceptionLogging string        `json:"exceptionLogging,omitempty"`
	OauthScopes      []string      `json:"oauthScopes,omitempty"`
	Dependencies     *Dependencies `json:"dependencies,omitempty"`
	Webapp           *Webapp       `json:"webapp,omitempty"`
	ExecutionAPI     *ExecutionAPI `json:"executionApi,omitempty"`
}

// Dependencies declares the libraries and advanced services a script uses.
type Dependencies struct {
	Libraries               []Library         `json:"libraries,omitempty"`
	EnabledAdvancedServices []AdvancedService `json:"enabledAdvancedServices,omitempty"`
}

// Library is a script library dependency.
type Library struct {
	UserSymbol      string `json:"userSymbol"`
	LibraryID       string `json:"libraryId"`
	Version         string `json:"version"`
	DevelopmentMode bool   `json:"developmentMode,omitempty"`
}

// AdvancedService is one advanced-service declaration.
type AdvancedService struct {
	UserSymbol string `json:"userSymbol"`
	ServiceID  string `json:"serviceId"`
	Version    string `json:"version"`
}

// Webapp holds web app deployment settings.
type Webapp struct {
	Access    string `json:"access,omitempty"`
	ExecuteAs string `json:"executeAs,omitempty"`
}

// ExecutionAPI holds API executable deployment settings.
type ExecutionAPI struct {
	Access string `json:"access,omitempty"`
}
