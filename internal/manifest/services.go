package manifest

// publicAdvancedServices lists the Google APIs a script can declare as an
// advanced service, with the symbol and version the manifest declaration
// needs. Keyed by the service name as used in the registry (the part before
// .googleapis.com).
var publicAdvancedServices = []AdvancedService{
	{UserSymbol: "AdminDirectory", ServiceID: "admin", Version: "directory_v1"},
	{UserSymbol: "Analytics", ServiceID: "analytics", Version: "v3"},
	{UserSymbol: "BigQuery", ServiceID: "bigquery", Version: "v2"},
	{UserSymbol: "Calendar", ServiceID: "calendar", Version: "v3"},
	{UserSymbol: "Classroom", ServiceID: "classroom", Version: "v1"},
	{UserSymbol: "Docs", ServiceID: "docs", Version: "v1"},
	{UserSymbol: "Drive", ServiceID: "drive", Version: "v2"},
	{UserSymbol: "DriveActivity", ServiceID: "driveactivity", Version: "v2"},
	{UserSymbol: "Gmail", ServiceID: "gmail", Version: "v1"},
	{UserSymbol: "People", ServiceID: "peopleapi", Version: "v1"},
	{UserSymbol: "Sheets", ServiceID: "sheets", Version: "v4"},
	{UserSymbol: "Slides", ServiceID: "slides", Version: "v1"},
	{UserSymbol: "Tasks", ServiceID: "tasks", Version: "v1"},
	{UserSymbol: "YouTube", ServiceID: "youtube", Version: "v3"},
}

// AdvancedServices returns the known public advanced services.
func AdvancedServices() []AdvancedService {
	out := make([]AdvancedService, len(publicAdvancedServices))
	copy(out, publicAdvancedServices)
	return out
}

// LookupAdvancedService finds the declaration template for a service name.
// Not every toggleable API is an advanced service; callers treat a miss as
// "no manifest declaration needed".
func LookupAdvancedService(serviceID string) (AdvancedService, bool) {
	for _, svc := range publicAdvancedServices {
		if svc.ServiceID == serviceID {
			return svc, true
		}
	}
	return AdvancedService{}, false
}
