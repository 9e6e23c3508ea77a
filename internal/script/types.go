package script

// File is one file of a remote script project, as returned by the content
// endpoint. Only the fields this tool reads are mapped.
type File struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Source      string       `json:"source,omitempty"`
	FunctionSet *FunctionSet `json:"functionSet,omitempty"`
}

// FunctionSet lists the callable functions a file declares.
type FunctionSet struct {
	Values []Function `json:"values"`
}

// Function is one callable declared in a file. It has no identity beyond
// its name.
type Function struct {
	Name string `json:"name"`
}

// Content is the response body of the project content endpoint.
type Content struct {
	ScriptID string `json:"scriptId"`
	Files    []File `json:"files"`
}

// Catalog flattens the declared function names of all files, in file order.
// Files without a function set contribute nothing. Duplicate names across
// files are kept as-is; the catalog is a faithful flatten, not a set.
func Catalog(files []File) []string {
	var names []string
	for _, f := range files {
		if f.FunctionSet == nil {
			continue
		}
		for _, fn := range f.FunctionSet.Values {
			names = append(names, fn.Name)
		}
	}
	return names
}
