package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fns(names ...string) *FunctionSet {
	set := &FunctionSet{}
	for _, n := range names {
		set.Values = append(set.Values, Function{Name: n})
	}
	return set
}

func TestCatalogFlattensInFileOrder(t *testing.T) {
	files := []File{
		{Name: "main", FunctionSet: fns("onOpen", "doGet")},
		{Name: "util", FunctionSet: fns("helper")},
	}

	assert.Equal(t, []string{"onOpen", "doGet", "helper"}, Catalog(files))
}

func TestCatalogSkipsFilesWithoutFunctionSet(t *testing.T) {
	files := []File{
		{Name: "appsscript", Type: "JSON"},
		{Name: "main", FunctionSet: fns("doGet")},
		{Name: "styles", Type: "HTML"},
	}

	assert.Equal(t, []string{"doGet"}, Catalog(files))
}

func TestCatalogLengthIsSumOfPerFileCounts(t *testing.T) {
	files := []File{
		{Name: "a", FunctionSet: fns("one", "two")},
		{Name: "b"},
		{Name: "c", FunctionSet: fns("three")},
		{Name: "d", FunctionSet: &FunctionSet{}},
	}

	total := 0
	for _, f := range files {
		if f.FunctionSet != nil {
			total += len(f.FunctionSet.Values)
		}
	}
	assert.Len(t, Catalog(files), total)
}

func TestCatalogEmptyWhenNoFileDeclaresFunctions(t *testing.T) {
	assert.Empty(t, Catalog(nil))
	assert.Empty(t, Catalog([]File{{Name: "a"}, {Name: "b"}}))
}

func TestCatalogKeepsDuplicates(t *testing.T) {
	files := []File{
		{Name: "a", FunctionSet: fns("setup")},
		{Name: "b", FunctionSet: fns("setup")},
	}

	assert.Equal(t, []string{"setup", "setup"}, Catalog(files))
}
