package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o644))
}

const baseManifest = `{
  "timeZone": "Europe/Berlin",
  "exceptionLogging": "STACKDRIVER",
  "dependencies": {}
}`

func TestEnableAddsDeclaration(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, baseManifest)
	sync := NewSynchronizer(dir)

	require.NoError(t, sync.EnableOrDisableAdvancedService("sheets", true))

	m, err := sync.Read()
	require.NoError(t, err)
	require.NotNil(t, m.Dependencies)
	require.Len(t, m.Dependencies.EnabledAdvancedServices, 1)

	svc := m.Dependencies.EnabledAdvancedServices[0]
	assert.Equal(t, "Sheets", svc.UserSymbol)
	assert.Equal(t, "sheets", svc.ServiceID)
	assert.Equal(t, "v4", svc.Version)

	assert.Equal(t, "Europe/Berlin", m.TimeZone, "unrelated fields survive the rewrite")
}

func TestEnableIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, baseManifest)
	sync := NewSynchronizer(dir)

	require.NoError(t, sync.EnableOrDisableAdvancedService("sheets", true))
	require.NoError(t, sync.EnableOrDisableAdvancedService("sheets", true))

	m, err := sync.Read()
	require.NoError(t, err)
	assert.Len(t, m.Dependencies.EnabledAdvancedServices, 1)
}

func TestDisableRemovesDeclaration(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
  "dependencies": {
    "enabledAdvancedServices": [
      {"userSymbol": "Sheets", "serviceId": "sheets", "version": "v4"},
      {"userSymbol": "Gmail", "serviceId": "gmail", "version": "v1"}
    ]
  }
}`)
	sync := NewSynchronizer(dir)

	require.NoError(t, sync.EnableOrDisableAdvancedService("sheets", false))

	m, err := sync.Read()
	require.NoError(t, err)
	require.Len(t, m.Dependencies.EnabledAdvancedServices, 1)
	assert.Equal(t, "gmail", m.Dependencies.EnabledAdvancedServices[0].ServiceID)
}

func TestDisableUndeclaredIsNoop(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, baseManifest)
	sync := NewSynchronizer(dir)

	before, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)

	require.NoError(t, sync.EnableOrDisableAdvancedService("sheets", false))

	after, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.Equal(t, before, after, "no-op toggle must not rewrite the file")
}

func TestNonAdvancedServiceSkipsManifest(t *testing.T) {
	dir := t.TempDir()
	// No manifest on disk at all: a plain API toggle must still succeed.
	sync := NewSynchronizer(dir)

	require.NoError(t, sync.EnableOrDisableAdvancedService("translate", true))
}

func TestEnableWithoutManifestFails(t *testing.T) {
	sync := NewSynchronizer(t.TempDir())

	err := sync.EnableOrDisableAdvancedService("sheets", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fileName)
}

func TestWriteProducesValidJSON(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, baseManifest)
	sync := NewSynchronizer(dir)

	require.NoError(t, sync.EnableOrDisableAdvancedService("gmail", true))

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestLookupAdvancedService(t *testing.T) {
	svc, ok := LookupAdvancedService("bigquery")
	require.True(t, ok)
	assert.Equal(t, "BigQuery", svc.UserSymbol)

	_, ok = LookupAdvancedService("nosuchservice")
	assert.False(t, ok)
}
