package cmd

import (
	"bytes"
	"strings"
	"testing"

	"scriptctl/internal/manifest"
	"scriptctl/internal/serviceusage"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOutput(t *testing.T, enabled []serviceusage.Service, m manifest.Manifest) string {
	t.Helper()
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	printServiceTable(cmd, enabled, m)
	return out.String()
}

func TestPrintServiceTableMarksRegistryState(t *testing.T) {
	enabled := []serviceusage.Service{
		{Name: "projects/1/services/sheets.googleapis.com", State: "ENABLED"},
	}

	out := tableOutput(t, enabled, manifest.Manifest{})
	require.Contains(t, out, "SERVICE")

	var sheetsRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "sheets") {
			sheetsRow = line
		}
	}
	require.NotEmpty(t, sheetsRow)
	assert.Contains(t, sheetsRow, "on")
}

func TestPrintServiceTableMarksManifestState(t *testing.T) {
	m := manifest.Manifest{
		Dependencies: &manifest.Dependencies{
			EnabledAdvancedServices: []manifest.AdvancedService{
				{UserSymbol: "Gmail", ServiceID: "gmail", Version: "v1"},
			},
		},
	}

	out := tableOutput(t, nil, m)

	var gmailRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "gmail") {
			gmailRow = line
		}
	}
	require.NotEmpty(t, gmailRow)
	assert.Contains(t, gmailRow, "on")
}

func TestPrintServiceTableListsPlainServices(t *testing.T) {
	enabled := []serviceusage.Service{
		{Name: "projects/1/services/translate.googleapis.com", State: "ENABLED"},
	}
	enabled[0].Config.Title = "Cloud Translation API"

	out := tableOutput(t, enabled, manifest.Manifest{})

	var row string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "translate") {
			row = line
		}
	}
	require.NotEmpty(t, row, "plain enabled services get their own row")
	assert.Contains(t, row, "Cloud Translation API")
	assert.Contains(t, row, "on")
}

func TestAdvancedServiceCompletion(t *testing.T) {
	names, directive := advancedServiceCompletion(&cobra.Command{}, nil, "s")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Contains(t, names, "sheets")
	assert.Contains(t, names, "slides")
	assert.NotContains(t, names, "gmail")
}
