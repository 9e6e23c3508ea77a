package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"scriptctl/internal/apis"
	"scriptctl/internal/manifest"
	"scriptctl/internal/project"
	"scriptctl/internal/prompt"
	"scriptctl/internal/serviceusage"
	"scriptctl/pkg/logging"
	strx "scriptctl/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var apisQuiet bool

// newApisCmd creates the `apis` command family: listing the services
// enabled for the backing GCP project and toggling individual ones.
func newApisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apis",
		Short: "Manage the cloud APIs the script project uses",
		Long: `List, enable or disable cloud APIs for the GCP project backing this
script. Enabling or disabling also updates the advanced-service declaration
in appsscript.json when the API has one.

Examples:
  scriptctl apis
  scriptctl apis enable sheets
  scriptctl apis disable sheets`,
		RunE: runApisList,
	}
	cmd.PersistentFlags().BoolVarP(&apisQuiet, "quiet", "q", false, "suppress progress indicators")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List advanced services and their enablement state",
		RunE:  runApisList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:               "enable [service]",
		Short:             "Enable a cloud API for the backing project",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: advancedServiceCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApisToggle(cmd, args, true)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:               "disable [service]",
		Short:             "Disable a cloud API for the backing project",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: advancedServiceCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApisToggle(cmd, args, false)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "bootstrap",
		Short: "Enable the Apps Script API itself",
		Long: `Enable the Apps Script API for the backing project. Required once
before the first scriptctl run; works even when no manifest exists yet.`,
		RunE: runApisBootstrap,
	})

	return cmd
}

// advancedServiceCompletion offers the known advanced-service names.
func advancedServiceCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, svc := range manifest.AdvancedServices() {
		if strings.HasPrefix(svc.ServiceID, toComplete) {
			names = append(names, svc.ServiceID)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func runApisToggle(cmd *cobra.Command, args []string, enable bool) error {
	ctx := cmd.Context()

	var service string
	if len(args) == 1 {
		service = args[0]
	}

	ws, err := loadWorkspace(ctx)
	if err != nil {
		return err
	}
	toggler := apis.NewToggler(ws.resolver(), ws.registry(), ws.manifestSync())

	verb := "Enabling"
	if !enable {
		verb = "Disabling"
	}
	s := newSpinner(apisQuiet, fmt.Sprintf("%s %s...", verb, service))
	err = toggler.Toggle(ctx, service, enable)
	stopSpinner(s)
	if err != nil {
		return err
	}

	state := "enabled"
	if !enable {
		state = "disabled"
	}
	fmt.Fprintln(cmd.OutOrStdout(), text.FgGreen.Sprintf("✓ %s %s", service, state))
	return nil
}

func runApisList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ws, err := loadWorkspace(ctx)
	if err != nil {
		return err
	}

	projectID, err := ws.resolver().Resolve(ctx)
	if err != nil {
		return err
	}

	s := newSpinner(apisQuiet, "Fetching service state...")
	var (
		enabled []serviceusage.Service
		m       manifest.Manifest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		enabled, err = ws.registry().ListEnabled(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		m, err = ws.manifestSync().Read()
		if err != nil {
			// Listing still works without a local manifest; the column
			// just stays empty.
			logging.Debug("Apis", "no local manifest for list: %v", err)
			m = manifest.Manifest{}
		}
		return nil
	})
	err = g.Wait()
	stopSpinner(s)
	if err != nil {
		return err
	}

	printServiceTable(cmd, enabled, m)
	return nil
}

// printServiceTable renders a kubectl-style table of the known advanced
// services, their registry state for the backing project, and whether the
// local manifest declares them. Enabled services without an advanced-service
// declaration follow as plain rows with their registry title.
func printServiceTable(cmd *cobra.Command, enabled []serviceusage.Service, m manifest.Manifest) {
	inRegistry := make(map[string]bool, len(enabled))
	titles := make(map[string]string, len(enabled))
	for _, svc := range enabled {
		// Registry names look like projects/x/services/sheets.googleapis.com.
		name := svc.Name[strings.LastIndex(svc.Name, "/")+1:]
		short := strings.TrimSuffix(name, ".googleapis.com")
		inRegistry[short] = true
		titles[short] = svc.Config.Title
	}

	inManifest := make(map[string]bool)
	if m.Dependencies != nil {
		for _, svc := range m.Dependencies.EnabledAdvancedServices {
			inManifest[svc.ServiceID] = true
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tSYMBOL\tVERSION\tREGISTRY\tMANIFEST")
	advanced := make(map[string]bool)
	for _, svc := range manifest.AdvancedServices() {
		advanced[svc.ServiceID] = true
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			svc.ServiceID, svc.UserSymbol, svc.Version,
			onOff(inRegistry[svc.ServiceID]), onOff(inManifest[svc.ServiceID]))
	}
	for _, svc := range enabled {
		name := svc.Name[strings.LastIndex(svc.Name, "/")+1:]
		short := strings.TrimSuffix(name, ".googleapis.com")
		if advanced[short] {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t\ton\t-\n", short, strx.OneLine(titles[short], 40))
	}
	w.Flush()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "-"
}

func runApisBootstrap(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	resolver := project.NewResolver(&project.ConfigStore{Dir: dir}, prompt.ProjectPrompter{})
	enabler := apis.NewScriptAPIEnabler(resolver, registryProvider())

	s := newSpinner(apisQuiet, "Enabling the Apps Script API...")
	err = enabler.Enable(ctx)
	stopSpinner(s)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text.FgGreen.Sprint("✓ Apps Script API enabled"))
	return nil
}
