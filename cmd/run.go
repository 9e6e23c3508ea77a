package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"scriptctl/internal/prompt"
	"scriptctl/internal/script"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var runQuiet bool

// newRunCmd creates the command that executes a remote function. Without an
// argument it fetches the project's function catalog and opens the
// interactive picker.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [function]",
		Short: "Run a function of the remote script project",
		Long: `Run a function of the remote script project in dev mode.

With no argument, the declared functions of all project files are fetched
and offered in an interactive fuzzy picker.

Examples:
  scriptctl run
  scriptctl run doGet`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRun,
	}
	cmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "suppress progress indicators")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ws, err := loadWorkspace(ctx)
	if err != nil {
		return err
	}
	client := script.NewClient(ws.http, "")

	var function string
	if len(args) == 1 {
		function = args[0]
	} else {
		function, err = selectFunction(cmd, client, ws.cfg.ScriptID)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			return err
		}
	}

	s := newSpinner(runQuiet, fmt.Sprintf("Running %s...", function))
	result, err := client.Run(ctx, ws.cfg.ScriptID, function)
	stopSpinner(s)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), text.FgRed.Sprintf("✗ %s failed", function))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text.FgGreen.Sprintf("✓ %s finished", function))
	if len(result) > 0 && string(result) != "null" {
		var pretty any
		if err := json.Unmarshal(result, &pretty); err == nil {
			out, _ := json.MarshalIndent(pretty, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), string(result))
		}
	}
	return nil
}

// selectFunction fetches the catalog and hands it to the interactive
// picker. Duplicate names across files show up as separate rows on
// purpose: the catalog is a faithful flatten of the remote file list.
func selectFunction(cmd *cobra.Command, client *script.Client, scriptID string) (string, error) {
	s := newSpinner(runQuiet, "Fetching project functions...")
	catalog, err := client.Functions(cmd.Context(), scriptID)
	stopSpinner(s)
	if err != nil {
		return "", err
	}

	if len(catalog) == 0 && !runQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), "No functions declared in the remote project; enter a name manually.")
	}
	return prompt.SelectFunction(catalog)
}
