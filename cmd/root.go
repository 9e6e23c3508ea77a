package cmd

import (
	"errors"
	"os"

	"scriptctl/internal/apis"
	"scriptctl/internal/auth"
	"scriptctl/internal/config"
	"scriptctl/internal/project"
	"scriptctl/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands. These follow common conventions so scripts
// can distinguish setup problems from ordinary failures.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error.
	ExitCodeError = 1
	// ExitCodeMissingProject indicates no GCP project id could be resolved.
	ExitCodeMissingProject = 2
	// ExitCodeCredentials indicates credentials are missing or unusable.
	ExitCodeCredentials = 3
)

// rootCmd represents the base command for the scriptctl application.
var rootCmd = &cobra.Command{
	Use:   "scriptctl",
	Short: "Manage Apps Script projects from the command line",
	Long: `scriptctl works against the Apps Script project linked to the current
directory: run remote functions, and enable or disable the cloud APIs the
project uses, keeping the local appsscript.json in step with the remote
service registry.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from main with
// the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
func Execute() {
	logging.InitFromEnv()
	rootCmd.SetVersionTemplate(`{{printf "scriptctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps error kinds to semantic exit codes.
func getExitCode(err error) int {
	var missingProject *project.MissingProjectError
	if errors.As(err, &missingProject) {
		return ExitCodeMissingProject
	}

	var notConfigured *config.NotConfiguredError
	if errors.As(err, &notConfigured) {
		return ExitCodeMissingProject
	}

	var credentials *auth.CredentialsError
	if errors.As(err, &credentials) {
		return ExitCodeCredentials
	}

	var invalidService *apis.InvalidServiceNameError
	if errors.As(err, &invalidService) {
		return ExitCodeError
	}

	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newApisCmd())
	rootCmd.AddCommand(newVersionCmd())
}
