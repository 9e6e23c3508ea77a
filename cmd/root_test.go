package cmd

import (
	"errors"
	"fmt"
	"testing"

	"scriptctl/internal/apis"
	"scriptctl/internal/auth"
	"scriptctl/internal/config"
	"scriptctl/internal/project"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"missing project", &project.MissingProjectError{}, ExitCodeMissingProject},
		{"not configured", &config.NotConfiguredError{Dir: "/tmp"}, ExitCodeMissingProject},
		{"credentials", &auth.CredentialsError{Path: "/tmp/creds"}, ExitCodeCredentials},
		{"invalid service name", &apis.InvalidServiceNameError{}, ExitCodeError},
		{"toggle error", &apis.ToggleError{Action: "enable", Service: "sheets"}, ExitCodeError},
		{"plain error", errors.New("boom"), ExitCodeError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, getExitCode(tc.err))
		})
	}
}

func TestGetExitCodeUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("resolving project: %w", &project.MissingProjectError{})
	assert.Equal(t, ExitCodeMissingProject, getExitCode(wrapped))
}
