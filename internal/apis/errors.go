package apis

import "fmt"

// InvalidServiceNameError indicates a toggle was requested without a
// service name. Surfaced before any network activity.
type InvalidServiceNameError struct{}

// Error returns a user-friendly message.
func (e *InvalidServiceNameError) Error() string {
	return "no service name given (usage: scriptctl apis enable <service>)"
}

// Is allows errors.Is() to work with wrapped errors.
func (e *InvalidServiceNameError) Is(target error) bool {
	_, ok := target.(*InvalidServiceNameError)
	return ok
}

// ToggleError is the catch-all for unrecognized failures while enabling or
// disabling a service. The user-facing message names only the requested
// action and service; the original cause stays reachable via Unwrap and in
// the diagnostic log.
type ToggleError struct {
	// Action is "enable" or "disable".
	Action string
	// Service is the requested service name.
	Service string
	// cause is the reclassified error, kept for diagnostics only.
	cause error
}

// Error returns the user-facing message, without the underlying cause.
func (e *ToggleError) Error() string {
	return fmt.Sprintf("could not %s %s: check the service name and try again", e.Action, e.Service)
}

// Unwrap returns the reclassified cause.
func (e *ToggleError) Unwrap() error {
	return e.cause
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ToggleError) Is(target error) bool {
	_, ok := target.(*ToggleError)
	return ok
}
