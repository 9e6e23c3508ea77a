// Package apis coordinates enable/disable state changes for cloud APIs
// against two stores that must agree: the remote service registry of the
// backing GCP project and the advanced-service declarations in the local
// appsscript.json.
//
// The Toggler runs the full sequence (validate, resolve project, registry
// call, manifest sync) and reclassifies unrecognized failures into a single
// user-facing ToggleError. The ScriptAPIEnabler is the bootstrap exception:
// it enables the Apps Script API itself before a manifest necessarily
// exists, so it skips both the sync and the reclassification.
//
// There is no rollback: when the registry call succeeds and the manifest
// sync then fails, the two stores stay diverged and the user is told to
// re-run the command.
package apis
