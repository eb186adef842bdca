// Package verifier implements the KaTeX installation check.
//
// Check loads the typesetting library through a types.Loader, renders a
// fixed sample expression with fixed options and looks for a marker in the
// output. The outcome is a types.CheckResult holding the status and the exact
// console lines to print. Check has no side effects besides logging; turning
// a result into a process exit status is left to the caller via ExitCode.
//
// The flow is linear:
//
//	Start -> LibraryLoaded -> RenderChecked -> {Ready, Degraded}
//	Start -> Unavailable                      (load failed)
package verifier
