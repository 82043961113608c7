// Package browser provides the URL opener used by the launcher.
//
// Opening a browser is a best-effort side effect, so it is modelled as a small
// capability: System() for real runs, Nop() when the user opts out, and any
// OpenerFunc in tests.
package browser
