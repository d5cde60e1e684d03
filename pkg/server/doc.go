// Package server provides a net/http handler that serves a survey form as a
// full HTML page.
//
// The handler responds to GET and HEAD requests. The form document is
// resolved and loaded on every request, so edits to the YAML file show up on
// the next reload without a restart. The embedded default stylesheet is
// served under the assets route.
package server
