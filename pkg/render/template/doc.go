// Package template defines the template seam renderers use for page chrome.
// The pongo subpackage provides the pongo2-backed implementation.
package template
