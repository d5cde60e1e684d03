// Package formconfig defines the validated form description produced from a
// declarative YAML document, together with the loader contracts, source
// abstractions, and the typed error taxonomy surfaced while loading.
//
// A FormConfig is only ever handed out after every item in the document has
// been normalised; renderers can therefore treat it as a total, well-formed
// input and skip defensive checks.
package formconfig
