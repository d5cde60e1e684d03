// Package orchestrator wires path resolution, loading, optional config
// transformation, and rendering behind a single Generate call with
// injectable dependencies.
package orchestrator
