//go:build debug
// +build debug

package tag

// Debug enables expensive invariant checks and scrubbing of released memory.
const Debug = true
