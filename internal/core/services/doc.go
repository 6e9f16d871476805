// Package services implements the driving port interfaces.
// Services contain the core indexing logic and orchestrate
// calls to driven ports (adapters).
//
// Services never import adapters; tests wire them to the
// in-memory implementations in storage/memory.
package services
