// Package client implements the client application runtime.
//
// It wires the identity event stream, the session state machine, the
// in-memory collections with their debounced write-back, and the catalog
// adapter into a single process lifecycle.
package client
