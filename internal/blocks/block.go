// Package blocks implements the function-block library and the factory
// that constructs blocks from configuration.
package blocks

import "github.com/Lithos-Systems/petra-plc/internal/signal"

// Block is the capability every function-block variant implements: given
// a bus, read declared inputs, update internal state, write declared
// outputs.
type Block interface {
	Execute(bus signal.Bus) error
	Name() string
	Type() string
}

// Config is the construction record for a single block: its name, its
// block_type tag, resolved port bindings, and type-specific parameters.
// It is the Go-side twin of the original's blocks::traits::BlockConfig.
type Config struct {
	Name    string
	Type    string
	Inputs  map[string]string
	Outputs map[string]string
	Params  map[string]interface{}
}
