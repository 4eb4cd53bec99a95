// Package basic implements the logic gates, comparisons, and constant
// block.
package basic

import (
	"sort"
	"strings"

	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// AndBlock reduces every input port named "in*" with boolean AND. With no
// inputs bound it is the identity element, true.
type AndBlock struct {
	name   string
	inputs []string
	output string
}

func NewAndBlock(name string, inputs, outputs map[string]string) (*AndBlock, error) {
	output, ok := outputs["out"]
	if !ok {
		return nil, errs.NewConfigError("AND requires %q output", "out")
	}
	return &AndBlock{name: name, inputs: inPorts(inputs), output: output}, nil
}

func (b *AndBlock) Execute(bus signal.Bus) error {
	result := true
	for _, in := range b.inputs {
		v, err := bus.GetBool(in)
		if err != nil {
			return err
		}
		result = result && v
	}
	bus.Set(b.output, signal.Bool(result))
	return nil
}

func (b *AndBlock) Name() string { return b.name }
func (b *AndBlock) Type() string { return "AND" }

// OrBlock reduces every input port named "in*" with boolean OR. With no
// inputs bound it is the identity element, false.
type OrBlock struct {
	name   string
	inputs []string
	output string
}

func NewOrBlock(name string, inputs, outputs map[string]string) (*OrBlock, error) {
	output, ok := outputs["out"]
	if !ok {
		return nil, errs.NewConfigError("OR requires %q output", "out")
	}
	return &OrBlock{name: name, inputs: inPorts(inputs), output: output}, nil
}

func (b *OrBlock) Execute(bus signal.Bus) error {
	result := false
	for _, in := range b.inputs {
		v, err := bus.GetBool(in)
		if err != nil {
			return err
		}
		result = result || v
	}
	bus.Set(b.output, signal.Bool(result))
	return nil
}

func (b *OrBlock) Name() string { return b.name }
func (b *OrBlock) Type() string { return "OR" }

// NotBlock inverts a single boolean input.
type NotBlock struct {
	name   string
	input  string
	output string
}

func NewNotBlock(name string, inputs, outputs map[string]string) (*NotBlock, error) {
	input, ok := inputs["in"]
	if !ok {
		return nil, errs.NewConfigError("NOT requires %q input", "in")
	}
	output, ok := outputs["out"]
	if !ok {
		return nil, errs.NewConfigError("NOT requires %q output", "out")
	}
	return &NotBlock{name: name, input: input, output: output}, nil
}

func (b *NotBlock) Execute(bus signal.Bus) error {
	v, err := bus.GetBool(b.input)
	if err != nil {
		return err
	}
	bus.Set(b.output, signal.Bool(!v))
	return nil
}

func (b *NotBlock) Name() string { return b.name }
func (b *NotBlock) Type() string { return "NOT" }

// inPorts collects every bound signal whose formal port name begins with
// "in", in a deterministic order (sorted by port name) so that AND/OR
// reduction order is stable across runs even though map iteration isn't.
func inPorts(inputs map[string]string) []string {
	var ports []string
	for port := range inputs {
		if strings.HasPrefix(port, "in") {
			ports = append(ports, port)
		}
	}
	sort.Strings(ports)
	out := make([]string, len(ports))
	for i, port := range ports {
		out[i] = inputs[port]
	}
	return out
}
