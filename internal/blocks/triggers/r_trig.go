// Package triggers implements the edge-detector and SR-latch blocks.
package triggers

import (
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// RTrig asserts q for exactly one scan on the rising edge of clk.
type RTrig struct {
	name   string
	input  string
	output string
	prev   bool
}

func NewRTrig(name string, inputs, outputs map[string]string) (*RTrig, error) {
	input, ok := inputs["clk"]
	if !ok {
		return nil, errs.NewConfigError("R_TRIG requires %q input", "clk")
	}
	output, ok := outputs["q"]
	if !ok {
		return nil, errs.NewConfigError("R_TRIG requires %q output", "q")
	}
	return &RTrig{name: name, input: input, output: output}, nil
}

func (b *RTrig) Execute(bus signal.Bus) error {
	current, err := bus.GetBool(b.input)
	if err != nil {
		return err
	}
	risingEdge := current && !b.prev
	b.prev = current
	bus.Set(b.output, signal.Bool(risingEdge))
	return nil
}

func (b *RTrig) Name() string { return b.name }
func (b *RTrig) Type() string { return "R_TRIG" }
