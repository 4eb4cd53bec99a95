package triggers

import (
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// FTrig asserts q for exactly one scan on the falling edge of clk.
type FTrig struct {
	name   string
	input  string
	output string
	prev   bool
}

func NewFTrig(name string, inputs, outputs map[string]string) (*FTrig, error) {
	input, ok := inputs["clk"]
	if !ok {
		return nil, errs.NewConfigError("F_TRIG requires %q input", "clk")
	}
	output, ok := outputs["q"]
	if !ok {
		return nil, errs.NewConfigError("F_TRIG requires %q output", "q")
	}
	return &FTrig{name: name, input: input, output: output}, nil
}

func (b *FTrig) Execute(bus signal.Bus) error {
	current, err := bus.GetBool(b.input)
	if err != nil {
		return err
	}
	fallingEdge := !current && b.prev
	b.prev = current
	bus.Set(b.output, signal.Bool(fallingEdge))
	return nil
}

func (b *FTrig) Name() string { return b.name }
func (b *FTrig) Type() string { return "F_TRIG" }
