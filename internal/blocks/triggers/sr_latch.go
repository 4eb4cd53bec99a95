package triggers

import (
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// SRLatch is a set/reset latch with reset priority: simultaneous set and
// reset yields q=false.
type SRLatch struct {
	name              string
	setInput, resetIn string
	output            string
	state             bool
}

func NewSRLatch(name string, inputs, outputs map[string]string) (*SRLatch, error) {
	setInput, ok := inputs["set"]
	if !ok {
		return nil, errs.NewConfigError("SR_LATCH requires %q input", "set")
	}
	resetIn, ok := inputs["reset"]
	if !ok {
		return nil, errs.NewConfigError("SR_LATCH requires %q input", "reset")
	}
	output, ok := outputs["q"]
	if !ok {
		return nil, errs.NewConfigError("SR_LATCH requires %q output", "q")
	}
	return &SRLatch{name: name, setInput: setInput, resetIn: resetIn, output: output}, nil
}

func (b *SRLatch) Execute(bus signal.Bus) error {
	set, err := bus.GetBool(b.setInput)
	if err != nil {
		return err
	}
	reset, err := bus.GetBool(b.resetIn)
	if err != nil {
		return err
	}

	if reset {
		b.state = false
	} else if set {
		b.state = true
	}

	bus.Set(b.output, signal.Bool(b.state))
	return nil
}

func (b *SRLatch) Name() string { return b.name }
func (b *SRLatch) Type() string { return "SR_LATCH" }
