package counters

import (
	"github.com/Lithos-Systems/petra-plc/internal/blocks/blockcfg"
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// Sequencer is an incrementing index with wrap-around, advancing on the
// rising edge of trigger and reset to 0 by reset — the building block for
// equipment rotation (pump alternation, etc).
type Sequencer struct {
	name          string
	trigger, rs   string
	indexOut      string
	max           int32
	currentIndex  int32
	prevTrigger   bool
}

func NewSequencer(name string, inputs, outputs map[string]string, params map[string]interface{}) (*Sequencer, error) {
	trigger, err := blockcfg.RequireBinding(inputs, "trigger", "input", "SEQUENCER")
	if err != nil {
		return nil, err
	}
	reset, err := blockcfg.RequireBinding(inputs, "reset", "input", "SEQUENCER")
	if err != nil {
		return nil, err
	}
	indexOut, err := blockcfg.RequireBinding(outputs, "index", "output", "SEQUENCER")
	if err != nil {
		return nil, err
	}
	raw, err := blockcfg.RequireParam(params, "max", "SEQUENCER")
	if err != nil {
		return nil, err
	}
	max := blockcfg.ParamInt32(map[string]interface{}{"max": raw}, "max", 0)
	if max <= 0 {
		return nil, errs.NewConfigError("SEQUENCER %q must be positive", "max")
	}

	return &Sequencer{
		name: name, trigger: trigger, rs: reset,
		indexOut: indexOut, max: max,
	}, nil
}

func (b *Sequencer) Execute(bus signal.Bus) error {
	reset, err := bus.GetBool(b.rs)
	if err != nil {
		return err
	}

	if reset {
		b.currentIndex = 0
		b.prevTrigger = false
	} else {
		currentTrigger, err := bus.GetBool(b.trigger)
		if err != nil {
			return err
		}
		if currentTrigger && !b.prevTrigger {
			b.currentIndex = (b.currentIndex + 1) % b.max
		}
		b.prevTrigger = currentTrigger
	}

	bus.Set(b.indexOut, signal.Int(b.currentIndex))
	return nil
}

func (b *Sequencer) Name() string { return b.name }
func (b *Sequencer) Type() string { return "SEQUENCER" }
