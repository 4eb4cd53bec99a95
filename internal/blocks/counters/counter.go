// Package counters implements the up/down counter and the wrapping
// sequencer used for equipment-rotation programs.
package counters

import (
	"github.com/Lithos-Systems/petra-plc/internal/blocks/blockcfg"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// Counter is an up/down counter with an optional dynamic preset input.
// Overflow of count is permitted to wrap via Go's defined int32 overflow
// semantics (see DESIGN.md).
type Counter struct {
	name                   string
	countUp, countDown, rs string
	presetIn               string
	hasPresetIn            bool
	output                 string
	doneOut                string
	hasDoneOut             bool

	preset             int32
	count              int32
	prevUp, prevDown   bool
}

func NewCounter(name string, inputs, outputs map[string]string, params map[string]interface{}) (*Counter, error) {
	countUp, err := blockcfg.RequireBinding(inputs, "cu", "input", "COUNTER")
	if err != nil {
		return nil, err
	}
	countDown, err := blockcfg.RequireBinding(inputs, "cd", "input", "COUNTER")
	if err != nil {
		return nil, err
	}
	reset, err := blockcfg.RequireBinding(inputs, "r", "input", "COUNTER")
	if err != nil {
		return nil, err
	}
	presetIn, hasPresetIn := blockcfg.OptionalBinding(inputs, "pv")
	output, err := blockcfg.RequireBinding(outputs, "cv", "output", "COUNTER")
	if err != nil {
		return nil, err
	}
	doneOut, hasDoneOut := blockcfg.OptionalBinding(outputs, "q")
	preset := blockcfg.ParamInt32(params, "preset", 0)

	return &Counter{
		name: name, countUp: countUp, countDown: countDown, rs: reset,
		presetIn: presetIn, hasPresetIn: hasPresetIn,
		output: output, doneOut: doneOut, hasDoneOut: hasDoneOut,
		preset: preset,
	}, nil
}

func (b *Counter) Execute(bus signal.Bus) error {
	reset, err := bus.GetBool(b.rs)
	if err != nil {
		return err
	}

	if reset {
		b.count = 0
	} else {
		if b.hasPresetIn {
			if presetValue, err := bus.GetInt(b.presetIn); err == nil {
				b.preset = presetValue
			}
		}

		currentUp, err := bus.GetBool(b.countUp)
		if err != nil {
			return err
		}
		if currentUp && !b.prevUp {
			b.count++
		}
		b.prevUp = currentUp

		currentDown, err := bus.GetBool(b.countDown)
		if err != nil {
			return err
		}
		if currentDown && !b.prevDown {
			b.count--
		}
		b.prevDown = currentDown
	}

	bus.Set(b.output, signal.Int(b.count))
	if b.hasDoneOut {
		bus.Set(b.doneOut, signal.Bool(b.count >= b.preset))
	}
	return nil
}

func (b *Counter) Name() string { return b.name }
func (b *Counter) Type() string { return "COUNTER" }
