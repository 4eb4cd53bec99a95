package timers

import (
	"time"

	"github.com/Lithos-Systems/petra-plc/internal/blocks/blockcfg"
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// TP is the pulse timer: a rising edge of in, while not already pulsing,
// starts a pulse of preset_ms that runs to completion regardless of in
// returning to false early. Retriggers are inhibited until the pulse ends.
type TP struct {
	name          string
	input         string
	output        string
	elapsedOut    string
	hasElapsedOut bool
	presetMs      uint64

	pulseActive bool
	startTime   time.Time
	elapsedMs   uint64
	prevInput   bool
}

func NewTP(name string, inputs, outputs map[string]string, params map[string]interface{}) (*TP, error) {
	input, ok := blockcfg.OptionalBinding(inputs, "in")
	if !ok {
		return nil, errs.NewConfigError("TP requires %q input", "in")
	}
	output, ok := blockcfg.OptionalBinding(outputs, "q")
	if !ok {
		return nil, errs.NewConfigError("TP requires %q output", "q")
	}
	elapsedOut, hasElapsedOut := blockcfg.OptionalBinding(outputs, "et")
	presetMs, err := blockcfg.ParamUint64(params, "preset_ms", "TP")
	if err != nil {
		return nil, err
	}
	return &TP{
		name: name, input: input, output: output,
		elapsedOut: elapsedOut, hasElapsedOut: hasElapsedOut,
		presetMs: presetMs,
	}, nil
}

func (b *TP) Execute(bus signal.Bus) error {
	current, err := bus.GetBool(b.input)
	if err != nil {
		return err
	}

	if current && !b.prevInput && !b.pulseActive {
		b.pulseActive = true
		b.startTime = time.Now()
		b.elapsedMs = 0
	}

	if b.pulseActive {
		b.elapsedMs = uint64(time.Since(b.startTime).Milliseconds())
		if b.elapsedMs >= b.presetMs {
			b.pulseActive = false
		}
	}
	b.prevInput = current

	bus.Set(b.output, signal.Bool(b.pulseActive))
	if b.hasElapsedOut {
		bus.Set(b.elapsedOut, signal.Int(int32(b.elapsedMs)))
	}
	return nil
}

func (b *TP) Name() string { return b.name }
func (b *TP) Type() string { return "TP" }
