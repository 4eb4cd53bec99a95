// Package timers implements the IEC 61131-3 on-delay, off-delay, and
// pulse timers. Timing is measured from a monotonic clock reading taken
// at the start of each run, never summed across scans, so accuracy
// depends only on the clock, not on scan jitter.
package timers

import (
	"time"

	"github.com/Lithos-Systems/petra-plc/internal/blocks/blockcfg"
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// TON is the on-delay timer: q turns true once in has held true for
// preset_ms, and drops the instant in goes false.
type TON struct {
	name         string
	input        string
	output       string
	elapsedOut   string
	hasElapsedOut bool
	presetMs     uint64

	running   bool
	startTime time.Time
	elapsedMs uint64
	prevInput bool
}

func NewTON(name string, inputs, outputs map[string]string, params map[string]interface{}) (*TON, error) {
	input, ok := blockcfg.OptionalBinding(inputs, "in")
	if !ok {
		return nil, errs.NewConfigError("TON requires %q input", "in")
	}
	output, ok := blockcfg.OptionalBinding(outputs, "q")
	if !ok {
		return nil, errs.NewConfigError("TON requires %q output", "q")
	}
	elapsedOut, hasElapsedOut := blockcfg.OptionalBinding(outputs, "et")
	presetMs, err := blockcfg.ParamUint64(params, "preset_ms", "TON")
	if err != nil {
		return nil, err
	}
	return &TON{
		name: name, input: input, output: output,
		elapsedOut: elapsedOut, hasElapsedOut: hasElapsedOut,
		presetMs: presetMs,
	}, nil
}

func (b *TON) Execute(bus signal.Bus) error {
	current, err := bus.GetBool(b.input)
	if err != nil {
		return err
	}

	switch {
	case current && !b.prevInput:
		// Rising edge: start timing.
		b.running = true
		b.startTime = time.Now()
		b.elapsedMs = 0
	case !current:
		b.running = false
		b.elapsedMs = 0
	case current && b.running:
		b.elapsedMs = uint64(time.Since(b.startTime).Milliseconds())
	}
	b.prevInput = current

	done := current && b.elapsedMs >= b.presetMs
	bus.Set(b.output, signal.Bool(done))
	if b.hasElapsedOut {
		bus.Set(b.elapsedOut, signal.Int(int32(b.elapsedMs)))
	}
	return nil
}

func (b *TON) Name() string { return b.name }
func (b *TON) Type() string { return "TON" }
