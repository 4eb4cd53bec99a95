package timers

import (
	"time"

	"github.com/Lithos-Systems/petra-plc/internal/blocks/blockcfg"
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// TOF is the off-delay timer: q stays true until in has held false for
// preset_ms. Its prev_input starts false so that a first scan observing
// in=false isn't mistaken for a falling edge; with no falling edge seen,
// q stays false.
type TOF struct {
	name          string
	input         string
	output        string
	elapsedOut    string
	hasElapsedOut bool
	presetMs      uint64

	running   bool
	startTime time.Time
	elapsedMs uint64
	prevInput bool
}

func NewTOF(name string, inputs, outputs map[string]string, params map[string]interface{}) (*TOF, error) {
	input, ok := blockcfg.OptionalBinding(inputs, "in")
	if !ok {
		return nil, errs.NewConfigError("TOF requires %q input", "in")
	}
	output, ok := blockcfg.OptionalBinding(outputs, "q")
	if !ok {
		return nil, errs.NewConfigError("TOF requires %q output", "q")
	}
	elapsedOut, hasElapsedOut := blockcfg.OptionalBinding(outputs, "et")
	presetMs, err := blockcfg.ParamUint64(params, "preset_ms", "TOF")
	if err != nil {
		return nil, err
	}
	return &TOF{
		name: name, input: input, output: output,
		elapsedOut: elapsedOut, hasElapsedOut: hasElapsedOut,
		presetMs: presetMs,
	}, nil
}

func (b *TOF) Execute(bus signal.Bus) error {
	current, err := bus.GetBool(b.input)
	if err != nil {
		return err
	}

	switch {
	case !current && b.prevInput:
		// Falling edge: start timing.
		b.running = true
		b.startTime = time.Now()
		b.elapsedMs = 0
	case current:
		b.running = false
		b.elapsedMs = 0
	case !current && b.running:
		b.elapsedMs = uint64(time.Since(b.startTime).Milliseconds())
	}
	b.prevInput = current

	done := current || (b.running && b.elapsedMs < b.presetMs)
	bus.Set(b.output, signal.Bool(done))
	if b.hasElapsedOut {
		bus.Set(b.elapsedOut, signal.Int(int32(b.elapsedMs)))
	}
	return nil
}

func (b *TOF) Name() string { return b.name }
func (b *TOF) Type() string { return "TOF" }
