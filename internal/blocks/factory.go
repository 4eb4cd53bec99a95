package blocks

import (
	"github.com/Lithos-Systems/petra-plc/internal/blocks/basic"
	"github.com/Lithos-Systems/petra-plc/internal/blocks/counters"
	"github.com/Lithos-Systems/petra-plc/internal/blocks/timers"
	"github.com/Lithos-Systems/petra-plc/internal/blocks/triggers"
	"github.com/Lithos-Systems/petra-plc/internal/errs"
)

// New is the single dispatch point mapping a block_type string to its
// constructor. It is the only place block variants are enumerated.
func New(cfg Config) (Block, error) {
	switch cfg.Type {
	case "AND":
		return basic.NewAndBlock(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "OR":
		return basic.NewOrBlock(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "NOT":
		return basic.NewNotBlock(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "EQ":
		return basic.NewEqBlock(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "GT":
		return basic.NewGtBlock(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "LT":
		return basic.NewLtBlock(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "CONST":
		return basic.NewConstBlock(cfg.Name, cfg.Outputs, cfg.Params)
	case "R_TRIG":
		return triggers.NewRTrig(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "F_TRIG":
		return triggers.NewFTrig(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "SR_LATCH":
		return triggers.NewSRLatch(cfg.Name, cfg.Inputs, cfg.Outputs)
	case "TON":
		return timers.NewTON(cfg.Name, cfg.Inputs, cfg.Outputs, cfg.Params)
	case "TOF":
		return timers.NewTOF(cfg.Name, cfg.Inputs, cfg.Outputs, cfg.Params)
	case "TP":
		return timers.NewTP(cfg.Name, cfg.Inputs, cfg.Outputs, cfg.Params)
	case "COUNTER":
		return counters.NewCounter(cfg.Name, cfg.Inputs, cfg.Outputs, cfg.Params)
	case "SEQUENCER":
		return counters.NewSequencer(cfg.Name, cfg.Inputs, cfg.Outputs, cfg.Params)
	default:
		return nil, errs.NewConfigError("Unknown block type: %s", cfg.Type)
	}
}
