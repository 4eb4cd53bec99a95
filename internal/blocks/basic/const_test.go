package basic

import (
	"testing"

	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

func TestConstBlockDrivesEveryScan(t *testing.T) {
	bus := signal.NewBus()
	blk, err := NewConstBlock("c1", map[string]string{"out": "setpoint"}, map[string]interface{}{"value": 50.0})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, _ := bus.GetFloat("setpoint"); got != 50.0 {
		t.Fatalf("expected 50.0, got %v", got)
	}

	bus.Set("setpoint", signal.Float(0))
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, _ := bus.GetFloat("setpoint"); got != 50.0 {
		t.Fatalf("expected CONST to re-drive its output every scan, got %v", got)
	}
}

func TestConstBlockMissingValueIsConfigError(t *testing.T) {
	if _, err := NewConstBlock("c1", map[string]string{"out": "x"}, map[string]interface{}{}); err == nil {
		t.Fatalf("expected an error for a missing 'value' parameter")
	}
}
