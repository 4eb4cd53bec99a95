package timers

import (
	"testing"
	"time"

	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

func TestTONRisesAfterPreset(t *testing.T) {
	bus := signal.NewBus()
	bus.Set("in", signal.Bool(false))

	blk, err := NewTON("t1", map[string]string{"in": "in"}, map[string]string{"q": "q"},
		map[string]interface{}{"preset_ms": 50})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	bus.Set("in", signal.Bool(true))
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); got {
		t.Fatalf("expected q to stay false immediately on the rising edge")
	}

	time.Sleep(70 * time.Millisecond)
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); !got {
		t.Fatalf("expected q true once in has held for longer than preset_ms")
	}

	bus.Set("in", signal.Bool(false))
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); got {
		t.Fatalf("expected q to drop instantly when in goes false")
	}
}

func TestTOFHoldsAfterFallingEdge(t *testing.T) {
	bus := signal.NewBus()
	bus.Set("in", signal.Bool(true))

	blk, err := NewTOF("t2", map[string]string{"in": "in"}, map[string]string{"q": "q"},
		map[string]interface{}{"preset_ms": 50})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); !got {
		t.Fatalf("expected q true while in is true")
	}

	bus.Set("in", signal.Bool(false))
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); !got {
		t.Fatalf("expected q to stay true immediately after the falling edge")
	}

	time.Sleep(70 * time.Millisecond)
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); got {
		t.Fatalf("expected q to drop once in has held false for longer than preset_ms")
	}
}

func TestTOFFirstScanFalseIsNotAFallingEdge(t *testing.T) {
	bus := signal.NewBus()
	bus.Set("in", signal.Bool(false))

	blk, err := NewTOF("t3", map[string]string{"in": "in"}, map[string]string{"q": "q"},
		map[string]interface{}{"preset_ms": 10000})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); got {
		t.Fatalf("a block starting with in=false should never assert q on its first scan")
	}
}

func TestTPRunsToCompletionAndInhibitsRetrigger(t *testing.T) {
	bus := signal.NewBus()
	bus.Set("in", signal.Bool(false))

	blk, err := NewTP("t4", map[string]string{"in": "in"}, map[string]string{"q": "q"},
		map[string]interface{}{"preset_ms": 60})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	bus.Set("in", signal.Bool(true))
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); !got {
		t.Fatalf("expected pulse to start on the rising edge")
	}

	bus.Set("in", signal.Bool(false))
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); !got {
		t.Fatalf("expected the pulse to keep running even after in drops")
	}

	time.Sleep(80 * time.Millisecond)
	mustExec(t, blk, bus)
	if got, _ := bus.GetBool("q"); got {
		t.Fatalf("expected the pulse to end once preset_ms has elapsed")
	}
}

func mustExec(t *testing.T, blk interface{ Execute(signal.Bus) error }, bus signal.Bus) {
	t.Helper()
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
}
