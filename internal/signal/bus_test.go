package signal

import (
	"sync"
	"testing"

	"github.com/Lithos-Systems/petra-plc/internal/errs"
)

func TestBusSetGet(t *testing.T) {
	bus := NewBus()
	bus.Set("x", Int(7))

	v, err := bus.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestBusGetMissingSignal(t *testing.T) {
	bus := NewBus()
	_, err := bus.Get("missing")
	if err == nil {
		t.Fatalf("expected an error for a missing signal")
	}
	if _, ok := err.(*errs.SignalNotFoundError); !ok {
		t.Fatalf("expected *errs.SignalNotFoundError, got %T", err)
	}
}

func TestBusGetBoolTypeMismatch(t *testing.T) {
	bus := NewBus()
	bus.Set("s", String("hi"))
	_, err := bus.GetBool("s")
	if _, ok := err.(*errs.TypeMismatchError); !ok {
		t.Fatalf("expected *errs.TypeMismatchError, got %T (%v)", err, err)
	}
}

func TestBusIterSnapshot(t *testing.T) {
	bus := NewBus()
	bus.Set("a", Bool(true))
	bus.Set("b", Int(1))

	entries := bus.Iter()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestBusConcurrentAccess(t *testing.T) {
	bus := NewBus()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			bus.Set("counter", Int(int32(n)))
			_, _ = bus.Get("counter")
		}(i)
	}
	wg.Wait()

	if !bus.Exists("counter") {
		t.Fatalf("expected counter to exist after concurrent writers")
	}
}

func TestBusClear(t *testing.T) {
	bus := NewBus()
	bus.Set("a", Bool(true))
	bus.Clear()
	if bus.Exists("a") {
		t.Fatalf("expected bus to be empty after Clear")
	}
}
