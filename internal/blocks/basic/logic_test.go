package basic

import (
	"testing"

	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

func TestAndBlock(t *testing.T) {
	bus := signal.NewBus()
	bus.Set("a", signal.Bool(true))
	bus.Set("b", signal.Bool(false))

	blk, err := NewAndBlock("g1", map[string]string{"in1": "a", "in2": "b"}, map[string]string{"out": "out"})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, _ := bus.GetBool("out"); got != false {
		t.Fatalf("expected AND(true,false)=false, got %v", got)
	}

	bus.Set("b", signal.Bool(true))
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, _ := bus.GetBool("out"); got != true {
		t.Fatalf("expected AND(true,true)=true, got %v", got)
	}
}

func TestAndBlockNoInputsIsIdentity(t *testing.T) {
	bus := signal.NewBus()
	blk, err := NewAndBlock("g1", map[string]string{}, map[string]string{"out": "out"})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, _ := bus.GetBool("out"); got != true {
		t.Fatalf("expected empty AND reduction to be true, got %v", got)
	}
}

func TestOrBlock(t *testing.T) {
	bus := signal.NewBus()
	bus.Set("a", signal.Bool(false))
	bus.Set("b", signal.Bool(false))

	blk, err := NewOrBlock("g2", map[string]string{"in1": "a", "in2": "b"}, map[string]string{"out": "out"})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, _ := bus.GetBool("out"); got != false {
		t.Fatalf("expected OR(false,false)=false, got %v", got)
	}

	bus.Set("a", signal.Bool(true))
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, _ := bus.GetBool("out"); got != true {
		t.Fatalf("expected OR(true,false)=true, got %v", got)
	}
}

func TestNotBlock(t *testing.T) {
	bus := signal.NewBus()
	bus.Set("a", signal.Bool(false))

	blk, err := NewNotBlock("n1", map[string]string{"in": "a"}, map[string]string{"out": "out"})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if err := blk.Execute(bus); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, _ := bus.GetBool("out"); got != true {
		t.Fatalf("expected NOT(false)=true, got %v", got)
	}
}

func TestNotBlockMissingPortIsConfigError(t *testing.T) {
	if _, err := NewNotBlock("n1", map[string]string{}, map[string]string{"out": "out"}); err == nil {
		t.Fatalf("expected a config error for a missing 'in' binding")
	}
}
