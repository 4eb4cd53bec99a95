package basic

import (
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// EqBlock compares two operands for equality. Like-typed operands compare
// structurally (float within epsilon); mixed types are false, never an
// error.
type EqBlock struct {
	name           string
	input1, input2 string
	output         string
}

func NewEqBlock(name string, inputs, outputs map[string]string) (*EqBlock, error) {
	in1, ok := inputs["in1"]
	if !ok {
		return nil, errs.NewConfigError("EQ requires %q input", "in1")
	}
	in2, ok := inputs["in2"]
	if !ok {
		return nil, errs.NewConfigError("EQ requires %q input", "in2")
	}
	out, ok := outputs["out"]
	if !ok {
		return nil, errs.NewConfigError("EQ requires %q output", "out")
	}
	return &EqBlock{name: name, input1: in1, input2: in2, output: out}, nil
}

func (b *EqBlock) Execute(bus signal.Bus) error {
	v1, err := bus.Get(b.input1)
	if err != nil {
		return err
	}
	v2, err := bus.Get(b.input2)
	if err != nil {
		return err
	}
	bus.Set(b.output, signal.Bool(v1.Equal(v2)))
	return nil
}

func (b *EqBlock) Name() string { return b.name }
func (b *EqBlock) Type() string { return "EQ" }

// GtBlock and LtBlock are defined only for like-numeric pairs; any other
// combination is a TypeMismatch.
type GtBlock struct {
	name           string
	input1, input2 string
	output         string
}

func NewGtBlock(name string, inputs, outputs map[string]string) (*GtBlock, error) {
	in1, ok := inputs["in1"]
	if !ok {
		return nil, errs.NewConfigError("GT requires %q input", "in1")
	}
	in2, ok := inputs["in2"]
	if !ok {
		return nil, errs.NewConfigError("GT requires %q input", "in2")
	}
	out, ok := outputs["out"]
	if !ok {
		return nil, errs.NewConfigError("GT requires %q output", "out")
	}
	return &GtBlock{name: name, input1: in1, input2: in2, output: out}, nil
}

func (b *GtBlock) Execute(bus signal.Bus) error {
	result, err := compareNumeric(bus, b.input1, b.input2, func(a, c float64) bool { return a > c })
	if err != nil {
		return err
	}
	bus.Set(b.output, signal.Bool(result))
	return nil
}

func (b *GtBlock) Name() string { return b.name }
func (b *GtBlock) Type() string { return "GT" }

type LtBlock struct {
	name           string
	input1, input2 string
	output         string
}

func NewLtBlock(name string, inputs, outputs map[string]string) (*LtBlock, error) {
	in1, ok := inputs["in1"]
	if !ok {
		return nil, errs.NewConfigError("LT requires %q input", "in1")
	}
	in2, ok := inputs["in2"]
	if !ok {
		return nil, errs.NewConfigError("LT requires %q input", "in2")
	}
	out, ok := outputs["out"]
	if !ok {
		return nil, errs.NewConfigError("LT requires %q output", "out")
	}
	return &LtBlock{name: name, input1: in1, input2: in2, output: out}, nil
}

func (b *LtBlock) Execute(bus signal.Bus) error {
	result, err := compareNumeric(bus, b.input1, b.input2, func(a, c float64) bool { return a < c })
	if err != nil {
		return err
	}
	bus.Set(b.output, signal.Bool(result))
	return nil
}

func (b *LtBlock) Name() string { return b.name }
func (b *LtBlock) Type() string { return "LT" }

// compareNumeric requires both operands to share a numeric kind (Int/Int
// or Float/Float) and applies cmp to their widened float64 forms — the
// original compares matching variants directly, which is equivalent for
// Int since int32-to-float64 widening is exact.
func compareNumeric(bus signal.Bus, name1, name2 string, cmp func(a, b float64) bool) (bool, error) {
	v1, err := bus.Get(name1)
	if err != nil {
		return false, err
	}
	v2, err := bus.Get(name2)
	if err != nil {
		return false, err
	}
	if v1.Kind() != v2.Kind() || (v1.Kind() != signal.KindInt && v1.Kind() != signal.KindFloat) {
		return false, &errs.TypeMismatchError{Expected: "numeric", Actual: "non-numeric"}
	}
	f1, _ := v1.AsFloat()
	f2, _ := v2.AsFloat()
	return cmp(f1, f2), nil
}
