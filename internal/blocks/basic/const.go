package basic

import (
	"github.com/Lithos-Systems/petra-plc/internal/blocks/blockcfg"
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
)

// ConstBlock drives its output to a fixed literal every scan. The ground
// type is inferred from the parameter's YAML shape (bool > int > float >
// string preference).
type ConstBlock struct {
	name   string
	output string
	value  signal.Value
}

func NewConstBlock(name string, outputs map[string]string, params map[string]interface{}) (*ConstBlock, error) {
	output, ok := outputs["out"]
	if !ok {
		return nil, errs.NewConfigError("CONST requires %q output", "out")
	}
	raw, err := blockcfg.RequireParam(params, "value", "CONST")
	if err != nil {
		return nil, err
	}
	kind, b, i, f, s, ok := blockcfg.ParamToSignalValue(raw)
	if !ok {
		return nil, errs.NewConfigError("CONST value must be bool, int, float, or string")
	}
	var value signal.Value
	switch kind {
	case "bool":
		value = signal.Bool(b)
	case "int":
		value = signal.Int(i)
	case "float":
		value = signal.Float(f)
	case "string":
		value = signal.String(s)
	}
	return &ConstBlock{name: name, output: output, value: value}, nil
}

func (b *ConstBlock) Execute(bus signal.Bus) error {
	bus.Set(b.output, b.value)
	return nil
}

func (b *ConstBlock) Name() string { return b.name }
func (b *ConstBlock) Type() string { return "CONST" }
