package blockcfg

import "testing"

func TestRequireBindingMissingNamesDirection(t *testing.T) {
	_, err := RequireBinding(map[string]string{}, "out", "output", "AND")
	if err == nil {
		t.Fatalf("expected an error")
	}
	want := `configuration error: AND requires "out" output`
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestOptionalBinding(t *testing.T) {
	if _, ok := OptionalBinding(map[string]string{"a": "x"}, "b"); ok {
		t.Fatalf("expected missing optional binding to report false")
	}
	v, ok := OptionalBinding(map[string]string{"a": "x"}, "a")
	if !ok || v != "x" {
		t.Fatalf("expected (x, true), got (%q, %v)", v, ok)
	}
}

func TestParamUint64RejectsNegative(t *testing.T) {
	_, err := ParamUint64(map[string]interface{}{"preset_ms": -5}, "preset_ms", "TON")
	if err == nil {
		t.Fatalf("expected an error for a negative preset")
	}
}

func TestParamUint64AcceptsYAMLIntShapes(t *testing.T) {
	for _, raw := range []interface{}{int(200), int64(200), float64(200), uint64(200)} {
		v, err := ParamUint64(map[string]interface{}{"preset_ms": raw}, "preset_ms", "TON")
		if err != nil {
			t.Fatalf("unexpected error for %T: %v", raw, err)
		}
		if v != 200 {
			t.Fatalf("expected 200, got %d for %T", v, raw)
		}
	}
}

func TestParamToSignalValuePrefersBoolOverInt(t *testing.T) {
	kind, b, _, _, _, ok := ParamToSignalValue(true)
	if !ok || kind != "bool" || b != true {
		t.Fatalf("expected bool inference, got kind=%q b=%v ok=%v", kind, b, ok)
	}
}

func TestParamToSignalValueUnsupportedShape(t *testing.T) {
	_, _, _, _, _, ok := ParamToSignalValue([]int{1, 2})
	if ok {
		t.Fatalf("expected unsupported shape to report ok=false")
	}
}
