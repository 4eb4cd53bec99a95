package engine

import "testing"

func TestFromTextAppliesScanTimeDefault(t *testing.T) {
	cfg, err := FromText(`
signals:
  - name: x
    type: bool
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.ScanTimeMs != DefaultScanTimeMs {
		t.Fatalf("expected default scan_time_ms %d, got %d", DefaultScanTimeMs, cfg.ScanTimeMs)
	}
}

func TestFromTextRejectsMalformedYAML(t *testing.T) {
	_, err := FromText("signals: [this is not valid: yaml: at all")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestSignalConfigToValue(t *testing.T) {
	cases := []struct {
		cfg  SignalConfig
		kind string
	}{
		{SignalConfig{Type: "bool", Initial: true}, "bool"},
		{SignalConfig{Type: "int", Initial: 5}, "int"},
		{SignalConfig{Type: "float", Initial: 1.5}, "float"},
		{SignalConfig{Type: "string", Initial: "hi"}, "string"},
	}
	for _, c := range cases {
		v, err := c.cfg.ToValue()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.kind, err)
		}
		if v.TypeName() != c.kind {
			t.Fatalf("expected type %s, got %s", c.kind, v.TypeName())
		}
	}
}

func TestSignalConfigToValueDefaultsWhenInitialAbsent(t *testing.T) {
	v, err := SignalConfig{Type: "int"}.ToValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 0 {
		t.Fatalf("expected default 0, got %d", got)
	}
}

func TestSignalConfigToValueUnknownTypeIsConfigError(t *testing.T) {
	_, err := SignalConfig{Type: "vector3"}.ToValue()
	if err == nil {
		t.Fatalf("expected an error for an unknown signal type")
	}
}
