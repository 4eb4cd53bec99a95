// Package engine owns the scan engine: configuration, the signal bus, the
// ordered block list, and the periodic scan loop.
package engine

import (
	"fmt"
	"os"

	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
	"gopkg.in/yaml.v3"
)

// SignalConfig declares one signal: its name, declared type, and optional
// initial literal.
type SignalConfig struct {
	Name    string      `yaml:"name" json:"name"`
	Type    string      `yaml:"type" json:"type"`
	Initial interface{} `yaml:"initial,omitempty" json:"initial,omitempty"`
}

// ToValue converts the declared type and initial literal into a
// signal.Value, applying the per-type default (false/0/0.0/"") when
// Initial is absent.
func (c SignalConfig) ToValue() (signal.Value, error) {
	switch c.Type {
	case "bool":
		v, _ := c.Initial.(bool)
		return signal.Bool(v), nil
	case "int":
		switch n := c.Initial.(type) {
		case int:
			return signal.Int(int32(n)), nil
		case int64:
			return signal.Int(int32(n)), nil
		case float64:
			return signal.Int(int32(n)), nil
		default:
			return signal.Int(0), nil
		}
	case "float":
		switch n := c.Initial.(type) {
		case float64:
			return signal.Float(n), nil
		case int:
			return signal.Float(float64(n)), nil
		default:
			return signal.Float(0), nil
		}
	case "string":
		v, _ := c.Initial.(string)
		return signal.String(v), nil
	default:
		return signal.Value{}, errs.NewConfigError("Unknown signal type: %s", c.Type)
	}
}

// BlockConfig is the YAML-facing twin of blocks.Config: a block's name,
// type tag, port bindings, and parameters.
type BlockConfig struct {
	Name    string                 `yaml:"name" json:"name"`
	Type    string                 `yaml:"type" json:"type"`
	Inputs  map[string]string      `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Outputs map[string]string      `yaml:"outputs,omitempty" json:"outputs,omitempty"`
	Params  map[string]interface{} `yaml:"params,omitempty" json:"params,omitempty"`
}

// Config is the program configuration: signals, blocks, and scan cadence.
type Config struct {
	Signals    []SignalConfig `yaml:"signals,omitempty" json:"signals,omitempty"`
	Blocks     []BlockConfig  `yaml:"blocks,omitempty" json:"blocks,omitempty"`
	ScanTimeMs uint64         `yaml:"scan_time_ms,omitempty" json:"scan_time_ms,omitempty"`
}

// DefaultScanTimeMs is used when a config omits (or zeroes) scan_time_ms.
const DefaultScanTimeMs = 100

// applyDefaults fills in a zero scan_time_ms, which spec §6 calls invalid.
func (c *Config) applyDefaults() {
	if c.ScanTimeMs == 0 {
		c.ScanTimeMs = DefaultScanTimeMs
	}
}

// FromText parses a program configuration from YAML text.
func FromText(text string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(text), &cfg); err != nil {
		return nil, &errs.SerializationError{Err: err}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// FromPath reads and parses a program configuration from a file.
func FromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errs.IOError{Err: err}
	}
	return FromText(string(data))
}

func (c BlockConfig) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, c.Type)
}
