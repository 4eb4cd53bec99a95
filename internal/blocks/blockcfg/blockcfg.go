// Package blockcfg holds the small helpers block constructors use to
// pull a mandatory port binding or parameter out of raw configuration maps,
// producing the same ConfigError shape everywhere.
package blockcfg

import "github.com/Lithos-Systems/petra-plc/internal/errs"

// RequireBinding looks up a mandatory port binding, naming the block type,
// port, and binding direction ("input"/"output") in the error when it's
// missing.
func RequireBinding(bindings map[string]string, port, kind, blockType string) (string, error) {
	signalName, ok := bindings[port]
	if !ok {
		return "", errs.NewConfigError("%s requires %q %s", blockType, port, kind)
	}
	return signalName, nil
}

// OptionalBinding looks up an optional port binding.
func OptionalBinding(bindings map[string]string, port string) (string, bool) {
	signalName, ok := bindings[port]
	return signalName, ok
}

// RequireParam looks up a mandatory parameter.
func RequireParam(params map[string]interface{}, name, blockType string) (interface{}, error) {
	v, ok := params[name]
	if !ok {
		return nil, errs.NewConfigError("%s requires %q parameter", blockType, name)
	}
	return v, nil
}

// ParamUint64 reads a required parameter as a non-negative integer.
func ParamUint64(params map[string]interface{}, name, blockType string) (uint64, error) {
	raw, err := RequireParam(params, name, blockType)
	if err != nil {
		return 0, err
	}
	switch n := raw.(type) {
	case int:
		if n < 0 {
			return 0, errs.NewConfigError("%s parameter %q must not be negative", blockType, name)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, errs.NewConfigError("%s parameter %q must not be negative", blockType, name)
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	case float64:
		if n < 0 {
			return 0, errs.NewConfigError("%s parameter %q must not be negative", blockType, name)
		}
		return uint64(n), nil
	default:
		return 0, errs.NewConfigError("%s parameter %q must be an integer", blockType, name)
	}
}

// ParamInt32 reads an optional integer parameter, defaulting when absent.
func ParamInt32(params map[string]interface{}, name string, def int32) int32 {
	raw, ok := params[name]
	if !ok {
		return def
	}
	switch n := raw.(type) {
	case int:
		return int32(n)
	case int64:
		return int32(n)
	case float64:
		return int32(n)
	default:
		return def
	}
}

// ParamToSignalValue determines the ground type implied by a raw YAML
// scalar's shape, preferring bool > int > float > string, matching the
// original's CONST block type inference.
func ParamToSignalValue(raw interface{}) (kind string, boolVal bool, intVal int32, floatVal float64, strVal string, ok bool) {
	switch v := raw.(type) {
	case bool:
		return "bool", v, 0, 0, "", true
	case int:
		return "int", false, int32(v), 0, "", true
	case int64:
		return "int", false, int32(v), 0, "", true
	case float64:
		return "float", false, 0, v, "", true
	case string:
		return "string", false, 0, 0, v, true
	default:
		return "", false, 0, 0, "", false
	}
}
