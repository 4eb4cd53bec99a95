// Package validator is the contract guard between a decoded program
// configuration and the rest of the engine: it fails construction early
// on a value that breaks the schema. It sees the config only after YAML
// decoding, so misspelled field names, already dropped by the decoder,
// are not detected here.
package validator

import (
	"embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// Validator checks a decoded engine.Config against the embedded CUE
// #Program schema before the engine is allowed to build blocks from it.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// New loads the embedded schema and prepares a Validator.
func New() (*Validator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate marshals data to JSON and unifies it against #Program,
// returning a detailed error on the first mismatch.
func (v *Validator) Validate(data interface{}) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config to JSON: %w", err)
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return fmt.Errorf("compiling config as CUE: %w", dataValue.Err())
	}

	programDef := v.schema.LookupPath(cue.ParsePath("#Program"))
	if programDef.Err() != nil {
		return fmt.Errorf("looking up #Program definition: %w", programDef.Err())
	}

	unified := programDef.Unify(dataValue)
	if err := unified.Validate(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// Errors returns every individual validation failure instead of just the
// first, for diagnostics.
func (v *Validator) Errors(data interface{}) []string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return []string{fmt.Sprintf("marshal error: %v", err)}
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return []string{fmt.Sprintf("compile error: %v", dataValue.Err())}
	}

	programDef := v.schema.LookupPath(cue.ParsePath("#Program"))
	if programDef.Err() != nil {
		return []string{fmt.Sprintf("schema lookup error: %v", programDef.Err())}
	}

	unified := programDef.Unify(dataValue)
	err = unified.Validate()
	if err == nil {
		return nil
	}

	var out []string
	for _, e := range errors.Errors(err) {
		out = append(out, e.Error())
	}
	return out
}
