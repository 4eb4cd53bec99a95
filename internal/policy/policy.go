// Package policy evaluates advisory interlock rules against a running
// program's signal snapshot using an embedded Rego policy. It never
// blocks a scan — violations are reported, not enforced.
package policy

import (
	"context"
	"embed"
	"fmt"

	"github.com/Lithos-Systems/petra-plc/internal/signal"
	"github.com/open-policy-agent/opa/rego"
)

//go:embed policies/interlock.rego
var policyFS embed.FS

// Violation is one advisory finding produced by the policy evaluation.
type Violation struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Signal   string `json:"signal"`
	Message  string `json:"message"`
}

// Checker evaluates the embedded interlock policy against signal
// snapshots. Unlike the teacher's subprocess daemon, this runs in-process
// via OPA's Go embedding — there is no external binary to manage.
type Checker struct {
	query rego.PreparedEvalQuery
}

// New compiles the embedded policy and prepares it for repeated
// evaluation.
func New(ctx context.Context) (*Checker, error) {
	src, err := policyFS.ReadFile("policies/interlock.rego")
	if err != nil {
		return nil, fmt.Errorf("loading embedded policy: %w", err)
	}

	query, err := rego.New(
		rego.Query("data.petra.interlock.violations"),
		rego.Module("interlock.rego", string(src)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("preparing policy query: %w", err)
	}

	return &Checker{query: query}, nil
}

// Check evaluates the policy against a signal bus snapshot and returns
// every violation found. A nil or empty result means no hazard was
// detected — it never indicates the scan should stop.
func (c *Checker) Check(ctx context.Context, entries []signal.Entry) ([]Violation, error) {
	input := map[string]interface{}{
		"signals": signalsInput(entries),
	}

	results, err := c.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return nil, fmt.Errorf("evaluating policy: %w", err)
	}
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return nil, nil
	}

	raw, ok := results[0].Expressions[0].Value.([]interface{})
	if !ok {
		return nil, nil
	}

	violations := make([]Violation, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		violations = append(violations, Violation{
			Rule:     stringField(m, "rule"),
			Severity: stringField(m, "severity"),
			Signal:   stringField(m, "signal"),
			Message:  stringField(m, "message"),
		})
	}
	return violations, nil
}

func signalsInput(entries []signal.Entry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"name":  e.Name,
			"value": e.Value.Raw(),
		})
	}
	return out
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
