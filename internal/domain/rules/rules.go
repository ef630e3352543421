// Package rules exposes the ordered rule lists the advisors evaluate, so the
// precedence can be inspected without reading code.
package rules

import (
	"fmt"

	"dishmate/internal/domain/detergent"
	"dishmate/internal/domain/load"
	"dishmate/internal/domain/maintenance"
	"dishmate/internal/domain/model"
)

func CycleRules() []model.RuleInfo {
	src := load.CycleRules()
	out := make([]model.RuleInfo, 0, len(src))
	for i, r := range src {
		out = append(out, model.RuleInfo{Engine: model.EngineCycle, Order: i + 1, ID: r.ID, Outcome: string(r.Cycle)})
	}
	return out
}

func FrequencyRules() []model.RuleInfo {
	src := maintenance.FrequencyRules()
	out := make([]model.RuleInfo, 0, len(src))
	for i, r := range src {
		out = append(out, model.RuleInfo{Engine: model.EngineFrequency, Order: i + 1, ID: r.ID, Outcome: shiftOutcome(r.Shift)})
	}
	return out
}

func DetergentRules() []model.RuleInfo {
	src := detergent.FormatRules()
	out := make([]model.RuleInfo, 0, len(src))
	for i, r := range src {
		out = append(out, model.RuleInfo{Engine: model.EngineDetergentFormat, Order: i + 1, ID: r.ID, Outcome: string(r.Format)})
	}
	return out
}

// Catalog lists every engine's rules, engines in RuleEngines order.
func Catalog() []model.RuleInfo {
	var out []model.RuleInfo
	for _, e := range model.RuleEngines() {
		out = append(out, ForEngine(e)...)
	}
	return out
}

// ForEngine returns nil for an engine outside the closed set.
func ForEngine(e model.RuleEngine) []model.RuleInfo {
	switch e {
	case model.EngineCycle:
		return CycleRules()
	case model.EngineFrequency:
		return FrequencyRules()
	case model.EngineDetergentFormat:
		return DetergentRules()
	}
	return nil
}

func shiftOutcome(shift int) string {
	switch {
	case shift < 0:
		return fmt.Sprintf("%d step(s) more frequent", -shift)
	case shift > 0:
		return fmt.Sprintf("%d step(s) less frequent", shift)
	}
	return "unchanged"
}
