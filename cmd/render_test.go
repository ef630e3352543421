package cmd

import (
	"strings"
	"testing"

	"dishmate/internal/app/troubleshoot"
	"dishmate/internal/domain/model"
)

func TestRenderHumanRecommendation(t *testing.T) {
	out, ok := renderHuman(model.CommandResult{Result: model.Recommendation{
		Cycle:       model.CycleIntensive,
		MainDose:    "Fill main cup",
		Reasoning:   "Pots need it.",
		LoadingTips: []string{"Face the spray arm"},
		Warnings:    []string{"Hand wash the knives"},
	}})
	if !ok {
		t.Fatalf("expected recommendation to render")
	}
	for _, want := range []string{"intensive", "Fill main cup", "Pots need it.", "• Face the spray arm", "Hand wash the knives"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "Prewash dose") {
		t.Fatalf("empty fields should be skipped:\n%s", out)
	}
}

func TestRenderHumanDiagnosisQuestion(t *testing.T) {
	out, ok := renderHuman(model.CommandResult{Result: troubleshoot.Diagnosis{
		Current: model.QuestionStep{
			ID:       "q",
			Question: "Do the spots wipe off?",
			Options:  []model.StepOption{{Label: "Yes", Value: "yes"}},
		},
	}})
	if !ok {
		t.Fatalf("expected diagnosis to render")
	}
	if !strings.Contains(out, "Do the spots wipe off?") || !strings.Contains(out, "--answer yes") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRenderHumanFallsBack(t *testing.T) {
	if _, ok := renderHuman(model.CommandResult{Result: map[string]int{"a": 1}}); ok {
		t.Fatalf("unknown result types should fall back to JSON")
	}
	if _, ok := renderHuman("plain"); ok {
		t.Fatalf("non-envelope values should fall back to JSON")
	}
}
