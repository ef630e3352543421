package cmd

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dishmate/internal/domain/model"
)

func press(t *testing.T, m walkerModel, msgs ...tea.KeyMsg) walkerModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(walkerModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestWalkerPicksCategoryAtRoot(t *testing.T) {
	m := press(t, newWalkerModel(""), keyEnter)
	if m.category != model.CategoryWhiteResidue {
		t.Fatalf("expected white_residue category, got %q", m.category)
	}
	if m.current.StepID() != "white_residue_start" {
		t.Fatalf("unexpected step %s", m.current.StepID())
	}
}

func TestWalkerReachesSolutionAndReportsAnswers(t *testing.T) {
	m := press(t, newWalkerModel(""), keyEnter, keyEnter, keyEnter)
	if !m.done() {
		t.Fatalf("expected a terminal step, got %s", m.current.StepID())
	}
	if m.current.StepID() != "hard_water_confirmed" {
		t.Fatalf("unexpected terminal %s", m.current.StepID())
	}

	res := m.result()
	if res.category != model.CategoryWhiteResidue {
		t.Fatalf("unexpected category %q", res.category)
	}
	if got := strings.Join(res.answers, ","); got != "powdery,yes_hard" {
		t.Fatalf("unexpected answers %s", got)
	}
}

func TestWalkerBackRestoresPreviousQuestion(t *testing.T) {
	m := press(t, newWalkerModel(model.CategoryWhiteResidue), keyDown, keyEnter)
	if m.current.StepID() != "white_residue_detergent" {
		t.Fatalf("unexpected step %s", m.current.StepID())
	}

	m = press(t, m, keyEsc)
	if m.current.StepID() != "white_residue_start" {
		t.Fatalf("expected to be back at the start, got %s", m.current.StepID())
	}
	if m.cursor != 1 {
		t.Fatalf("expected cursor on the previous answer, got %d", m.cursor)
	}
	if len(m.history) != 0 {
		t.Fatalf("expected empty history, got %d", len(m.history))
	}

	m = press(t, m, keyEsc)
	if m.current.StepID() != "white_residue_start" {
		t.Fatalf("back with no history should stay put")
	}
}

func TestWalkerBackToRootClearsCategory(t *testing.T) {
	m := press(t, newWalkerModel(""), keyDown, keyEnter)
	if m.category != model.CategoryCloudyGlasses {
		t.Fatalf("unexpected category %q", m.category)
	}
	m = press(t, m, keyEsc)
	if m.category != "" || m.current.StepID() != "start" {
		t.Fatalf("expected root with no category, got %q at %s", m.category, m.current.StepID())
	}
}

func TestWalkerQuitBeforeAnswer(t *testing.T) {
	m := press(t, newWalkerModel(""), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quit {
		t.Fatalf("expected quit")
	}
}

func TestWalkerViewShowsQuestionAndHelp(t *testing.T) {
	view := newWalkerModel("").View()
	if !strings.Contains(view, "What's the problem?") {
		t.Fatalf("expected root question in view")
	}
	if !strings.Contains(view, "back") {
		t.Fatalf("expected help line in view")
	}
}
