package cmd

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuModelUpdateNavigationAndSelection(t *testing.T) {
	m := newMenuModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m2 := updated.(menuModel)
	if m2.cursor != 1 {
		t.Fatalf("expected cursor to move down, got %d", m2.cursor)
	}

	updated, _ = m2.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m3 := updated.(menuModel)
	if len(m3.selected) == 0 {
		t.Fatalf("expected selected command args")
	}
	if got := strings.Join(m3.selected, " "); got != "maintenance check" {
		t.Fatalf("unexpected selection: %s", got)
	}
}

func TestMenuModelUpdateQuit(t *testing.T) {
	m := newMenuModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m2 := updated.(menuModel)
	if !m2.exit {
		t.Fatalf("expected exit to be true")
	}
}

func TestMenuModelCursorStopsAtEdges(t *testing.T) {
	m := newMenuModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if updated.(menuModel).cursor != 0 {
		t.Fatalf("expected cursor to stay at the top")
	}

	for range m.items {
		updated, _ = updated.(menuModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	last := updated.(menuModel)
	if last.cursor != len(m.items)-1 {
		t.Fatalf("expected cursor on the last item, got %d", last.cursor)
	}

	updated, _ = last.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !updated.(menuModel).exit {
		t.Fatalf("expected the last item to exit")
	}
}

func TestMenuItemsRunKnownCommands(t *testing.T) {
	for _, item := range newMenuModel().items {
		if item.Exit {
			continue
		}
		c, _, err := rootCmd.Find(item.Args)
		if err != nil || c == rootCmd {
			t.Fatalf("menu item %q does not resolve to a command: %v", item.Title, err)
		}
	}
}

func TestMenuModelViewContainsTitleAndHint(t *testing.T) {
	view := newMenuModel().View()
	if !strings.Contains(view, "Dishmate") {
		t.Fatalf("expected view title")
	}
	if !strings.Contains(view, "Enter to run") {
		t.Fatalf("expected hint text")
	}
}
