package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dishmate/internal/domain/model"
	"dishmate/internal/domain/troubleshoot"
)

type walkerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newWalkerKeys() walkerKeys {
	return walkerKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k walkerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k walkerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// walkerFrame is a question already answered, kept so back can return to it.
type walkerFrame struct {
	step     model.QuestionStep
	category model.TroubleshootCategory
	answer   string
}

type walkerModel struct {
	keys     walkerKeys
	help     help.Model
	category model.TroubleshootCategory
	current  model.DiagnosisStep
	history  []walkerFrame
	cursor   int
	quit     bool
}

// walkResult is what the walker hands back: the category it settled on and
// the answers given from that category's first question.
type walkResult struct {
	category model.TroubleshootCategory
	answers  []string
}

func newWalkerModel(category model.TroubleshootCategory) walkerModel {
	current := troubleshoot.InitialQuestion()
	if category != "" {
		current = troubleshoot.Flow(category)
	}
	return walkerModel{
		keys:     newWalkerKeys(),
		help:     help.New(),
		category: category,
		current:  current,
	}
}

func (m walkerModel) Init() tea.Cmd { return nil }

func (m walkerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quit = !m.done()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		m.back()
	case m.done():
		if key.Matches(keyMsg, m.keys.Select) {
			return m, tea.Quit
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if q, ok := m.current.(model.QuestionStep); ok && m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.answer()
	}
	return m, nil
}

func (m walkerModel) done() bool {
	return m.current.Kind() != model.StepKindQuestion
}

func (m *walkerModel) answer() {
	q, ok := m.current.(model.QuestionStep)
	if !ok || len(q.Options) == 0 {
		return
	}
	opt := q.Options[m.cursor]
	m.history = append(m.history, walkerFrame{step: q, category: m.category, answer: opt.Value})

	if q.ID == troubleshoot.StartStepID {
		if _, known := troubleshoot.Category(model.TroubleshootCategory(opt.Value)); known {
			m.category = model.TroubleshootCategory(opt.Value)
			m.current = troubleshoot.Flow(m.category)
			m.cursor = 0
			return
		}
	}
	m.current = troubleshoot.ProcessAnswer(q.ID, opt.Value)
	m.cursor = 0
}

func (m *walkerModel) back() {
	if len(m.history) == 0 {
		return
	}
	last := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.current = last.step
	m.category = last.category
	m.cursor = 0
	for i, o := range last.step.Options {
		if o.Value == last.answer {
			m.cursor = i
		}
	}
}

func (m walkerModel) result() walkResult {
	res := walkResult{category: m.category, answers: []string{}}
	for _, f := range m.history {
		if f.step.ID == troubleshoot.StartStepID && f.category == "" && m.category != "" {
			continue
		}
		res.answers = append(res.answers, f.answer)
	}
	return res
}

func (m walkerModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render("Dishmate Troubleshooter")
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	faint := lipgloss.NewStyle().Faint(true)

	lines := []string{title}
	if m.category != "" {
		lines = append(lines, faint.Render(fmt.Sprintf("Problem: %s · step %d", m.category, len(m.history)+1)))
	}
	lines = append(lines, "")

	switch step := m.current.(type) {
	case model.QuestionStep:
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(step.Question), "")
		for i, o := range step.Options {
			if i == m.cursor {
				lines = append(lines, selectedStyle.Render("> "+o.Label))
				continue
			}
			lines = append(lines, "  "+o.Label)
		}
	case model.SolutionTerminal:
		lines = append(lines, renderSolution(step.Solution))
		lines = append(lines, "", faint.Render("enter to finish, esc to go back"))
	case model.DiagnosisTerminal:
		lines = append(lines, step.Diagnosis)
		lines = append(lines, "", faint.Render("enter to finish, esc to go back"))
	}

	lines = append(lines, "", m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderSolution(s model.TroubleshootSolution) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Render(s.Title))
	b.WriteString("\n" + s.Summary + "\n")
	for i, step := range s.Steps {
		fmt.Fprintf(&b, "\n%d. %s", i+1, step)
	}
	if len(s.Tips) > 0 {
		b.WriteString("\n\nTips:")
		for _, t := range s.Tips {
			b.WriteString("\n  • " + t)
		}
	}
	if s.ProductRecommendation != "" {
		b.WriteString("\n\n" + s.ProductRecommendation)
	}
	return b.String()
}

// runTroubleshootWalker reports ok=false when the user quit before reaching
// an answer.
func runTroubleshootWalker(category model.TroubleshootCategory) (walkResult, bool, error) {
	final, err := tea.NewProgram(newWalkerModel(category)).Run()
	if err != nil {
		return walkResult{}, false, err
	}
	m, ok := final.(walkerModel)
	if !ok || m.quit {
		return walkResult{}, false, nil
	}
	return m.result(), true, nil
}
