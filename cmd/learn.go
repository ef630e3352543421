package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/reference"
	"dishmate/internal/domain/model"
)

var learnCmd = &cobra.Command{
	Use:   "learn [topic]",
	Short: "Read short lessons on getting better results",
	Long: "Topics: enzymes, prewash, temperature, quickstart, onboarding, quickwin, mistakes, plan, basics. " +
		"With no topic every lesson is shown.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		topic := ""
		if len(args) == 1 {
			topic = args[0]
		}
		result, err := reference.NewService().Learn(cmd.Context(), app, topic)
		if err != nil {
			return err
		}
		if app.Options.JSON {
			return printResult(result)
		}

		lessons, _ := result.Result.([]reference.Lesson)
		md := lessonsMarkdown(lessons)
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			fmt.Println(md)
			return nil
		}
		out, err := renderer.Render(md)
		if err != nil {
			fmt.Println(md)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func lessonsMarkdown(lessons []reference.Lesson) string {
	parts := make([]string, 0, len(lessons))
	for _, l := range lessons {
		parts = append(parts, lessonMarkdown(l))
	}
	return strings.Join(parts, "\n---\n\n")
}

func lessonMarkdown(l reference.Lesson) string {
	var b strings.Builder
	switch c := l.Content.(type) {
	case model.Education:
		fmt.Fprintf(&b, "# %s\n\n%s\n\n> %s\n", c.Title, c.Content, c.KeyTakeaway)
	case model.QuickStartGuide:
		fmt.Fprintf(&b, "# %s\n\n_%s_\n", c.Title, c.Subtitle)
		for _, s := range c.Sections {
			fmt.Fprintf(&b, "\n## %s\n\n", s.Title)
			writeBullets(&b, s.Content)
		}
	case []model.OnboardingStep:
		b.WriteString("# Getting started\n")
		for _, s := range c {
			fmt.Fprintf(&b, "\n## %d. %s\n\n%s\n\n_Why it matters:_ %s\n", s.StepNumber, s.Title, s.Action, s.WhyItMatters)
		}
	case model.QuickWin:
		fmt.Fprintf(&b, "# %s\n\n%s\n\n**How:** %s\n\n**Expect:** %s\n", c.Title, c.Description, c.HowTo, c.ExpectedResult)
	case []model.Mistake:
		b.WriteString("# Common mistakes\n")
		for i, m := range c {
			fmt.Fprintf(&b, "\n## %d. %s\n\n%s\n\n**Instead:** %s\n", i+1, m.Mistake, m.WhyItsWrong, m.WhatToDoInstead)
		}
	case model.ActionPlan:
		b.WriteString("# Your action plan\n\n## Tonight\n\n")
		writeBullets(&b, c.Tonight)
		b.WriteString("\n## This week\n\n")
		writeBullets(&b, c.ThisWeek)
		b.WriteString("\n## Ongoing\n\n")
		writeBullets(&b, c.Ongoing)
	case model.DishwasherBasics:
		b.WriteString("# How a dishwasher works\n\n")
		writeBullets(&b, c.HowItWorks)
		b.WriteString("\n## Wash phases\n")
		for _, p := range c.Phases {
			fmt.Fprintf(&b, "\n### %s (%s)\n\n%s\n", p.Name, p.Duration, p.Description)
			if p.KeyInsight != "" {
				fmt.Fprintf(&b, "\n> %s\n", p.KeyInsight)
			}
		}
		fmt.Fprintf(&b, "\n**Detergent:** %s\n\n**Rinse aid:** %s\n", c.DetergentRole, c.RinseAidRole)
	default:
		fmt.Fprintf(&b, "# %s\n", l.Topic)
	}
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}
