package reference

import (
	"slices"

	"dishmate/internal/domain/model"
)

func QuickStart() model.QuickStartGuide {
	g := quickStart
	g.Sections = make([]model.QuickStartSection, len(quickStart.Sections))
	for i, s := range quickStart.Sections {
		s.Content = slices.Clone(s.Content)
		g.Sections[i] = s
	}
	return g
}

func OnboardingSteps() []model.OnboardingStep { return slices.Clone(onboarding) }

func QuickWin() model.QuickWin { return quickWin }

func TopMistakes() []model.Mistake { return slices.Clone(topMistakes) }

func ActionPlan() model.ActionPlan {
	return model.ActionPlan{
		Tonight:  slices.Clone(actionPlan.Tonight),
		ThisWeek: slices.Clone(actionPlan.ThisWeek),
		Ongoing:  slices.Clone(actionPlan.Ongoing),
	}
}

func DishwasherBasics() model.DishwasherBasics {
	b := basics
	b.HowItWorks = slices.Clone(basics.HowItWorks)
	b.Phases = slices.Clone(basics.Phases)
	return b
}
