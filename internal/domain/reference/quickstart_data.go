package reference

import "dishmate/internal/domain/model"

var quickStart = model.QuickStartGuide{
	Title:    "Get Cleaner Dishes in 60 Seconds",
	Subtitle: "Three changes that make an immediate difference",
	Sections: []model.QuickStartSection{
		{
			Title: "The Pre-Wash Secret",
			Content: []string{
				"Your dishwasher runs a pre-wash before opening the detergent dispenser.",
				"Pods sit closed during this phase - plain water fails to cut grease.",
				"Put 1 tablespoon of powder loose in the door before closing.",
				"This single change fixes most \"dishes not clean\" problems.",
			},
		},
		{
			Title: "Stop Pre-Rinsing",
			Content: []string{
				"Don't rinse dishes before loading - just scrape off large chunks.",
				"Enzymes in detergent NEED food residue to work on.",
				"Pre-rinsing wastes 20+ litres of water per load.",
				"Dried-on food is fine - enzymes break it down regardless.",
			},
		},
		{
			Title: "Use the Right Cycle",
			Content: []string{
				"Quick cycle is only for water-marked glasses.",
				"Eco cycle is best for everyday dishes - enzymes need time.",
				"Normal cycle for mixed loads with some grease.",
				"Intensive only for baked-on, burnt, or very greasy items.",
			},
		},
	},
}

var onboarding = []model.OnboardingStep{
	{
		StepNumber:   1,
		Title:        "Switch to Powder",
		Action:       "Buy powder detergent instead of pods. Any supermarket brand works.",
		WhyItMatters: "Powder lets you use the pre-wash phase that pods waste completely.",
	},
	{
		StepNumber:   2,
		Title:        "Add Pre-Wash Detergent",
		Action:       "Put 1 tablespoon of powder loose in the door or tub floor before closing.",
		WhyItMatters: "This dissolves during pre-wash, tackling grease before it can spread.",
	},
	{
		StepNumber:   3,
		Title:        "Fill the Dispenser",
		Action:       "Put 1.5-2 tablespoons in the dispenser compartment.",
		WhyItMatters: "Fresh detergent for the main wash finishes the cleaning job.",
	},
	{
		StepNumber:   4,
		Title:        "Stop Pre-Rinsing",
		Action:       "Scrape large chunks into the bin. Load everything else as-is.",
		WhyItMatters: "Enzymes need food residue to work. Rinsing removes what they need.",
	},
	{
		StepNumber:   5,
		Title:        "Choose the Right Cycle",
		Action:       "Use Eco for most loads, Normal for greasy dishes.",
		WhyItMatters: "Longer cycles give enzymes time to break down food properly.",
	},
}

var quickWin = model.QuickWin{
	Title:          "The One Change That Fixes Most Problems",
	Description: "Add pre-wash detergent. That's it. This single technique solves greasy dishes, food residue, and poor cleaning for the majority of users.",
	HowTo:          "Put 1 tablespoon of powder loose in the door or on the tub floor before you close the door. Then add 1.5-2 tablespoons in the dispenser as normal. Run Normal or Eco cycle.",
	ExpectedResult: "Your greasy dishes will come out clean. The grease that used to remain will be broken down during pre-wash instead of spreading around.",
}

var topMistakes = []model.Mistake{
	{
		Mistake:         "Pre-rinsing dishes before loading",
		WhyItsWrong:     "Enzymes in detergent need food residue to work on. Rinsing removes what they need and wastes water.",
		WhatToDoInstead: "Scrape large chunks into the bin. Load everything else as-is, even dried-on food.",
	},
	{
		Mistake:         "Using pods for all loads",
		WhyItsWrong:     "Pods can't provide detergent during the pre-wash phase. Grease spreads instead of being cleaned.",
		WhatToDoInstead: "Switch to powder. Add some loose in the door for pre-wash, rest in the dispenser.",
	},
	{
		Mistake:         "Using Quick cycle for everything",
		WhyItsWrong:     "Quick cycles don't give enzymes enough time to break down food. Protein especially needs time.",
		WhatToDoInstead: "Use Eco or Normal for everyday dishes. Save Quick for water-marked glasses only.",
	},
	{
		Mistake:         "Not using enough detergent",
		WhyItsWrong:     "Packet recommendations assume average water. Hard water needs 50-100% more.",
		WhatToDoInstead: "Test your water hardness. Increase detergent if you have hard water or heavy soil.",
	},
	{
		Mistake:         "Ignoring the filter",
		WhyItsWrong:     "A clogged filter recirculates dirty water. Nothing comes clean.",
		WhatToDoInstead: "Clean the filter monthly. It takes 2 minutes and is the most important maintenance.",
	},
}

var actionPlan = model.ActionPlan{
	Tonight: []string{
		"Put 1 tablespoon of powder loose in the door before closing",
		"Put 1.5 tablespoons in the dispenser",
		"Run Normal or Eco cycle (not Quick)",
		"Don't rinse dishes - just scrape large chunks",
	},
	ThisWeek: []string{
		"Buy powder detergent if you're using pods",
		"Check and clean the filter (bottom of tub, twist to remove)",
		"Fill the rinse aid dispenser if it's low",
		"Test your water hardness with the soap bottle test",
	},
	Ongoing: []string{
		"Always add pre-wash detergent (loose in door)",
		"Clean filter monthly",
		"Run a vinegar cleaning cycle monthly",
		"Use Eco for most loads - it actually cleans better",
	},
}

var basics = model.DishwasherBasics{
	HowItWorks: []string{
		"Water sprays from rotating arms, hitting dishes from below and above.",
		"Detergent contains enzymes that break down specific types of food.",
		"Hot water helps dissolve grease and sanitise dishes.",
		"Multiple rinses remove detergent and loosened food.",
		"Final rinse with rinse aid helps water sheet off for drying.",
	},
	Phases: []model.WashPhase{
		{
			Name:        "Pre-Wash",
			Description: "Water sprays to loosen food. Dispenser is CLOSED during this phase.",
			Duration:    "5-15 minutes",
			KeyInsight:  "This is why pods fail - they're trapped in the closed dispenser. Loose powder works here.",
		},
		{
			Name:        "Main Wash",
			Description: "Dispenser opens, releasing detergent. Hot water and enzymes clean dishes.",
			Duration:    "20-60 minutes",
		},
		{
			Name:        "Rinse Cycles",
			Description: "Clean water removes loosened food and detergent residue.",
			Duration:    "10-20 minutes",
		},
		{
			Name:        "Final Rinse",
			Description: "Hot water rinse with rinse aid. Helps water sheet off for spot-free drying.",
			Duration:    "5-10 minutes",
		},
		{
			Name:        "Drying",
			Description: "Residual heat evaporates water. Some machines use a fan or heating element.",
			Duration:    "15-30 minutes (varies)",
		},
	},
	DetergentRole: "Detergent contains surfactants (cut grease), enzymes (break down food), and builders (soften water). The enzymes do most of the cleaning work on protein and starch.",
	RinseAidRole:  "Rinse aid reduces water surface tension so it sheets off dishes instead of beading. This prevents water spots and helps dishes dry faster.",
}
