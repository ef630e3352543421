package maintenance

import "dishmate/internal/domain/model"

var tasks = []model.MaintenanceTaskInfo{
	{
		ID:              model.TaskCleanFilter,
		Name:            "Clean the Filter",
		Description:     "Remove and clean the filter to prevent food buildup and bad smells.",
		Frequency:       model.FrequencyMonthly,
		ImportanceLevel: model.ImportanceCritical,
		TimeMinutes:     5,
		Steps: []string{
			"Remove the bottom rack to access the filter.",
			"Locate the filter at the bottom of the tub (usually centre).",
			"Twist the filter counter-clockwise and lift out.",
			"Rinse under hot running water.",
			"Use a soft brush (old toothbrush) to scrub the mesh.",
			"Check underneath for any trapped debris.",
			"Replace the filter and twist to lock in place.",
		},
		Tools: []string{
			"Soft brush or old toothbrush",
		},
		Tips: []string{
			"A dirty filter is the #1 cause of dishwasher smell and poor cleaning.",
			"If you don't scrape plates, clean the filter more often.",
			"The filter has multiple parts - make sure you clean all of them.",
		},
		SignsNeeded: []string{
			"Bad smell from dishwasher",
			"Food particles on clean dishes",
			"Dishes not coming out clean",
			"Visible debris in filter",
		},
	},
	{
		ID:              model.TaskCleanSprayArms,
		Name:            "Clean the Spray Arms",
		Description:     "Clear blocked spray arm holes to ensure proper water distribution.",
		Frequency:       model.FrequencyQuarterly,
		ImportanceLevel: model.ImportanceHigh,
		TimeMinutes:     10,
		Steps: []string{
			"Remove the bottom and top racks.",
			"Locate the spray arms (bottom and possibly middle/top).",
			"Remove spray arms by twisting or unclipping (check manual).",
			"Hold under running water and look through the holes.",
			"Use a toothpick to clear any blocked holes.",
			"Soak in white vinegar for 15 mins if heavily clogged.",
			"Rinse thoroughly and reattach.",
		},
		Tools: []string{
			"Toothpick",
			"White vinegar (optional)",
		},
		Tips: []string{
			"Blocked spray arm holes cause random dirty spots on dishes.",
			"Seeds, bits of label, and mineral buildup are common culprits.",
			"Spin the arms by hand after reattaching to check they move freely.",
		},
		SignsNeeded: []string{
			"Random items not getting clean",
			"Uneven cleaning (some dishes clean, others dirty)",
			"Visible blockage in spray holes",
		},
	},
	{
		ID:              model.TaskCleanDoorSeal,
		Name:            "Clean the Door Seal",
		Description:     "Wipe the rubber gasket around the door to prevent mould and odours.",
		Frequency:       model.FrequencyMonthly,
		ImportanceLevel: model.ImportanceMedium,
		TimeMinutes:     5,
		Steps: []string{
			"Open the door fully.",
			"Inspect the rubber seal/gasket around the door edge.",
			"Make a solution of equal parts white vinegar and water.",
			"Dip a cloth in the solution and wipe the entire seal.",
			"Pull back the folds of the gasket to clean inside.",
			"Pay attention to the bottom where water collects.",
			"Dry with a clean cloth.",
		},
		Tools: []string{
			"White vinegar",
			"Clean cloths (2)",
		},
		Tips: []string{
			"Mould loves to hide in the folds of the door seal.",
			"The bottom of the seal is often the dirtiest area.",
			"Do this more often if you keep the door closed between uses.",
		},
		SignsNeeded: []string{
			"Musty smell when opening door",
			"Visible mould or black spots on seal",
			"Debris trapped in seal folds",
		},
	},
	{
		ID:              model.TaskRunCleaningCycle,
		Name:            "Run a Cleaning Cycle",
		Description:     "Run an empty hot cycle to dissolve buildup and sanitise the interior.",
		Frequency:       model.FrequencyMonthly,
		ImportanceLevel: model.ImportanceHigh,
		TimeMinutes:     90,
		Steps: []string{
			"Remove all dishes and racks (racks can stay if convenient).",
			"Place 2 cups of white vinegar in a bowl on the top rack.",
			"Run the hottest cycle available.",
			"After the cycle: sprinkle 1 cup of bicarb soda on the bottom.",
			"Run a short hot cycle to freshen.",
			"Wipe any residue from the door and edges.",
		},
		Tools: []string{
			"White vinegar (2 cups)",
			"Bicarb soda (1 cup)",
		},
		Tips: []string{
			"Vinegar dissolves mineral deposits and grease.",
			"Bicarb neutralises odours and provides gentle abrasion.",
			"Commercial dishwasher cleaners work too but cost more.",
			"Do this more often in hard water areas.",
		},
		SignsNeeded: []string{
			"Persistent bad smell",
			"Visible scale buildup",
			"Dishes coming out with residue",
			"Monthly maintenance regardless",
		},
	},
	{
		ID:              model.TaskCheckRinseAid,
		Name:            "Check Rinse Aid Level",
		Description:     "Ensure rinse aid dispenser is full for spot-free drying.",
		Frequency:       model.FrequencyMonthly,
		ImportanceLevel: model.ImportanceMedium,
		TimeMinutes:     2,
		Steps: []string{
			"Open the dishwasher door.",
			"Locate the rinse aid dispenser (usually next to detergent dispenser).",
			"Open the cap/lid.",
			"Check the level (many have an indicator window).",
			"Fill with rinse aid if low.",
			"Adjust the dosing dial if needed (usually 1-5 or 1-6).",
			"Close the cap securely.",
		},
		Tools: []string{
			"Rinse aid refill",
		},
		Tips: []string{
			"Rinse aid helps water sheet off dishes instead of beading.",
			"Without it, you'll get water spots, especially on glasses.",
			"In hard water areas, set the dial to maximum.",
			"Rinse aid typically lasts 1-2 months.",
		},
		SignsNeeded: []string{
			"Water spots on glasses",
			"Dishes not drying well",
			"Empty indicator light",
		},
	},
	{
		ID:              model.TaskCheckSalt,
		Name:            "Check Dishwasher Salt",
		Description:     "Refill the salt compartment to soften water and improve cleaning.",
		Frequency:       model.FrequencyMonthly,
		ImportanceLevel: model.ImportanceHigh,
		TimeMinutes:     3,
		Steps: []string{
			"Check if your dishwasher has a salt compartment (usually bottom left of tub).",
			"Unscrew the salt compartment cap.",
			"Check the salt level (may have indicator light).",
			"If low, use the funnel provided to add dishwasher salt.",
			"Fill until salt is visible at the top.",
			"Wipe any spilled salt from the tub.",
			"Replace the cap securely.",
		},
		Tools: []string{
			"Dishwasher salt (not table salt!)",
		},
		Tips: []string{
			"Only needed if you have a salt compartment and moderate/hard water.",
			"Use only dishwasher salt - table salt can damage the machine.",
			"Salt softens water, preventing limescale and improving cleaning.",
			"In soft water areas, you may not need salt at all.",
		},
		SignsNeeded: []string{
			"Salt indicator light on",
			"White residue on dishes (hard water)",
			"Limescale buildup visible",
		},
	},
	{
		ID:              model.TaskWipeExterior,
		Name:            "Wipe Exterior & Controls",
		Description:     "Clean the door, handle, and control panel.",
		Frequency:       model.FrequencyWeekly,
		ImportanceLevel: model.ImportanceLow,
		TimeMinutes:     3,
		Steps: []string{
			"Wipe the door front with a damp cloth.",
			"For stainless steel: wipe in direction of grain.",
			"Clean the handle (high-touch area).",
			"Wipe the control panel gently (don't spray directly).",
			"Dry with a clean cloth to prevent streaks.",
		},
		Tools: []string{
			"Damp cloth",
			"Dry cloth",
			"Stainless steel cleaner (optional)",
		},
		Tips: []string{
			"This is purely cosmetic but keeps your kitchen looking clean.",
			"Fingerprints show easily on stainless steel.",
			"Don't use abrasive cleaners on the control panel.",
		},
		SignsNeeded: []string{
			"Visible fingerprints or smudges",
			"Kitchen cleaning day",
		},
	},
	{
		ID:              model.TaskCheckDrain,
		Name:            "Check Drain Area",
		Description:     "Inspect the drain area for blockages and debris.",
		Frequency:       model.FrequencyQuarterly,
		ImportanceLevel: model.ImportanceMedium,
		TimeMinutes:     5,
		Steps: []string{
			"Remove the bottom rack.",
			"Locate the drain area at the bottom of the tub.",
			"Remove any visible debris (food particles, glass, etc.).",
			"Check that the drain cover isn't blocked.",
			"If connected to garbage disposal: run the disposal first.",
			"Look for standing water (sign of drainage issue).",
		},
		Tools: []string{
			"Gloves (optional)",
			"Paper towel",
		},
		Tips: []string{
			"Standing water after a cycle indicates a drainage problem.",
			"Small items like broken glass can block the drain.",
			"Always run garbage disposal before starting dishwasher.",
		},
		SignsNeeded: []string{
			"Standing water after cycle",
			"Slow draining",
			"Gurgling sounds",
		},
	},
}
