package reference

import "dishmate/internal/domain/model"

var cycles = map[model.CycleType]model.CycleInfo{
	model.CycleQuick: {
		Cycle:       model.CycleQuick,
		Name:        "Quick / Express",
		Duration:    "30-45 minutes",
		Temperature: "45-55°C",
		Description: "A short cycle for lightly soiled dishes that need a quick clean.",
		HowItWorks: []string{
			"Skips or shortens the pre-wash phase.",
			"Uses moderate temperature to clean quickly.",
			"Limited enzyme activation time.",
			"Often skips the drying phase.",
		},
		BestFor: []string{
			"Recently used dishes with light residue",
			"Glasses and cups with just water marks",
			"Items needed soon for another meal",
			"Lightly soiled plates from light meals",
		},
		NotSuitableFor: []string{
			"Greasy dishes (grease needs pre-wash detergent)",
			"Protein residue like egg or cheese (needs enzyme time)",
			"Baked-on or dried food",
			"Heavily soiled pots and pans",
		},
		EnzymeFriendly: false,
		EnergyUsage:    model.TierLow,
		WaterUsage:     model.TierMedium,
		DetergentNotes: "No pre-wash detergent needed. Use less main detergent (about 1 tablespoon) since there's less time to rinse.",
	},
	model.CycleEco: {
		Cycle:       model.CycleEco,
		Name:        "Eco / Energy Saver",
		Duration:    "2-3 hours",
		Temperature: "40-50°C (lower than normal)",
		Description: "An energy-efficient cycle that uses lower temperatures but runs longer, giving enzymes time to work.",
		HowItWorks: []string{
			"Uses lower water temperature to save energy.",
			"Runs much longer to compensate for lower heat.",
			"Extended enzyme activation time for thorough cleaning.",
			"Pre-wash phase included (add detergent to door).",
			"Efficient use of water through multiple short cycles.",
		},
		BestFor: []string{
			"Everyday dishes with normal soil",
			"Protein-based residue (eggs, cheese, dairy)",
			"Starchy residue (pasta, rice, potato)",
			"When you have time and want to save energy",
			"Overnight loads",
		},
		NotSuitableFor: []string{
			"Heavily baked-on or burnt food (needs higher temp)",
			"When you need dishes quickly",
			"Very greasy loads (may need higher temp)",
		},
		EnzymeFriendly: true,
		EnergyUsage:    model.TierLow,
		WaterUsage:     model.TierLow,
		DetergentNotes: "Add 1 tablespoon pre-wash detergent in the door, 1.5 tablespoons in the dispenser. Enzymes work best in this cycle.",
	},
	model.CycleNormal: {
		Cycle:       model.CycleNormal,
		Name:        "Normal / Regular",
		Duration:    "1-1.5 hours",
		Temperature: "55-65°C",
		Description: "The standard cycle that balances cleaning power, time, and efficiency.",
		HowItWorks: []string{
			"Full pre-wash phase (add detergent to door).",
			"Main wash at moderate-high temperature.",
			"Adequate enzyme activation time.",
			"Proper rinse and dry phases.",
		},
		BestFor: []string{
			"Mixed loads with various soil levels",
			"Everyday dinner dishes",
			"When you're unsure which cycle to use",
			"Most general dishwashing needs",
		},
		NotSuitableFor: []string{
			"Very lightly soiled items (wastes energy)",
			"Extremely heavy soil (may need intensive)",
			"Delicate items that can't handle the heat",
		},
		EnzymeFriendly: true,
		EnergyUsage:    model.TierMedium,
		WaterUsage:     model.TierMedium,
		DetergentNotes: "Add 1 tablespoon pre-wash detergent in the door, 1.5-2 tablespoons in the dispenser.",
	},
	model.CycleIntensive: {
		Cycle:       model.CycleIntensive,
		Name:        "Intensive / Heavy",
		Duration:    "1.5-2.5 hours",
		Temperature: "65-75°C",
		Description: "A powerful cycle with higher temperatures for heavily soiled dishes.",
		HowItWorks: []string{
			"Extended pre-wash phase with higher water volume.",
			"Main wash at high temperature.",
			"Additional wash phases for stubborn soil.",
			"Higher water pressure.",
			"Extended drying with heat.",
		},
		BestFor: []string{
			"Baked-on and burnt food",
			"Very greasy pots and pans",
			"Casserole dishes and roasting trays",
			"Sunday roast cleanup",
			"Items that sat overnight with food",
		},
		NotSuitableFor: []string{
			"Delicate items (high heat can damage)",
			"Plastic containers (may warp)",
			"Lightly soiled items (wastes energy)",
			"Crystal or fine glassware",
		},
		EnzymeFriendly: false,
		EnergyUsage:    model.TierHigh,
		WaterUsage:     model.TierHigh,
		DetergentNotes: "Use maximum pre-wash detergent (1.5 tablespoons) and main dose (2.5+ tablespoons). The high temperature does most of the work.",
	},
	model.CycleDelicate: {
		Cycle:       model.CycleDelicate,
		Name:        "Delicate / Glass",
		Duration:    "1-1.5 hours",
		Temperature: "40-45°C",
		Description: "A gentle cycle with lower pressure and temperature for fragile items.",
		HowItWorks: []string{
			"Lower water pressure to protect items.",
			"Lower temperature to prevent thermal shock.",
			"Gentler spray patterns.",
			"May skip heated drying to prevent stress.",
		},
		BestFor: []string{
			"Fine glassware and crystal",
			"China and porcelain",
			"Wine glasses",
			"Items marked \"top rack only\"",
			"Antique or valuable dishes",
		},
		NotSuitableFor: []string{
			"Heavily soiled items",
			"Greasy dishes",
			"Baked-on food",
			"Items that need thorough sanitising",
		},
		EnzymeFriendly: true,
		EnergyUsage:    model.TierLow,
		WaterUsage:     model.TierMedium,
		DetergentNotes: "Use less detergent (0.5 tablespoon pre-wash, 1 tablespoon main). Too much can leave residue on delicate items.",
	},
	model.CycleSanitise: {
		Cycle:       model.CycleSanitise,
		Name:        "Sanitise / Hygiene",
		Duration:    "1.5-2 hours",
		Temperature: "70-80°C (final rinse)",
		Description: "A high-temperature cycle designed to kill bacteria and germs.",
		HowItWorks: []string{
			"Normal wash phases.",
			"Final rinse at very high temperature (70°C+).",
			"Extended high-temperature phase to sanitise.",
			"Hot air drying.",
		},
		BestFor: []string{
			"Baby bottles and feeding equipment",
			"Chopping boards (especially after raw meat)",
			"Items used by someone who was sick",
			"Pet bowls",
			"When hygiene is the top priority",
		},
		NotSuitableFor: []string{
			"Plastic items (will warp)",
			"Delicate glassware",
			"Items not rated for high temperatures",
			"Everyday loads (wastes energy)",
		},
		EnzymeFriendly: false,
		EnergyUsage:    model.TierHigh,
		WaterUsage:     model.TierMedium,
		DetergentNotes: "Standard detergent amounts. The high temperature does the sanitising work.",
	},
}
