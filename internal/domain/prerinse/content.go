package prerinse

import "dishmate/internal/domain/model"

const (
	guideSummary     = "Scrape, don't rinse. Scrape large food chunks into bin. Leave everything else."
	guideKeyTakeaway = "Modern detergents use enzymes that need food residue to work on. Pre-rinsing removes what makes them effective and wastes 20+ litres of water per load."
)

var whatToLeave = []model.PreRinseItem{
	{
		Item:   "Grease and oil",
		Reason: "Surfactants in detergent need fat to emulsify. Rinsing grease just spreads it around - leave it for the detergent to work on.",
	},
	{
		Item:   "Dried sauce and food residue",
		Reason: "Enzymes in detergent break this down easily. They actually need the food there to work on - pre-rinsing removes what enzymes need.",
	},
	{
		Item:   "Dried egg, cheese, dairy",
		Reason: "Proteases (protein enzymes) handle this perfectly. Dried protein is fine - enzymes don't care if it's fresh or dried.",
	},
	{
		Item:   "Pasta, rice, potato residue",
		Reason: "Amylases (starch enzymes) dissolve this easily. Water alone won't help - you need enzymes.",
	},
	{
		Item:   "Sauce smears and thin residue",
		Reason: "Hot water + detergent handles this in seconds. No prep needed.",
	},
}

var whatToScrape = []model.PreRinseItem{
	{
		Item:   "Large food chunks",
		Reason: "Bones, vegetable pieces, meat chunks won't dissolve - they'll just clog the filter and drain.",
	},
	{
		Item:   "Seeds, pips, toothpicks, labels",
		Reason: "Physical debris that won't break down. Will block the filter and potentially damage the pump.",
	},
	{
		Item:   "Thick burnt/carbonised residue",
		Reason: "Scrape the worst burnt bits, leave moderate residue. Intensive cycle + soak can handle the rest.",
	},
	{
		Item:   "Coffee grounds, tea leaves",
		Reason: "These clog the filter and drain. Always empty and rinse coffee mugs and teapots.",
	},
	{
		Item:   "Paper (napkins stuck to plates)",
		Reason: "Paper turns to mush and clogs everything. Remove before loading.",
	},
}

var commonMyths = []model.Myth{
	{
		Myth:    "My mum always rinsed dishes first",
		Reality: "Old dishwashers and detergents needed this. Modern machines and enzyme-based detergents don't. Pre-rinsing wastes 20+ litres of water per load, your time, and actually makes detergent less effective by removing what it needs to work on.",
	},
	{
		Myth:    "Food will clog my dishwasher",
		Reality: "That's what the filter is for. Clean it monthly and you'll never have problems. Only scrape off chunks that won't dissolve: bones, seeds, labels, paper. Normal food residue is fine.",
	},
	{
		Myth:    "Dried food is harder to clean",
		Reality: "Enzymes don't care if food is fresh or dried. They break down protein and starch the same way - through chemistry, not physical scrubbing. The only exception: acidic foods (tomato sauce) can stain if left for days.",
	},
	{
		Myth:    "I've always done it this way and it works",
		Reality: "Try skipping the rinse for a week. If your dishes come out just as clean, you've been wasting water and time. The only change you might need: add pre-wash detergent (1 tbsp in the door) if you weren't already.",
	},
	{
		Myth:    "Pre-rinsing saves water by making the dishwasher work less",
		Reality: "A full dishwasher cycle uses about 10-15 litres. Pre-rinsing by hand uses about 20+ litres. You're using MORE water, not less. And the dishwasher uses the same amount regardless of how dirty the dishes are.",
	},
}
