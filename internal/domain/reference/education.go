package reference

import "dishmate/internal/domain/model"

func EnzymeExplanation() model.Education {
	return model.Education{
		Title: "How Enzymes Work in Your Dishwasher",
		Content: `Dishwasher detergent contains enzymes - biological catalysts that break down specific types of food residue:

• PROTEASES break down protein (eggs, cheese, meat, dairy)
• AMYLASES break down starch (pasta, rice, potato, bread)
• LIPASES break down fats and oils

Enzymes work best at moderate temperatures (40-55°C) and need TIME to work. This is why:
- ECO cycles run longer at lower temps - giving enzymes maximum working time
- QUICK cycles often leave residue - not enough time for enzymes to work
- INTENSIVE cycles use high heat instead of enzymes - temperature does the cleaning

The practical takeaway: For protein and starch residue, ECO cycle often cleans BETTER than shorter, hotter cycles because it gives enzymes the time they need.`,
		KeyTakeaway: "Longer isn't slower cleaning - it's smarter cleaning. Enzymes need time, not heat.",
	}
}

func PrewashExplanation() model.Education {
	return model.Education{
		Title: "Why Pre-Wash Detergent Matters",
		Content: `Every dishwasher runs a PRE-WASH phase before the main cycle. This is when:
- Water sprays to loosen food
- The detergent DISPENSER is still CLOSED

If you use pods or tablets, they sit in the closed dispenser during this entire phase. The pre-wash uses only plain water - no cleaning power.

With POWDER, you can put some loose in the door or tub floor. This powder:
- Dissolves immediately when water hits
- Provides cleaning power during pre-wash
- Tackles grease before it can spread

This is why powder often cleans greasy dishes better than pods - it's not better detergent, it's using the pre-wash phase that pods waste.`,
		KeyTakeaway: "Add 1-1.5 tablespoons of powder loose in the door for pre-wash. The rest goes in the dispenser.",
	}
}

func TemperatureExplanation() model.Education {
	return model.Education{
		Title: "Understanding Cycle Temperatures",
		Content: `Different temperatures serve different purposes:

40-50°C (ECO, DELICATE):
- Optimal for enzyme activity
- Gentle on plastics and delicates
- Saves energy
- Needs longer time to clean

55-65°C (NORMAL):
- Good balance of enzyme activity and cleaning power
- Effective on most soil types
- Standard energy usage

65-75°C (INTENSIVE):
- High temperature does most cleaning
- Enzymes become less effective
- Good for baked-on, burnt food
- Uses more energy

70-80°C (SANITISE final rinse):
- Kills bacteria and germs
- Can damage plastics
- Reserved for hygiene needs

The takeaway: Higher temperature isn't always better. For everyday dishes, moderate temps with good enzyme time often clean better than short, hot cycles.`,
		KeyTakeaway: "Match the temperature to your soil type. Protein needs time (Eco), baked-on needs heat (Intensive).",
	}
}

// AllEducation returns the enzyme, pre-wash and temperature explainers in
// that order.
func AllEducation() []model.Education {
	return []model.Education{
		EnzymeExplanation(),
		PrewashExplanation(),
		TemperatureExplanation(),
	}
}
