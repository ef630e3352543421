package troubleshoot

import "dishmate/internal/domain/model"

var solutions = map[string]model.TroubleshootSolution{
	"hard_water_confirmed": {
		Title:   "Hard Water Deposits",
		Summary: "Your water is leaving mineral scale on dishes.",
		Steps: []string{
			"INCREASE DETERGENT: Hard water needs 50-100% more than the packet says. Try doubling your current amount.",
			"CHECK RINSE AID: Fill the dispenser and set to maximum. Rinse aid prevents minerals from sticking.",
			"USE THE SALT COMPARTMENT: If your machine has one (check bottom of tub), fill it. This softens water during the wash.",
			"MONTHLY CLEAN: Run empty cycle with 2 cups white vinegar. Dissolves built-up scale inside the machine.",
		},
		Tips: []string{
			"Hard water is the #1 cause of dishwasher problems.",
			"Once you adjust for it, everything improves.",
		},
		ProductRecommendation: "Try our hard-water formula powder",
	},
	"soft_water_residue": {
		Title:   "Detergent Residue (Soft Water)",
		Summary: "You may be using too much detergent for soft water.",
		Steps: []string{
			"REDUCE DETERGENT: Soft water needs less detergent. Try halving your current amount.",
			"CHECK RINSE AID: Make sure rinse aid is filled - it helps rinse away detergent.",
			"RUN HOTTER: If your machine has a temp boost option, try it.",
		},
		Tips: []string{
			"Soft water is great for cleaning but detergent can leave residue.",
			"Less is more with soft water.",
		},
	},
	"test_water_hardness": {
		Title:   "Let's Test Your Water",
		Summary: "Quick home test to determine your water hardness.",
		Steps: []string{
			"Fill a clear bottle 1/3 with tap water",
			"Add 10 drops of dish soap",
			"Shake vigorously for 10 seconds",
			"Look at the result: Few suds + milky water = HARD. Some suds + slightly cloudy = MODERATE. Lots of suds + clear water = SOFT.",
		},
		Tips: []string{
			"You can also check with your water provider.",
			"In Australia, most capital cities have soft to moderate water.",
		},
	},
	"pod_not_dissolving": {
		Title:   "Pod/Tablet Not Dissolving Properly",
		Summary: "The coating isn't fully breaking down.",
		Steps: []string{
			"CHECK DISPENSER: Make sure the dispenser door opens freely. Food or utensils may be blocking it.",
			"CHECK WATER TEMPERATURE: Pods need hot water to dissolve. Make sure your water heater is set to 50°C+.",
			"STORE PODS DRY: Store pods in dry place, handle with dry hands. Moisture makes the coating sticky.",
			"USE LONGER CYCLES: Quick/Express cycles may not give pods enough time. Use Normal or longer cycles with pods.",
		},
		Tips: []string{
			"BETTER SOLUTION: Switch to powder. Powder dissolves instantly and lets you add detergent to pre-wash (pods can't do this).",
		},
		ProductRecommendation: "Try our powder - fixes pod problems",
	},
	"powder_not_rinsing": {
		Title:   "Powder Not Rinsing Away",
		Summary: "Powder residue is being left behind.",
		Steps: []string{
			"REDUCE AMOUNT: You might be using too much. Start with 1-1.5 tablespoons and adjust.",
			"CHECK WATER TEMP: Cold water doesn't dissolve powder well. Run hot tap before starting.",
			"CHECK SPRAY ARMS: Remove and clean spray arms - blocked holes mean less rinsing power.",
			"ADD RINSE AID: Helps water sheet off and takes residue with it.",
		},
		Tips: []string{
			"Pre-dissolving powder in warm water before adding can help in cold climates.",
		},
	},
	"gel_residue": {
		Title:   "Gel/Liquid Detergent Residue",
		Summary: "Gel detergents can leave a smeary film.",
		Steps: []string{
			"SWITCH TO POWDER: Gel detergents often lack enzymes and can leave residue. Powder is more effective.",
			"USE LESS: If sticking with gel, try using less.",
			"RUN HOTTER: Higher temperatures help gel rinse away.",
		},
		Tips: []string{
			"Gel and liquid detergents are generally less effective than powder.",
			"They lack the enzymes that break down protein and starch.",
		},
		ProductRecommendation: "Our enzyme-rich powder outperforms gels",
	},
	"water_access_issue": {
		Title:   "Water Isn't Reaching Inside",
		Summary: "Concave items trap air bubbles that block water.",
		Steps: []string{
			"ANGLE EVERYTHING: Bowls, cups, and mugs should tilt toward the spray arm, not sit upright.",
			"FACE THE SPRAY ARM: Items should tilt toward where water comes from (usually centre/bottom).",
			"DON'T NEST: Each item needs its own water access. Overlapping bowls = inner bowl stays dirty.",
			"CHECK SPRAY ARM: Tall items on bottom rack can block it. Spin it by hand before closing door.",
		},
		Tips: []string{
			"The most common loading mistake is putting bowls and cups straight up.",
			"Angling is the key to clean concave items.",
		},
	},
	"cycle_too_weak": {
		Title:   "Cycle Too Weak for Baked-On Food",
		Summary: "Quick cycles can't handle heavy soil.",
		Steps: []string{
			"USE INTENSIVE CYCLE: Baked-on and burnt food needs the extra time and temperature.",
			"ADD PRE-WASH DETERGENT: Put 1-1.5 tablespoons loose in the door before closing.",
			"SOAK FIRST: For really burnt items, soak in hot water + detergent for 30 mins before loading.",
			"SCRAPE THE WORST: Remove large burnt chunks, but leave the rest for enzymes.",
		},
		Tips: []string{
			"Intensive cycle uses more energy but is necessary for heavy soil.",
			"Pre-wash detergent is critical for baked-on messes.",
		},
	},
	"no_prewash_detergent": {
		Title:   "Grease Needs Pre-Wash Detergent",
		Summary: "Your dishwasher runs a pre-wash before opening the detergent dispenser.",
		Steps: []string{
			"USE POWDER INSTEAD OF PODS: Powder lets you add detergent to the pre-wash phase.",
			"PUT SOME IN THE DOOR: Add 1-1.5 tablespoons loose in the door or tub before closing.",
			"REST IN DISPENSER: Put the remainder in the dispenser as normal.",
		},
		Tips: []string{
			"Pods sit in the closed dispenser during pre-wash - that whole phase uses only water.",
			"Grease doesn't dissolve in plain water - it just moves around and redeposits.",
			"The loose powder cleans during pre-wash, the dispenser powder finishes the job.",
		},
		ProductRecommendation: "Our powder fixes greasy dish problems",
	},
	"loading_issue": {
		Title:   "Loading or Detergent Issue",
		Summary: "Everyday food should clean easily - something else is wrong.",
		Steps: []string{
			"CHECK LOADING: Make sure items aren't blocking each other or the spray arms.",
			"CHECK DETERGENT AMOUNT: You might need more, especially if you have hard water.",
			"USE PRE-WASH DETERGENT: Add some loose powder in the door.",
			"CHECK FILTER: A clogged filter recirculates dirty water.",
		},
		Tips: []string{
			"The three keys: proper loading, enough detergent, clean filter.",
		},
	},
	"needs_enzyme_time": {
		Title:   "Protein Needs Time to Break Down",
		Summary: "Egg, cheese, meat, and dairy residue need enzymes plus time.",
		Steps: []string{
			"USE LONGER CYCLES: Normal (1+ hour) or Eco (2-3 hours) give enzymes time to work.",
			"DON'T PRE-RINSE PROTEIN: Counter-intuitive, but dried egg/cheese is fine. Enzymes need the protein there to work on.",
			"ECO MODE IS YOUR FRIEND: It runs longer at lower temps - perfect for enzyme action.",
			"USE QUALITY DETERGENT: Cheap detergents skimp on enzymes. Quality powder has proteases and amylases.",
		},
		Tips: []string{
			"Very short cycles blast with hot water but skip enzyme time.",
			"Eco cycle often cleans protein better than hotter, shorter cycles.",
		},
	},
	"fundamental_problem": {
		Title:   "Something's Wrong with the Basics",
		Summary: "If nothing is coming out clean, check these fundamentals.",
		Steps: []string{
			"IS THE FILTER CLOGGED? A clogged filter means dirty water recirculates. Check bottom of tub, twist and remove filter, clean under running water.",
			"ARE THE SPRAY ARMS BLOCKED? Remove spray arms (usually twist off), check holes aren't clogged, rinse and poke with toothpick.",
			"IS WATER ENTERING? Start a cycle and listen - you should hear filling. Open mid-cycle (carefully) - is there water?",
			"IS DISPENSER OPENING? Check dispenser door isn't blocked by dishes. Look for detergent residue (sign it's not opening).",
			"IS WATER HOT ENOUGH? Run hot tap near dishwasher - is it hot? Cold water = nothing dissolves properly.",
		},
		Tips: []string{
			"If you've checked all these and it's still not working, the machine may need professional service.",
		},
	},
	"loading_spray_issue": {
		Title:   "Loading or Spray Pattern Issue",
		Summary: "Random dirty spots suggest water isn't reaching everywhere.",
		Steps: []string{
			"CHECK FOR BLOCKING: A tall item may be blocking the spray arm from rotating freely.",
			"SPIN THE SPRAY ARM: Before closing, spin it by hand to make sure nothing blocks it.",
			"DON'T OVERLOAD: Packed loads mean some items get missed.",
			"CHECK SPRAY ARM HOLES: Remove and clean - debris blocks water distribution.",
		},
		Tips: []string{
			"Random dirty items are almost always a loading or spray arm problem.",
		},
	},
	"dirty_filter": {
		Title:   "Your Filter Needs Cleaning",
		Summary: "Food particles collect in the filter and decompose. This is the #1 cause of dishwasher smell.",
		Steps: []string{
			"Remove bottom rack",
			"Find filter (usually centre-bottom of tub)",
			"Twist counter-clockwise and lift out",
			"Rinse under hot running water",
			"Scrub mesh with soft brush (old toothbrush works great)",
			"Check for trapped debris underneath",
			"Replace and twist to lock",
		},
		Tips: []string{
			"Do this monthly - more often if you don't scrape plates before loading.",
		},
	},
	"drainage_issue": {
		Title:   "Drainage Issue",
		Summary: "The smell right after a cycle suggests water isn't draining properly.",
		Steps: []string{
			"CHECK DRAIN HOSE: Make sure it's not kinked or blocked.",
			"CHECK GARBAGE DISPOSAL: If connected, make sure the disposal knockout plug was removed.",
			"RUN DISPOSAL FIRST: If connected to disposal, run the disposal before starting dishwasher.",
			"CHECK FILTER: A clogged filter can cause drainage issues too.",
		},
		Tips: []string{
			"The drain hose should have a high loop or air gap to prevent backflow.",
		},
	},
	"stagnant_water_mould": {
		Title:   "Moisture Is Building Up",
		Summary: "When the dishwasher sits unused, trapped moisture grows mould and bacteria.",
		Steps: []string{
			"LEAVE DOOR AJAR: After cycles, crack it open a few centimetres to let moisture escape.",
			"RUN A CLEANING CYCLE: Empty machine, hottest cycle, with 2 cups white vinegar in a bowl on top rack (or commercial cleaner).",
			"CHECK DOOR SEAL: Wipe the rubber gasket with vinegar solution. Mould hides in the folds.",
			"CLEAN SPRAY ARM HOLES: Bacteria can grow inside blocked holes. Remove arms, soak in vinegar, clear holes.",
		},
		Tips: []string{
			"Run at least one cycle per week.",
			"Always leave door ajar after use.",
			"Monthly vinegar cleaning cycle prevents build-up.",
		},
	},
	"deep_contamination": {
		Title:   "Deep Cleaning Needed",
		Summary: "Persistent smell indicates bacteria or mould deep in the system.",
		Steps: []string{
			"CLEAN THE FILTER: See filter cleaning instructions.",
			"CLEAN THE SPRAY ARMS: Remove, soak in vinegar, clear all holes.",
			"CLEAN DOOR EDGES AND SEAL: Wipe all rubber gaskets with vinegar, pull back folds to clean inside.",
			"RUN VINEGAR CYCLE: 2 cups white vinegar in bowl on top rack, hottest cycle, empty machine.",
			"FOLLOW WITH BICARB CYCLE: Sprinkle 1 cup bicarb on bottom, run short hot cycle.",
		},
		Tips: []string{
			"This deep clean should eliminate most smells.",
			"If it persists, there may be a drainage or mould issue requiring professional help.",
		},
	},
	"other_smell": {
		Title:   "Other Smell Sources",
		Summary: "The smell may be coming from somewhere unexpected.",
		Steps: []string{
			"CHECK UNDER THE MACHINE: Water or food may have dripped underneath.",
			"CHECK THE DRAIN CONNECTION: The drain hose may have a crack or poor seal.",
			"CHECK FOR MOULD ELSEWHERE: Mould under the sink can smell like it's from the dishwasher.",
		},
		Tips: []string{
			"Sometimes the smell isn't actually from inside the machine.",
		},
	},
	"cloudy_etching": {
		Title:   "Glass Etching (Permanent Damage)",
		Summary: "If the cloudiness doesn't wipe off with vinegar, the glass is etched.",
		Steps: []string{
			"TEST IT: Soak in white vinegar for 5 minutes. If cloudiness remains, it's etching.",
			"PREVENT FUTURE DAMAGE: Use delicate cycle for fine glassware.",
			"REDUCE DETERGENT: Too much detergent can cause etching over time.",
			"HAND WASH VALUABLES: Some glasses shouldn't go in the dishwasher at all.",
		},
		Tips: []string{
			"Etching is permanent - the glass surface is actually damaged.",
			"Soft water + too much detergent + high heat = etching risk.",
		},
	},
	"cloudy_deposits": {
		Title:   "Mineral Deposits on Glasses",
		Summary: "The cloudiness is hard water minerals - this can be fixed.",
		Steps: []string{
			"SOAK IN VINEGAR: Soak cloudy glasses in white vinegar for 15-30 minutes, then wash.",
			"INCREASE RINSE AID: Set to maximum, make sure dispenser is full.",
			"ADD DISHWASHER SALT: If your machine has a salt compartment, use it.",
			"INCREASE DETERGENT: Hard water needs more detergent to prevent deposits.",
		},
		Tips: []string{
			"Unlike etching, mineral deposits can be removed and prevented.",
		},
	},
	"water_spots": {
		Title:   "Water Spots",
		Summary: "Spots form when water droplets dry on the surface.",
		Steps: []string{
			"INCREASE RINSE AID: Rinse aid helps water sheet off instead of beading.",
			"SET RINSE AID TO MAX: The dial is usually on the dispenser lid.",
			"USE HEATED DRY: If your machine has it, heated drying evaporates water before spots form.",
			"OPEN DOOR AFTER CYCLE: Let steam escape to prevent condensation spots.",
		},
		Tips: []string{
			"Rinse aid is the main solution for water spots.",
		},
	},
	"not_drying_tips": {
		Title:   "Dishes Not Drying",
		Summary: "Plastics especially struggle to dry.",
		Steps: []string{
			"INCREASE RINSE AID: Rinse aid helps water sheet off.",
			"USE HEATED DRY: If your machine has it, enable it.",
			"PLASTIC ON TOP RACK: Plastic holds less heat so dries worse. Keep it away from heating element.",
			"OPEN DOOR AFTER CYCLE: Let steam escape and air circulate.",
			"CRACK DOOR DURING DRYING PHASE: If your machine allows, open slightly for the last 15 minutes.",
		},
		Tips: []string{
			"Plastic will never dry as well as ceramic or glass.",
			"Modern eco-friendly machines often skip heated drying - opening the door helps.",
		},
	},
	"greasy_dishes": {
		Title:   "Dishes Feel Greasy",
		Summary: "Grease isn't being properly emulsified during the wash.",
		Steps: []string{
			"ADD PRE-WASH DETERGENT: Put 1-1.5 tablespoons loose in the door. This is critical for grease.",
			"USE HOTTER CYCLE: Grease needs heat to emulsify. Use Normal or Intensive instead of Quick.",
			"DON'T PRE-RINSE: Grease on dishes actually helps the detergent work.",
			"CHECK WATER TEMPERATURE: Run hot tap first to make sure you're getting hot water.",
		},
		Tips: []string{
			"The #1 cause of greasy dishes is no pre-wash detergent.",
			"Pods can't help with pre-wash - switch to powder.",
		},
		ProductRecommendation: "Our powder fixes greasy dish problems",
	},
}

var answerSolutions = map[answerKey]string{
	{"white_residue_water", "yes_hard"}: "hard_water_confirmed",
	{"white_residue_water", "no_soft"}: "soft_water_residue",
	{"white_residue_water", "unknown"}: "test_water_hardness",
	{"white_residue_detergent", "pods"}: "pod_not_dissolving",
	{"white_residue_detergent", "powder"}: "powder_not_rinsing",
	{"white_residue_detergent", "liquid"}: "gel_residue",
	{"food_stuck_start", "concave"}: "water_access_issue",
	{"food_stuck_start", "everywhere"}: "fundamental_problem",
	{"food_stuck_start", "random"}: "loading_spray_issue",
	{"food_stuck_type", "baked"}: "cycle_too_weak",
	{"food_stuck_type", "greasy"}: "no_prewash_detergent",
	{"food_stuck_type", "everyday"}: "loading_issue",
	{"food_stuck_type", "protein"}: "needs_enzyme_time",
	{"bad_smell_start", "never"}: "dirty_filter",
	{"bad_smell_timing", "after_cycle"}: "drainage_issue",
	{"bad_smell_timing", "after_unused"}: "stagnant_water_mould",
	{"bad_smell_timing", "always"}: "deep_contamination",
	{"cloudy_glasses_start", "deposits"}: "cloudy_deposits",
	{"cloudy_glasses_start", "etching"}: "cloudy_etching",
	{"spots_start", "glasses"}: "water_spots",
	{"spots_start", "cutlery"}: "water_spots",
	{"spots_start", "everything"}: "water_spots",
	{"not_drying_start", "plastic"}: "not_drying_tips",
	{"not_drying_start", "everything"}: "not_drying_tips",
	{"not_drying_start", "some"}: "not_drying_tips",
	{"greasy_feeling_start", "pods"}: "greasy_dishes",
	{"greasy_feeling_start", "powder"}: "greasy_dishes",
}

var steps = []model.QuestionStep{
	{
		ID:       "start",
		Question: "What's the problem?",
		Options: []model.StepOption{
			{Label: "White residue or film on dishes", Value: "white_residue"},
			{Label: "Cloudy glasses", Value: "cloudy_glasses"},
			{Label: "Food still stuck on", Value: "food_stuck"},
			{Label: "Greasy or slimy feeling", Value: "greasy_feeling"},
			{Label: "Spots on glasses or cutlery", Value: "spots"},
			{Label: "Bad smell inside machine", Value: "bad_smell"},
			{Label: "Dishes not drying", Value: "not_drying"},
			{Label: "Something else", Value: "other"},
		},
	},
	{
		ID:       "white_residue_start",
		Question: "Touch the residue. Is it...",
		Options: []model.StepOption{
			{Label: "Powdery/chalky (wipes off easily)", Value: "powdery", NextStep: "white_residue_water"},
			{Label: "Smeary/greasy (needs scrubbing)", Value: "smeary", NextStep: "white_residue_detergent"},
		},
	},
	{
		ID:       "white_residue_water",
		Question: "Do you know if you have hard water?",
		Options: []model.StepOption{
			{Label: "Yes, I have hard water", Value: "yes_hard"},
			{Label: "No, my water is soft", Value: "no_soft"},
			{Label: "I don't know", Value: "unknown"},
		},
	},
	{
		ID:       "white_residue_detergent",
		Question: "What detergent are you using?",
		Options: []model.StepOption{
			{Label: "Pods/tablets", Value: "pods"},
			{Label: "Powder", Value: "powder"},
			{Label: "Liquid/gel", Value: "liquid"},
		},
	},
	{
		ID:       "food_stuck_start",
		Question: "Where is the food stuck?",
		Options: []model.StepOption{
			{Label: "Inside bowls, cups, or mugs", Value: "concave"},
			{Label: "On flat surfaces (plates, pan bottoms)", Value: "flat", NextStep: "food_stuck_type"},
			{Label: "Everywhere - nothing is clean", Value: "everywhere"},
			{Label: "Random spots on random items", Value: "random"},
		},
	},
	{
		ID:       "food_stuck_type",
		Question: "What kind of food?",
		Options: []model.StepOption{
			{Label: "Baked-on / burnt", Value: "baked"},
			{Label: "Greasy residue", Value: "greasy"},
			{Label: "Dried sauce / everyday food", Value: "everyday"},
			{Label: "Egg / cheese / protein", Value: "protein"},
		},
	},
	{
		ID:       "bad_smell_start",
		Question: "When did you last clean the filter?",
		Options: []model.StepOption{
			{Label: "Never / I don't know where it is", Value: "never"},
			{Label: "Recently (within a month)", Value: "recently", NextStep: "bad_smell_timing"},
			{Label: "I clean it regularly", Value: "regularly", NextStep: "bad_smell_timing"},
		},
	},
	{
		ID:       "bad_smell_timing",
		Question: "Does the smell happen...",
		Options: []model.StepOption{
			{Label: "Right after a cycle", Value: "after_cycle"},
			{Label: "When you open the door after days unused", Value: "after_unused"},
			{Label: "All the time", Value: "always"},
		},
	},
	{
		ID:       "cloudy_glasses_start",
		Question: "Soak a cloudy glass in white vinegar for 5 minutes. Does the cloudiness...",
		Options: []model.StepOption{
			{Label: "Disappear or reduce (deposits)", Value: "deposits"},
			{Label: "Stay the same (etching)", Value: "etching"},
		},
	},
	{
		ID:       "spots_start",
		Question: "Where are the spots appearing?",
		Options: []model.StepOption{
			{Label: "On glasses", Value: "glasses"},
			{Label: "On cutlery/silverware", Value: "cutlery"},
			{Label: "On everything", Value: "everything"},
		},
	},
	{
		ID:       "not_drying_start",
		Question: "What items are not drying?",
		Options: []model.StepOption{
			{Label: "Plastic items", Value: "plastic"},
			{Label: "Everything", Value: "everything"},
			{Label: "Only some items", Value: "some"},
		},
	},
	{
		ID:       "greasy_feeling_start",
		Question: "Are you using pods or powder?",
		Options: []model.StepOption{
			{Label: "Pods/tablets", Value: "pods"},
			{Label: "Powder", Value: "powder"},
		},
	},
	{
		ID:       "other_start",
		Question: "Can you describe the problem?",
		Options: []model.StepOption{
			{Label: "Machine makes strange noises", Value: "noises"},
			{Label: "Cycle takes too long", Value: "too_long"},
			{Label: "Machine won't start", Value: "wont_start"},
			{Label: "Water leaking", Value: "leaking"},
		},
	},
}

var categories = []model.CategoryInfo{
	{Category: model.CategoryWhiteResidue, Label: "White residue or film", Description: "White marks, film, or powdery deposits on dishes"},
	{Category: model.CategoryCloudyGlasses, Label: "Cloudy glasses", Description: "Glasses look foggy, hazy, or clouded"},
	{Category: model.CategoryFoodStuck, Label: "Food still stuck on", Description: "Food particles remain after the cycle"},
	{Category: model.CategoryGreasyFeeling, Label: "Greasy or slimy feeling", Description: "Dishes feel oily or have a residue"},
	{Category: model.CategorySpots, Label: "Spots on glasses or cutlery", Description: "Water spots or marks on glassware and metal"},
	{Category: model.CategoryBadSmell, Label: "Bad smell inside machine", Description: "Unpleasant odour from the dishwasher"},
	{Category: model.CategoryNotDrying, Label: "Dishes not drying", Description: "Dishes still wet after cycle completes"},
	{Category: model.CategoryOther, Label: "Something else", Description: "Other problems not listed above"},
}
