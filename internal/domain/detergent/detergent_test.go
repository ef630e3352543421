package detergent

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dishmate/internal/domain/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func baseInput() model.DetergentInput {
	return model.DetergentInput{
		WaterHardness:    model.HardnessModerate,
		UsagePattern:     model.UsageRegular,
		MainConcern:      model.ConcernCleanDishes,
		TypicalSoilTypes: []model.SoilType{model.SoilEveryday},
	}
}

func TestRecommendRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*model.DetergentInput)
		format   model.DetergentFormat
		reasonIn string
		warnings []string
		alt      model.DetergentFormat
	}{
		{
			name: "greasy issues with pods",
			mutate: func(in *model.DetergentInput) {
				in.HasGreasyIssues = true
				in.CurrentFormat = model.FormatPods
				in.MainConcern = model.ConcernConvenience
			},
			format:   model.FormatPowder,
			reasonIn: "pre-wash detergent",
			warnings: []string{WarnPodsNoPrewash},
		},
		{
			name:     "greasy issues with powder",
			mutate:   func(in *model.DetergentInput) { in.HasGreasyIssues = true; in.CurrentFormat = model.FormatPowder },
			format:   model.FormatPowder,
			reasonIn: "pre-wash detergent",
		},
		{
			name: "residue in hard water",
			mutate: func(in *model.DetergentInput) {
				in.HasResidueIssues = true
				in.WaterHardness = model.HardnessHard
			},
			format:   model.FormatPowder,
			reasonIn: "MORE detergent",
		},
		{
			name: "residue from liquid",
			mutate: func(in *model.DetergentInput) {
				in.HasResidueIssues = true
				in.CurrentFormat = model.FormatLiquid
			},
			format:   model.FormatPowder,
			reasonIn: "not dissolving fully",
		},
		{
			name:     "residue otherwise",
			mutate:   func(in *model.DetergentInput) { in.HasResidueIssues = true },
			format:   model.FormatPowder,
			reasonIn: "control to adjust dosing",
		},
		{
			name:     "convenience with light conditions",
			mutate:   func(in *model.DetergentInput) { in.MainConcern = model.ConcernConvenience },
			format:   model.FormatPods,
			reasonIn: "Pods work fine",
			warnings: []string{WarnPodsGreasy},
			alt:      model.FormatPowder,
		},
		{
			name: "convenience with heavy soil",
			mutate: func(in *model.DetergentInput) {
				in.MainConcern = model.ConcernConvenience
				in.TypicalSoilTypes = []model.SoilType{model.SoilProtein}
			},
			format:   model.FormatPowder,
			reasonIn: "heavy soil",
		},
		{
			name: "convenience with hard water",
			mutate: func(in *model.DetergentInput) {
				in.MainConcern = model.ConcernConvenience
				in.WaterHardness = model.HardnessHard
			},
			format:   model.FormatPowder,
			reasonIn: "Hard water needs more detergent",
			warnings: []string{WarnHardWaterExtra},
		},
		{
			name: "cost",
			mutate: func(in *model.DetergentInput) {
				in.MainConcern = model.ConcernCost
				in.WaterHardness = model.HardnessHard
			},
			format:   model.FormatPowder,
			reasonIn: "most cost-effective",
		},
		{
			name:     "eco",
			mutate:   func(in *model.DetergentInput) { in.MainConcern = model.ConcernEco },
			format:   model.FormatPowder,
			reasonIn: "environmental impact",
		},
		{
			name:     "default for clean dishes",
			mutate:   func(*model.DetergentInput) {},
			format:   model.FormatPowder,
			reasonIn: "best combination",
			alt:      model.FormatTablets,
		},
		{
			name:     "default for specific problem",
			mutate:   func(in *model.DetergentInput) { in.MainConcern = model.ConcernSpecificProblem },
			format:   model.FormatPowder,
			reasonIn: "best combination",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.mutate(&in)
			got := Recommend(in)
			assert.Equal(t, tt.format, got.RecommendedFormat)
			assert.Contains(t, got.Reasoning, tt.reasonIn)
			assert.Equal(t, tt.warnings, got.Warnings)
			assert.Equal(t, tt.alt, got.AlternativeFormat)
			if tt.alt == "" {
				assert.Empty(t, got.AlternativeReason)
			} else {
				assert.NotEmpty(t, got.AlternativeReason)
			}
			assert.NotEmpty(t, got.UsageInstructions)
			assert.NotEmpty(t, got.CostComparison)
		})
	}
}

func TestFormatRulesEndWithCatchAll(t *testing.T) {
	rules := FormatRules()
	require.NotEmpty(t, rules)
	last := rules[len(rules)-1]
	assert.Equal(t, "default", last.ID)
	assert.True(t, last.Match(Situation{}))
}

func TestMatchFormatRule(t *testing.T) {
	r, i := MatchFormatRule(model.DetergentInput{
		WaterHardness:    model.HardnessHard,
		MainConcern:      model.ConcernConvenience,
		TypicalSoilTypes: []model.SoilType{model.SoilLight},
	})
	assert.Equal(t, "hard_water", r.ID)
	assert.Equal(t, 6, i)

	r, _ = MatchFormatRule(model.DetergentInput{HasGreasyIssues: true, HasResidueIssues: true})
	assert.Equal(t, "greasy_issues", r.ID)
}

func TestHasHeavySoil(t *testing.T) {
	assert.False(t, HasHeavySoil(nil))
	assert.False(t, HasHeavySoil([]model.SoilType{model.SoilLight, model.SoilStarchy, model.SoilAcidic}))
	assert.True(t, HasHeavySoil([]model.SoilType{model.SoilLight, model.SoilGreasy}))
	assert.True(t, HasHeavySoil([]model.SoilType{model.SoilHeavy}))
}

func TestUsageInstructions(t *testing.T) {
	powder := UsageInstructions(model.FormatPowder, model.HardnessHard, true)
	require.Len(t, powder, 5)
	assert.Contains(t, powder[0], "PRE-WASH")
	assert.Contains(t, powder[1], "MAIN WASH")
	assert.Contains(t, powder[2], "HARD WATER")
	assert.Contains(t, powder[3], "HEAVY SOIL")
	assert.Contains(t, powder[4], "STORAGE")

	assert.Len(t, UsageInstructions(model.FormatPowder, model.HardnessSoft, false), 3)
	assert.Len(t, UsageInstructions(model.FormatPods, model.HardnessSoft, true), 4)

	tablets := UsageInstructions(model.FormatTablets, model.HardnessHard, false)
	require.Len(t, tablets, 5)
	assert.Contains(t, tablets[4], "NOTE")

	assert.Len(t, UsageInstructions(model.FormatLiquid, model.HardnessHard, true), 4)
	assert.Empty(t, UsageInstructions("gel", model.HardnessHard, true))
}

func TestCostComparison(t *testing.T) {
	tests := []struct {
		format model.DetergentFormat
		usage  model.UsagePattern
		want   string
	}{
		{model.FormatPowder, model.UsageDaily, "Powder costs ~$36-73/year (364 loads). That's $18-146 less than pods."},
		{model.FormatPowder, model.UsageRegular, "Powder costs ~$26-52/year (260 loads). That's $13-104 less than pods."},
		{model.FormatPowder, model.UsageOccasional, "Powder costs ~$10-21/year (104 loads). That's $5-42 less than pods."},
		{model.FormatTablets, model.UsageRegular, "Tablets costs ~$52-104/year (260 loads). That's $-39-78 less than pods."},
		{model.FormatPods, model.UsageDaily, "Estimated cost: ~$91-182/year (364 loads)."},
	}
	for _, tt := range tests {
		t.Run(string(tt.format)+"/"+string(tt.usage), func(t *testing.T) {
			assert.Equal(t, tt.want, CostComparison(tt.format, tt.usage))
		})
	}
	assert.Equal(t, 104, LoadsPerYear(""))
}

func TestFormatInfo(t *testing.T) {
	info, ok := FormatInfo(model.FormatPowder)
	require.True(t, ok)
	assert.True(t, info.PrewashCapable)
	assert.Equal(t, model.EnzymeHigh, info.EnzymeContent)
	assert.Equal(t, "$0.10-0.20", info.CostPerWash)

	info.Pros[0] = "tampered"
	fresh, _ := FormatInfo(model.FormatPowder)
	assert.NotEqual(t, "tampered", fresh.Pros[0])

	_, ok = FormatInfo("gel")
	assert.False(t, ok)

	all := AllFormats()
	require.Len(t, all, 4)
	got := make([]model.DetergentFormat, 0, len(all))
	for _, f := range all {
		got = append(got, f.Format)
	}
	assert.Equal(t, model.DetergentFormats(), got)
}

func TestCompareFormats(t *testing.T) {
	tests := []struct {
		f1, f2 model.DetergentFormat
		winner model.DetergentFormat
		whyIn  string
	}{
		{model.FormatPowder, model.FormatPods, model.FormatPowder, "pre-wash"},
		{model.FormatPods, model.FormatPowder, model.FormatPowder, "pre-wash"},
		{model.FormatLiquid, model.FormatPowder, model.FormatPowder, "than liquid"},
		{model.FormatPowder, model.FormatTablets, model.FormatPowder, "than tablets"},
		{model.FormatPowder, model.FormatPowder, model.FormatPowder, "than tablets"},
		{model.FormatLiquid, model.FormatPods, model.FormatPods, "consistent dosing"},
		{model.FormatTablets, model.FormatLiquid, model.FormatTablets, "similar performance"},
		{model.FormatPods, model.FormatTablets, model.FormatPods, "similar performance"},
	}
	for _, tt := range tests {
		t.Run(string(tt.f1)+"_vs_"+string(tt.f2), func(t *testing.T) {
			got := CompareFormats(tt.f1, tt.f2)
			assert.Equal(t, tt.winner, got.Winner)
			assert.Contains(t, got.WhyWinner, tt.whyIn)
			assert.Equal(t, tt.f1, got.Format1.Format)
			assert.Equal(t, tt.f2, got.Format2.Format)
		})
	}
}

func TestWhyPowderBeatsPods(t *testing.T) {
	exp := WhyPowderBeatsPods()
	assert.Equal(t, "Why Powder Beats Pods", exp.Headline)
	require.Len(t, exp.KeyPoints, 5)
	assert.Equal(t, "The Pre-Wash Problem", exp.KeyPoints[0].Title)
	assert.Contains(t, exp.Conclusion, "pre-wash technique")
}

func TestRecommendIsDeterministic(t *testing.T) {
	in := baseInput()
	in.WaterHardness = model.HardnessHard
	in.TypicalSoilTypes = []model.SoilType{model.SoilGreasy, model.SoilProtein}
	if diff := cmp.Diff(Recommend(in), Recommend(in)); diff != "" {
		t.Fatalf("recommendation changed between calls (-first +second):\n%s", diff)
	}
}
