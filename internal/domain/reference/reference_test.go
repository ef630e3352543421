package reference

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

func TestCycleTableCoversEveryCycle(t *testing.T) {
	all := AllCycles()
	require.Len(t, all, len(model.CycleTypes()))
	for i, c := range model.CycleTypes() {
		assert.Equal(t, c, all[i].Cycle)
		info, ok := CycleInfo(c)
		require.True(t, ok, c)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.HowItWorks)
		assert.NotZero(t, info.EnergyUsage.Rank(), c)
		assert.NotZero(t, info.WaterUsage.Rank(), c)
	}

	_, ok := CycleInfo("rinse_hold")
	assert.False(t, ok)
}

func TestCycleInfoReturnsCopies(t *testing.T) {
	info, _ := CycleInfo(model.CycleEco)
	info.BestFor[0] = "tampered"
	again, _ := CycleInfo(model.CycleEco)
	assert.NotEqual(t, "tampered", again.BestFor[0])
	assert.True(t, again.EnzymeFriendly)
}

func TestCompareCycles(t *testing.T) {
	tests := []struct {
		c1, c2   model.CycleType
		want     model.CycleType
		reasonIn string
	}{
		{model.CycleQuick, model.CycleEco, model.CycleEco, "enzymes time"},
		{model.CycleEco, model.CycleQuick, model.CycleEco, "enzymes time"},
		{model.CycleNormal, model.CycleQuick, model.CycleNormal, "residue"},
		{model.CycleNormal, model.CycleEco, model.CycleEco, "saves energy"},
		{model.CycleIntensive, model.CycleNormal, model.CycleNormal, "baked-on"},
		{model.CycleNormal, model.CycleDelicate, model.CycleNormal, "fine glassware"},
		{model.CycleIntensive, model.CycleEco, model.CycleEco, "Eco / Energy Saver uses less energy"},
		{model.CycleQuick, model.CycleDelicate, model.CycleQuick, "Quick / Express uses less energy"},
		{model.CycleDelicate, model.CycleQuick, model.CycleDelicate, "Delicate / Glass uses less energy"},
		{model.CycleSanitise, model.CycleIntensive, model.CycleSanitise, "Sanitise / Hygiene uses less energy"},
		{model.CycleSanitise, model.CycleNormal, model.CycleNormal, "Normal / Regular uses less energy"},
	}
	for _, tt := range tests {
		t.Run(string(tt.c1)+"_vs_"+string(tt.c2), func(t *testing.T) {
			got := CompareCycles(tt.c1, tt.c2)
			assert.Equal(t, tt.want, got.Recommendation)
			assert.Contains(t, got.Reason, tt.reasonIn)
			assert.Equal(t, tt.c1, got.Cycle1.Cycle)
			assert.Equal(t, tt.c2, got.Cycle2.Cycle)
		})
	}
	assert.Panics(t, func() { CompareCycles("rinse_hold", model.CycleEco) })
}

func TestCycleForSoil(t *testing.T) {
	want := map[model.SoilType]model.CycleType{
		model.SoilLight:    model.CycleQuick,
		model.SoilEveryday: model.CycleEco,
		model.SoilStarchy:  model.CycleEco,
		model.SoilProtein:  model.CycleEco,
		model.SoilAcidic:   model.CycleNormal,
		model.SoilGreasy:   model.CycleNormal,
		model.SoilHeavy:    model.CycleIntensive,
		"mystery":          model.CycleNormal,
	}
	for soil, cycle := range want {
		got := CycleForSoil(soil)
		assert.Equal(t, cycle, got.Cycle, soil)
		assert.NotEmpty(t, got.Reason)
	}
}

func TestCycleForItem(t *testing.T) {
	want := map[model.ItemType]model.CycleType{
		model.ItemDelicate:   model.CycleDelicate,
		model.ItemBabyItems:  model.CycleSanitise,
		model.ItemContainers: model.CycleNormal,
		model.ItemPots:       model.CycleIntensive,
		model.ItemPans:       model.CycleIntensive,
		model.ItemBakeware:   model.CycleIntensive,
		model.ItemGlasses:    model.CycleNormal,
		model.ItemPlates:     model.CycleNormal,
	}
	for item, cycle := range want {
		assert.Equal(t, cycle, CycleForItem(item).Cycle, item)
	}
	assert.Contains(t, CycleForItem(model.ItemMugs).Reason, "most dish types")
}

func TestEducation(t *testing.T) {
	all := AllEducation()
	require.Len(t, all, 3)
	assert.Equal(t, "How Enzymes Work in Your Dishwasher", all[0].Title)
	assert.Equal(t, "Why Pre-Wash Detergent Matters", all[1].Title)
	assert.Equal(t, "Understanding Cycle Temperatures", all[2].Title)
	for _, e := range all {
		assert.NotEmpty(t, e.Content)
		assert.NotEmpty(t, e.KeyTakeaway)
	}
}

func TestQuickStartMaterial(t *testing.T) {
	g := QuickStart()
	assert.Equal(t, "Get Cleaner Dishes in 60 Seconds", g.Title)
	require.Len(t, g.Sections, 3)

	g.Sections[0].Content[0] = "tampered"
	if diff := cmp.Diff(quickStart, QuickStart()); diff != "" {
		t.Fatalf("quick start guide was mutated through a returned copy:\n%s", diff)
	}

	steps := OnboardingSteps()
	require.Len(t, steps, 5)
	for i, s := range steps {
		assert.Equal(t, i+1, s.StepNumber)
	}

	assert.NotEmpty(t, QuickWin().HowTo)
	assert.Len(t, TopMistakes(), 5)

	plan := ActionPlan()
	assert.Len(t, plan.Tonight, 4)
	assert.Len(t, plan.ThisWeek, 4)
	assert.Len(t, plan.Ongoing, 4)

	b := DishwasherBasics()
	require.Len(t, b.Phases, 5)
	assert.NotEmpty(t, b.Phases[0].KeyInsight)
	assert.Empty(t, b.Phases[1].KeyInsight)
}
