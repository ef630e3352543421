package hardness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dishmate/internal/domain/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInterpretTestTable(t *testing.T) {
	tests := []struct {
		suds    model.SudsAmount
		clarity model.WaterClarity
		want    model.WaterHardness
		conf    model.Confidence
		suggest bool
	}{
		{model.SudsFew, model.ClarityMilky, model.HardnessHard, model.ConfidenceHigh, false},
		{model.SudsLots, model.ClarityClear, model.HardnessSoft, model.ConfidenceHigh, false},
		{model.SudsSome, model.ClaritySlightlyCloudy, model.HardnessModerate, model.ConfidenceMedium, false},
		{model.SudsSome, model.ClarityMilky, model.HardnessHard, model.ConfidenceLow, true},
		{model.SudsFew, model.ClaritySlightlyCloudy, model.HardnessHard, model.ConfidenceLow, true},
		{model.SudsSome, model.ClarityClear, model.HardnessModerate, model.ConfidenceLow, true},
		{model.SudsLots, model.ClaritySlightlyCloudy, model.HardnessModerate, model.ConfidenceLow, true},
		{model.SudsFew, model.ClarityClear, model.HardnessModerate, model.ConfidenceLow, true},
		{model.SudsLots, model.ClarityMilky, model.HardnessModerate, model.ConfidenceLow, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.suds)+"/"+string(tt.clarity), func(t *testing.T) {
			got := InterpretTest(tt.suds, tt.clarity)
			assert.Equal(t, tt.want, got.Hardness)
			assert.Equal(t, tt.conf, got.Confidence)
			assert.Equal(t, tt.suggest, got.SuggestProfessionalTest)
			assert.NotEmpty(t, got.Explanation)
		})
	}
	assert.Contains(t, InterpretTest(model.SudsFew, model.ClarityClear).Explanation, "inconclusive")
}

func ptr(b bool) *bool { return &b }

func TestEstimateFromSymptoms(t *testing.T) {
	tests := []struct {
		name     string
		flags    model.SymptomFlags
		want     model.WaterHardness
		conf     model.Confidence
		testRec  bool
		reasonIn string
	}{
		{
			name: "strong hard signals",
			flags: model.SymptomFlags{
				WhiteResidueOnDishes: ptr(true), ScaleInKettle: ptr(true), SpottyGlassware: ptr(true),
			},
			want: model.HardnessHard, conf: model.ConfidenceHigh, reasonIn: "Multiple hard water indicators",
		},
		{
			name:  "some hard signals",
			flags: model.SymptomFlags{WhiteResidueOnDishes: ptr(true), CloudyGlasses: ptr(true)},
			want:  model.HardnessHard, conf: model.ConfidenceMedium, testRec: true, reasonIn: "Mixed",
		},
		{
			name: "soft signals",
			flags: model.SymptomFlags{
				WhiteResidueOnDishes: ptr(false), ScaleInKettle: ptr(false), SoapLathersEasily: ptr(true),
			},
			want: model.HardnessSoft, conf: model.ConfidenceMedium, reasonIn: "typical of soft water",
		},
		{
			name:  "weak soft signal",
			flags: model.SymptomFlags{ScaleInKettle: ptr(false)},
			want:  model.HardnessSoft, conf: model.ConfidenceLow, testRec: true, reasonIn: "Mixed",
		},
		{
			name:  "nothing reported",
			flags: model.SymptomFlags{},
			want:  model.HardnessModerate, conf: model.ConfidenceLow, testRec: true, reasonIn: "Mixed",
		},
		{
			name:  "false cloudy glasses adds nothing",
			flags: model.SymptomFlags{CloudyGlasses: ptr(false), SpottyGlassware: ptr(false)},
			want:  model.HardnessModerate, conf: model.ConfidenceLow, testRec: true, reasonIn: "Mixed",
		},
		{
			name: "balanced",
			flags: model.SymptomFlags{
				WhiteResidueOnDishes: ptr(true), ScaleInKettle: ptr(false), SoapLathersEasily: ptr(true),
			},
			want: model.HardnessSoft, conf: model.ConfidenceMedium, reasonIn: "typical of soft water",
		},
		{
			name:  "one hard point",
			flags: model.SymptomFlags{SoapLathersEasily: ptr(false)},
			want:  model.HardnessModerate, conf: model.ConfidenceLow, testRec: true, reasonIn: "Mixed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateFromSymptoms(tt.flags)
			assert.Equal(t, tt.want, got.LikelyHardness)
			assert.Equal(t, tt.conf, got.Confidence)
			assert.Equal(t, tt.testRec, got.RecommendTest)
			assert.Contains(t, got.Reasoning, tt.reasonIn)
		})
	}
}

func TestScore(t *testing.T) {
	all := true
	hard, soft := Score(model.SymptomFlags{
		WhiteResidueOnDishes: &all, CloudyGlasses: &all, ScaleInKettle: &all,
		SoapLathersEasily: &all, SpottyGlassware: &all,
	})
	assert.Equal(t, 6, hard)
	assert.Equal(t, 2, soft)

	none := false
	hard, soft = Score(model.SymptomFlags{
		WhiteResidueOnDishes: &none, CloudyGlasses: &none, ScaleInKettle: &none,
		SoapLathersEasily: &none, SpottyGlassware: &none,
	})
	assert.Equal(t, 1, hard)
	assert.Equal(t, 2, soft)
}

func TestCityHardness(t *testing.T) {
	assert.Equal(t, CityHardness("sydney"), CityHardness("SYDNEY"))

	syd := CityHardness("sydney")
	assert.Equal(t, "Sydney", syd.City)
	assert.Equal(t, model.HardnessSoft, syd.Hardness)
	assert.Equal(t, "Sydney Water", syd.Source)
	assert.Empty(t, syd.Message)

	adl := CityHardness("Adelaide")
	assert.Equal(t, model.HardnessHard, adl.Hardness)
	assert.Equal(t, "150-350 ppm", adl.PPMRange)

	gc := CityHardness("gold  COAST")
	assert.Equal(t, model.HardnessModerate, gc.Hardness)
	assert.Equal(t, "Gold  coast", gc.City)

	unknown := CityHardness("Auckland")
	assert.Equal(t, "Auckland", unknown.City)
	assert.Equal(t, model.HardnessUnknown, unknown.Hardness)
	assert.Contains(t, unknown.Message, "not in our database")
	assert.Empty(t, unknown.PPMRange)

	for _, c := range Cities() {
		assert.NotEqual(t, model.HardnessUnknown, CityHardness(c).Hardness, c)
	}
}

func TestRecommendations(t *testing.T) {
	hard := Recommendations(model.HardnessHard)
	assert.True(t, hard.UseSalt)
	assert.Equal(t, model.RinseAidMaximum, hard.RinseAidSetting)

	soft := Recommendations(model.HardnessSoft)
	assert.False(t, soft.UseSalt)
	assert.Equal(t, model.RinseAidLow, soft.RinseAidSetting)
	assert.Empty(t, soft.FirstStep)

	moderate := Recommendations(model.HardnessModerate)
	assert.True(t, moderate.UseSalt)
	assert.Equal(t, model.RinseAidMedium, moderate.RinseAidSetting)

	unknown := Recommendations(model.HardnessUnknown)
	assert.Contains(t, unknown.FirstStep, "soap bottle test")
	assert.Equal(t, unknown, Recommendations(""))
}

func TestReferenceContent(t *testing.T) {
	test := SoapBottleTest()
	assert.Equal(t, "Soap Bottle Test", test.Name)
	require.Len(t, test.Steps, 6)
	assert.Len(t, test.InterpretationGuide, 3)

	exp := Explanation()
	assert.Len(t, exp.HardnessScale, 4)
	for _, h := range Levels() {
		assert.Contains(t, exp.HardnessScale, h)
	}
	assert.Equal(t, []model.WaterHardness{model.HardnessSoft, model.HardnessModerate, model.HardnessHard, model.HardnessUnknown}, Levels())
}
