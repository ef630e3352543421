package troubleshoot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dishmate/internal/domain/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGraphIntegrity(t *testing.T) {
	require.NoError(t, Validate())
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 8)
	for i, c := range model.TroubleshootCategories() {
		assert.Equal(t, c, cats[i].Category)
		assert.NotEmpty(t, cats[i].Label)
		assert.NotEmpty(t, cats[i].Description)
	}

	info, ok := Category(model.CategoryBadSmell)
	require.True(t, ok)
	assert.Equal(t, "Bad smell inside machine", info.Label)

	_, ok = Category("leaks")
	assert.False(t, ok)
}

func TestInitialQuestion(t *testing.T) {
	step := InitialQuestion()
	q, ok := step.(model.QuestionStep)
	require.True(t, ok)
	assert.Equal(t, StartStepID, q.ID)
	assert.Contains(t, q.Question, "problem")
	require.Len(t, q.Options, 8)
	for i, c := range model.TroubleshootCategories() {
		assert.Equal(t, string(c), q.Options[i].Value)
	}
}

func TestFlow(t *testing.T) {
	tests := []struct {
		category model.TroubleshootCategory
		wantID   string
		contains string
	}{
		{model.CategoryWhiteResidue, "white_residue_start", "residue"},
		{model.CategoryFoodStuck, "food_stuck_start", "food"},
		{model.CategoryBadSmell, "bad_smell_start", "filter"},
		{"unknown_thing", StartStepID, "problem"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			q, ok := Flow(tt.category).(model.QuestionStep)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, q.ID)
			assert.Contains(t, q.Question, tt.contains)
		})
	}
}

func TestProcessAnswer(t *testing.T) {
	t.Run("explicit next step", func(t *testing.T) {
		next := ProcessAnswer("white_residue_start", "powdery")
		assert.Equal(t, model.StepKindQuestion, next.Kind())
		assert.Equal(t, "white_residue_water", next.StepID())
	})

	t.Run("answer table terminal", func(t *testing.T) {
		step := ProcessAnswer("white_residue_water", "yes_hard")
		sol, ok := step.(model.SolutionTerminal)
		require.True(t, ok)
		assert.Equal(t, "hard_water_confirmed", sol.ID)
		assert.Contains(t, sol.Solution.Title, "Hard Water")
	})

	t.Run("unknown step", func(t *testing.T) {
		step := ProcessAnswer("nowhere", "yes")
		d, ok := step.(model.DiagnosisTerminal)
		require.True(t, ok)
		assert.Equal(t, ErrorStepID, d.ID)
		assert.Equal(t, "Unknown step", d.Diagnosis)
	})

	t.Run("unmapped answer falls back to generic", func(t *testing.T) {
		step := ProcessAnswer("other_start", "noises")
		d, ok := step.(model.DiagnosisTerminal)
		require.True(t, ok)
		assert.Equal(t, GenericStepID, d.ID)
		assert.Equal(t, GenericDiagnosis, d.Diagnosis)
	})

	t.Run("unknown option value", func(t *testing.T) {
		step := ProcessAnswer("spots_start", "ceiling")
		assert.Equal(t, GenericStepID, step.StepID())
	})

	t.Run("root options have no edges of their own", func(t *testing.T) {
		assert.Equal(t, GenericStepID, ProcessAnswer(StartStepID, "white_residue").StepID())
	})
}

func TestWalkRoundTrips(t *testing.T) {
	tests := []struct {
		name      string
		category  model.TroubleshootCategory
		answers   []string
		wantID    string
		wantTitle string
	}{
		{"hard water", model.CategoryWhiteResidue, []string{"powdery", "yes_hard"}, "hard_water_confirmed", "Hard Water"},
		{"concave items", model.CategoryFoodStuck, []string{"concave"}, "water_access_issue", "Water"},
		{"greasy flats", model.CategoryFoodStuck, []string{"flat", "greasy"}, "no_prewash_detergent", "Pre-Wash"},
		{"never cleaned filter", model.CategoryBadSmell, []string{"never"}, "dirty_filter", "Filter"},
		{"smell after unused", model.CategoryBadSmell, []string{"regularly", "after_unused"}, "stagnant_water_mould", "Moisture"},
		{"etched glass", model.CategoryCloudyGlasses, []string{"etching"}, "cloudy_etching", "Etching"},
		{"pods residue", model.CategoryWhiteResidue, []string{"smeary", "pods"}, "pod_not_dissolving", "Pod"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := Walk(tt.category, tt.answers)
			require.Len(t, path, len(tt.answers)+1)
			last, ok := path[len(path)-1].(model.SolutionTerminal)
			require.True(t, ok, "last step is %T", path[len(path)-1])
			assert.Equal(t, tt.wantID, last.ID)
			assert.Contains(t, last.Solution.Title, tt.wantTitle)
		})
	}
}

func TestWalkStopsAtTerminal(t *testing.T) {
	path := Walk(model.CategorySpots, []string{"glasses", "extra", "answers"})
	require.Len(t, path, 2)
	assert.Equal(t, "water_spots", path[1].StepID())
}

func TestSolution(t *testing.T) {
	for _, tt := range []struct{ id, title string }{
		{"hard_water_confirmed", "Hard Water"},
		{"dirty_filter", "Filter"},
		{"pod_not_dissolving", "Pod"},
		{"no_prewash_detergent", "Pre-Wash"},
		{"water_access_issue", "Water"},
		{"needs_enzyme_time", "Protein"},
	} {
		sol, ok := Solution(tt.id)
		require.True(t, ok, tt.id)
		assert.Contains(t, sol.Title, tt.title)
		assert.NotEmpty(t, sol.Steps)
	}

	_, ok := Solution("does_not_exist")
	assert.False(t, ok)
	assert.Contains(t, SolutionIDs(), "other_smell")
}

func TestReturnedStepsDoNotAliasTables(t *testing.T) {
	q := InitialQuestion().(model.QuestionStep)
	q.Options[0].Value = "tampered"
	assert.Equal(t, string(model.CategoryWhiteResidue), InitialQuestion().(model.QuestionStep).Options[0].Value)

	sol, _ := Solution("water_spots")
	sol.Steps[0] = "tampered"
	again, _ := Solution("water_spots")
	assert.NotEqual(t, "tampered", again.Steps[0])
}

func TestStepJSONCarriesKind(t *testing.T) {
	raw, err := json.Marshal(ProcessAnswer("cloudy_glasses_start", "deposits"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "solution", decoded["kind"])
	assert.Equal(t, "cloudy_deposits", decoded["id"])
	assert.NotContains(t, decoded, "question")
}
