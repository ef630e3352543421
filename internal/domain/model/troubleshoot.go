package model

import "encoding/json"

type TroubleshootCategory string

const (
	CategoryWhiteResidue  TroubleshootCategory = "white_residue"
	CategoryCloudyGlasses TroubleshootCategory = "cloudy_glasses"
	CategoryFoodStuck     TroubleshootCategory = "food_stuck"
	CategoryGreasyFeeling TroubleshootCategory = "greasy_feeling"
	CategorySpots         TroubleshootCategory = "spots"
	CategoryBadSmell      TroubleshootCategory = "bad_smell"
	CategoryNotDrying     TroubleshootCategory = "not_drying"
	CategoryOther         TroubleshootCategory = "other"
)

func TroubleshootCategories() []TroubleshootCategory {
	return []TroubleshootCategory{
		CategoryWhiteResidue, CategoryCloudyGlasses, CategoryFoodStuck, CategoryGreasyFeeling,
		CategorySpots, CategoryBadSmell, CategoryNotDrying, CategoryOther,
	}
}

type CategoryInfo struct {
	Category    TroubleshootCategory `json:"category"`
	Label       string               `json:"label"`
	Description string               `json:"description"`
}

type TroubleshootSolution struct {
	Title                 string   `json:"title"`
	Summary               string   `json:"summary"`
	Steps                 []string `json:"steps"`
	Tips                  []string `json:"tips,omitempty"`
	ProductRecommendation string   `json:"product_recommendation,omitempty"`
}

type StepKind string

const (
	StepKindQuestion  StepKind = "question"
	StepKindDiagnosis StepKind = "diagnosis"
	StepKindSolution  StepKind = "solution"
)

// DiagnosisStep is one node of the troubleshooting graph. The concrete types
// are QuestionStep, DiagnosisTerminal and SolutionTerminal; nothing outside
// this package can add another.
type DiagnosisStep interface {
	StepID() string
	Kind() StepKind
	sealed()
}

type StepOption struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	NextStep string `json:"next_step,omitempty"`
}

type QuestionStep struct {
	ID       string
	Question string
	Options  []StepOption
}

func (s QuestionStep) StepID() string { return s.ID }
func (QuestionStep) Kind() StepKind   { return StepKindQuestion }
func (QuestionStep) sealed()          {}

// Option returns the option whose value matches answer.
func (s QuestionStep) Option(answer string) (StepOption, bool) {
	for _, o := range s.Options {
		if o.Value == answer {
			return o, true
		}
	}
	return StepOption{}, false
}

func (s QuestionStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string       `json:"id"`
		Kind     StepKind     `json:"kind"`
		Question string       `json:"question"`
		Options  []StepOption `json:"options"`
	}{s.ID, s.Kind(), s.Question, s.Options})
}

type DiagnosisTerminal struct {
	ID        string
	Diagnosis string
}

func (s DiagnosisTerminal) StepID() string { return s.ID }
func (DiagnosisTerminal) Kind() StepKind   { return StepKindDiagnosis }
func (DiagnosisTerminal) sealed()          {}

func (s DiagnosisTerminal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string   `json:"id"`
		Kind      StepKind `json:"kind"`
		Diagnosis string   `json:"diagnosis"`
	}{s.ID, s.Kind(), s.Diagnosis})
}

type SolutionTerminal struct {
	ID       string
	Solution TroubleshootSolution
}

func (s SolutionTerminal) StepID() string { return s.ID }
func (SolutionTerminal) Kind() StepKind   { return StepKindSolution }
func (SolutionTerminal) sealed()          {}

func (s SolutionTerminal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string               `json:"id"`
		Kind     StepKind             `json:"kind"`
		Solution TroubleshootSolution `json:"solution"`
	}{s.ID, s.Kind(), s.Solution})
}
