package troubleshoot

import (
	"fmt"
	"slices"

	"dishmate/internal/domain/model"
)

const (
	StartStepID   = "start"
	ErrorStepID   = "error"
	GenericStepID = "generic"

	GenericDiagnosis = "We couldn't find a specific solution. Try checking the filter and running a cleaning cycle."
)

type answerKey struct {
	step   string
	answer string
}

var stepIndex = func() map[string]int {
	idx := make(map[string]int, len(steps))
	for i, s := range steps {
		idx[s.ID] = i
	}
	return idx
}()

func StartStepFor(category model.TroubleshootCategory) string {
	return string(category) + "_start"
}

func Categories() []model.CategoryInfo {
	return slices.Clone(categories)
}

func Category(c model.TroubleshootCategory) (model.CategoryInfo, bool) {
	for _, info := range categories {
		if info.Category == c {
			return info, true
		}
	}
	return model.CategoryInfo{}, false
}

// InitialQuestion returns the root node listing every category.
func InitialQuestion() model.DiagnosisStep {
	step, _ := question(StartStepID)
	return step
}

// Flow returns the first question for category, or the root when the
// category has no branch of its own.
func Flow(category model.TroubleshootCategory) model.DiagnosisStep {
	if step, ok := question(StartStepFor(category)); ok {
		return step
	}
	return InitialQuestion()
}

// Step looks up a question node by id.
func Step(id string) (model.DiagnosisStep, bool) {
	step, ok := question(id)
	if !ok {
		return nil, false
	}
	return step, true
}

// ProcessAnswer moves one edge through the graph. An option's explicit next
// step always wins over the answer table. Unknown steps yield an error
// diagnosis and unmapped answers yield the generic diagnosis.
func ProcessAnswer(currentStepID, answer string) model.DiagnosisStep {
	current, ok := question(currentStepID)
	if !ok {
		return model.DiagnosisTerminal{ID: ErrorStepID, Diagnosis: "Unknown step"}
	}

	if opt, found := current.Option(answer); found && opt.NextStep != "" {
		next, ok := question(opt.NextStep)
		if !ok {
			return model.DiagnosisTerminal{ID: ErrorStepID, Diagnosis: "Unknown next step"}
		}
		return next
	}

	if id, ok := answerSolutions[answerKey{currentStepID, answer}]; ok {
		if sol, ok := Solution(id); ok {
			return model.SolutionTerminal{ID: id, Solution: sol}
		}
	}

	return model.DiagnosisTerminal{ID: GenericStepID, Diagnosis: GenericDiagnosis}
}

// Walk replays answers from the flow for category and returns every step
// visited, starting node included. It stops at the first terminal step.
func Walk(category model.TroubleshootCategory, answers []string) []model.DiagnosisStep {
	current := Flow(category)
	path := []model.DiagnosisStep{current}
	for _, a := range answers {
		if current.Kind() != model.StepKindQuestion {
			break
		}
		current = ProcessAnswer(current.StepID(), a)
		path = append(path, current)
	}
	return path
}

// Solution returns the solution record for id. Absence is not an error.
func Solution(id string) (model.TroubleshootSolution, bool) {
	sol, ok := solutions[id]
	if !ok {
		return model.TroubleshootSolution{}, false
	}
	sol.Steps = slices.Clone(sol.Steps)
	sol.Tips = slices.Clone(sol.Tips)
	return sol, true
}

// SolutionIDs lists every solution id in sorted order.
func SolutionIDs() []string {
	ids := make([]string, 0, len(solutions))
	for id := range solutions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Validate checks that every next step and every answer target resolves.
func Validate() error {
	for _, s := range steps {
		if len(s.Options) == 0 {
			return fmt.Errorf("step %s has no options", s.ID)
		}
		for _, o := range s.Options {
			if o.NextStep == "" {
				continue
			}
			if _, ok := stepIndex[o.NextStep]; !ok {
				return fmt.Errorf("step %s option %s points at missing step %s", s.ID, o.Value, o.NextStep)
			}
		}
	}
	for k, id := range answerSolutions {
		if _, ok := stepIndex[k.step]; !ok {
			return fmt.Errorf("answer %s:%s is keyed on missing step", k.step, k.answer)
		}
		if _, ok := solutions[id]; !ok {
			return fmt.Errorf("answer %s:%s points at missing solution %s", k.step, k.answer, id)
		}
	}
	for _, c := range model.TroubleshootCategories() {
		if _, ok := stepIndex[StartStepFor(c)]; !ok {
			return fmt.Errorf("category %s has no start step", c)
		}
	}
	return nil
}

func question(id string) (model.QuestionStep, bool) {
	i, ok := stepIndex[id]
	if !ok {
		return model.QuestionStep{}, false
	}
	s := steps[i]
	s.Options = slices.Clone(s.Options)
	return s, true
}
