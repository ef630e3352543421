package troubleshoot

import (
	"context"
	"fmt"
	"slices"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/model"
	"dishmate/internal/domain/troubleshoot"
)

type Service struct{}

// Diagnosis is the replayed walk through the decision tree. Current is the
// last step visited and Complete is false while it is still a question.
type Diagnosis struct {
	Category model.TroubleshootCategory `json:"category,omitempty"`
	Answers  []string                   `json:"answers"`
	Path     []model.DiagnosisStep      `json:"path"`
	Current  model.DiagnosisStep        `json:"current"`
	Complete bool                       `json:"complete"`
}

func NewService() Service { return Service{} }

// Run replays answers from the start of category. With no category the first
// answer picks one at the root question. Any other first answer ends in the
// generic diagnosis.
func (Service) Run(ctx context.Context, app *common.AppContext, category model.TroubleshootCategory, answers []string) (model.CommandResult, error) {
	start := time.Now()
	if category == "" && len(answers) > 0 {
		if _, ok := troubleshoot.Category(model.TroubleshootCategory(answers[0])); ok {
			category = model.TroubleshootCategory(answers[0])
			answers = answers[1:]
		}
	}

	path := troubleshoot.Walk(category, answers)
	current := path[len(path)-1]
	d := Diagnosis{
		Category: category,
		Answers:  slices.Clone(answers),
		Path:     path,
		Current:  current,
		Complete: current.Kind() != model.StepKindQuestion,
	}
	if d.Answers == nil {
		d.Answers = []string{}
	}

	outcome := fmt.Sprintf("%s:%s", current.Kind(), current.StepID())
	detail := fmt.Sprintf("category=%s answers=%d", category, len(answers))
	return common.Envelope(ctx, app, "troubleshoot", start, outcome, detail, d), nil
}

func (Service) Categories(ctx context.Context, app *common.AppContext) (model.CommandResult, error) {
	start := time.Now()
	cats := troubleshoot.Categories()
	return common.Envelope(ctx, app, "troubleshoot categories", start, "listed", fmt.Sprintf("count=%d", len(cats)), cats), nil
}
