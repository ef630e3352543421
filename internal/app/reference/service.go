package reference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/model"
	"dishmate/internal/domain/reference"
)

type Topic string

const (
	TopicEnzymes     Topic = "enzymes"
	TopicPrewash     Topic = "prewash"
	TopicTemperature Topic = "temperature"
	TopicQuickStart  Topic = "quickstart"
	TopicOnboarding  Topic = "onboarding"
	TopicQuickWin    Topic = "quickwin"
	TopicMistakes    Topic = "mistakes"
	TopicActionPlan  Topic = "plan"
	TopicBasics      Topic = "basics"
)

func Topics() []Topic {
	return []Topic{
		TopicEnzymes, TopicPrewash, TopicTemperature, TopicQuickStart, TopicOnboarding,
		TopicQuickWin, TopicMistakes, TopicActionPlan, TopicBasics,
	}
}

// Lesson wraps one topic's content. Content holds the domain record for the
// topic, so its shape varies by topic.
type Lesson struct {
	Topic   Topic `json:"topic"`
	Content any   `json:"content"`
}

type Service struct{}

func NewService() Service { return Service{} }

// Cycles describes one cycle, or all of them when c is empty.
func (Service) Cycles(ctx context.Context, app *common.AppContext, c model.CycleType) (model.CommandResult, error) {
	start := time.Now()
	if c == "" {
		all := reference.AllCycles()
		return common.Envelope(ctx, app, "cycles info", start, "all", fmt.Sprintf("count=%d", len(all)), all), nil
	}
	info, ok := reference.CycleInfo(c)
	if !ok {
		return model.CommandResult{}, fmt.Errorf("unknown cycle %q", c)
	}
	return common.Envelope(ctx, app, "cycles info", start, string(c), "", info), nil
}

func (Service) Compare(ctx context.Context, app *common.AppContext, c1, c2 model.CycleType) (model.CommandResult, error) {
	start := time.Now()
	for _, c := range []model.CycleType{c1, c2} {
		if _, ok := reference.CycleInfo(c); !ok {
			return model.CommandResult{}, fmt.Errorf("unknown cycle %q", c)
		}
	}
	cmp := reference.CompareCycles(c1, c2)
	return common.Envelope(ctx, app, "cycles compare", start, string(cmp.Recommendation), fmt.Sprintf("%s vs %s", c1, c2), cmp), nil
}

// Suggest picks a cycle for a load dominated by one soil or one item type.
// Soil wins when both are given.
func (Service) Suggest(ctx context.Context, app *common.AppContext, soil model.SoilType, item model.ItemType) (model.CommandResult, error) {
	start := time.Now()
	var (
		choice model.CycleChoice
		detail string
	)
	switch {
	case soil != "":
		choice, detail = reference.CycleForSoil(soil), "soil="+string(soil)
	case item != "":
		choice, detail = reference.CycleForItem(item), "item="+string(item)
	default:
		return model.CommandResult{}, fmt.Errorf("a soil type or an item type is required")
	}
	return common.Envelope(ctx, app, "cycles suggest", start, string(choice.Cycle), detail, choice), nil
}

// Learn returns the lessons for topic, or every lesson when topic is empty.
func (Service) Learn(ctx context.Context, app *common.AppContext, topic string) (model.CommandResult, error) {
	start := time.Now()
	topics := Topics()
	if t := Topic(strings.ToLower(strings.TrimSpace(topic))); t != "" {
		if lessonContent(t) == nil {
			return model.CommandResult{}, fmt.Errorf("invalid topic %q: must be one of %s", topic, joinTopics())
		}
		topics = []Topic{t}
	}

	lessons := make([]Lesson, 0, len(topics))
	for _, t := range topics {
		lessons = append(lessons, Lesson{Topic: t, Content: lessonContent(t)})
	}
	outcome := "all"
	if len(lessons) == 1 {
		outcome = string(lessons[0].Topic)
	}
	return common.Envelope(ctx, app, "learn", start, outcome, "", lessons), nil
}

func lessonContent(t Topic) any {
	switch t {
	case TopicEnzymes:
		return reference.EnzymeExplanation()
	case TopicPrewash:
		return reference.PrewashExplanation()
	case TopicTemperature:
		return reference.TemperatureExplanation()
	case TopicQuickStart:
		return reference.QuickStart()
	case TopicOnboarding:
		return reference.OnboardingSteps()
	case TopicQuickWin:
		return reference.QuickWin()
	case TopicMistakes:
		return reference.TopMistakes()
	case TopicActionPlan:
		return reference.ActionPlan()
	case TopicBasics:
		return reference.DishwasherBasics()
	}
	return nil
}

func joinTopics() string {
	parts := make([]string, 0, len(Topics()))
	for _, t := range Topics() {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
