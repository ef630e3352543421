package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/hardness"
	"dishmate/internal/domain/model"
	"dishmate/internal/infra/config"
)

var ErrProfileExists = errors.New("profile already exists")

type Store interface {
	Load(ctx context.Context) (config.Profile, error)
	Save(ctx context.Context, p config.Profile) error
	Path() string
	Exists() bool
}

// View is the stored profile together with the hardness advice will use.
type View struct {
	Path              string              `json:"path"`
	Profile           config.Profile      `json:"profile"`
	EffectiveHardness model.WaterHardness `json:"effective_hardness"`
}

type Service struct {
	store Store
}

func NewService(store Store) Service { return Service{store: store} }

// Init writes p. An existing profile is only replaced when force is set.
func (s Service) Init(ctx context.Context, app *common.AppContext, p config.Profile, force bool) (model.CommandResult, error) {
	start := time.Now()
	if s.store.Exists() && !force {
		return model.CommandResult{}, fmt.Errorf("%w at %s (use --force to overwrite)", ErrProfileExists, s.store.Path())
	}
	if err := s.store.Save(ctx, p); err != nil {
		return model.CommandResult{}, err
	}
	return common.Envelope(ctx, app, "profile init", start, "saved", s.store.Path(), s.view(p)), nil
}

func (s Service) Show(ctx context.Context, app *common.AppContext) (model.CommandResult, error) {
	start := time.Now()
	p, err := s.store.Load(ctx)
	if err != nil {
		return model.CommandResult{}, err
	}
	outcome := "defaults"
	if s.store.Exists() {
		outcome = "loaded"
	}
	return common.Envelope(ctx, app, "profile show", start, outcome, s.store.Path(), s.view(p)), nil
}

func (s Service) view(p config.Profile) View {
	h, _ := common.ResolveHardness("", p, func(city string) model.WaterHardness {
		return hardness.CityHardness(city).Hardness
	})
	return View{Path: s.store.Path(), Profile: p, EffectiveHardness: h}
}
