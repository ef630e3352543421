package rinseaid

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/model"
	"dishmate/internal/infra/logging"
)

func TestRecommendGoldenJSON(t *testing.T) {
	app := &common.AppContext{Logger: logging.NewNoopLogger()}
	res, err := NewService().Recommend(context.Background(), app, model.RinseAidInput{
		WaterHardness:  model.HardnessHard,
		DispenserEmpty: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	res.Timestamp = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	res.DurationMS = 0
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	want, err := os.ReadFile(filepath.Join("testdata", "recommend_hard_empty.golden.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got, w := strings.TrimSpace(string(b)), strings.TrimSpace(string(want)); got != w {
		t.Fatalf("golden mismatch\n--- got ---\n%s\n--- want ---\n%s", got, w)
	}
}

func TestDryingDefaultsToMixed(t *testing.T) {
	res, err := NewService().Drying(context.Background(), nil, "")
	if err != nil {
		t.Fatal(err)
	}
	advice := res.Result.(DryingAdvice)
	if advice.Category != model.CategoryMixed || len(advice.Tips) == 0 {
		t.Fatalf("unexpected drying advice %#v", advice)
	}
}

func TestSpotsOutcome(t *testing.T) {
	res, err := NewService().Spots(context.Background(), nil, model.SpotInput{})
	if err != nil {
		t.Fatal(err)
	}
	diag := res.Result.(model.SpotDiagnosis)
	if diag.LikelyCause != model.SpotEtching || !diag.IsPermanent {
		t.Fatalf("expected permanent etching, got %#v", diag)
	}
}
