package engine

import (
	"testing"

	"github.com/theirongolddev/pocket/internal/model"
)

func TestClassify_Boundaries(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name  string
		spent float64
		goal  float64
		want  model.BudgetStatus
	}{
		{"zero goal is untrackable", 500, 0, model.StatusNoBudget},
		{"negative goal is untrackable", 0, -10, model.StatusNoBudget},
		{"well under", 100, 1000, model.StatusOnTrack},
		{"just under the band", 799.99, 1000, model.StatusOnTrack},
		{"exactly 80 percent", 800, 1000, model.StatusNearLimit},
		{"inside the band", 850, 1000, model.StatusNearLimit},
		{"exactly at goal", 1000, 1000, model.StatusNearLimit},
		{"just over goal", 1000.01, 1000, model.StatusOverBudget},
		{"far over goal", 2500, 1000, model.StatusOverBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.spent, tt.goal, p)
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.spent, tt.goal, got, tt.want)
			}
		})
	}
}

func TestClassify_ZeroGoalIgnoresSpend(t *testing.T) {
	p := DefaultPolicy()
	for _, spent := range []float64{0, 0.01, 100, 1e9} {
		if got := Classify(spent, 0, p); got != model.StatusNoBudget {
			t.Errorf("Classify(%v, 0) = %v, want NoBudget", spent, got)
		}
	}
}

func TestClassify_CustomThreshold(t *testing.T) {
	p := DefaultPolicy()
	p.NearLimitRatio = 0.5

	if got := Classify(500, 1000, p); got != model.StatusNearLimit {
		t.Errorf("Classify(500, 1000) with 50%% threshold = %v, want NearLimit", got)
	}
	if got := Classify(499, 1000, p); got != model.StatusOnTrack {
		t.Errorf("Classify(499, 1000) with 50%% threshold = %v, want OnTrack", got)
	}
}
