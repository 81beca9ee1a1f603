package game

import (
	"testing"

	"endless-terrain/internal/config"
)

func TestCycleFPSLimitWalksSteps(t *testing.T) {
	config.SetFPSLimit(60)
	defer config.SetFPSLimit(120)

	want := []int{120, 240, 0, 60, 120}
	for _, w := range want {
		if got := CycleFPSLimit(); got != w {
			t.Fatalf("CycleFPSLimit = %d, want %d", got, w)
		}
		if config.GetFPSLimit() != w {
			t.Fatalf("limit not stored: %d, want %d", config.GetFPSLimit(), w)
		}
	}
}

func TestCycleFPSLimitFromOffStepValue(t *testing.T) {
	config.SetFPSLimit(144)
	defer config.SetFPSLimit(120)

	if got := CycleFPSLimit(); got != 60 {
		t.Errorf("cycle from off-step cap = %d, want first step 60", got)
	}
}
