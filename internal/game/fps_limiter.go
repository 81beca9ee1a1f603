package game

import (
	"time"

	"endless-terrain/internal/config"
)

// fpsLimitSteps are the caps CycleFPSLimit walks through; 0 means uncapped.
var fpsLimitSteps = []int{60, 120, 240, 0}

// CycleFPSLimit advances the frame cap to the next step and returns the new
// value. A cap set outside the steps restarts the cycle at the first one.
func CycleFPSLimit() int {
	current := config.GetFPSLimit()
	next := fpsLimitSteps[0]
	for i, s := range fpsLimitSteps {
		if s == current {
			next = fpsLimitSteps[(i+1)%len(fpsLimitSteps)]
			break
		}
	}
	config.SetFPSLimit(next)
	return config.GetFPSLimit()
}

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame should be rendered based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(paused bool) {
	effectiveLimit := config.GetFPSLimit()
	if paused {
		effectiveLimit = 60
	}

	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
