package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()

	stop := Track("test.op")
	time.Sleep(2 * time.Millisecond)
	stop()

	stop = Track("test.op")
	stop()

	ss := Snapshot()
	if ss["test.op"] < 2*time.Millisecond {
		t.Errorf("accumulated %v, want at least 2ms", ss["test.op"])
	}
}

func TestResetFrameClears(t *testing.T) {
	Track("test.op")()
	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("snapshot after reset = %v", Snapshot())
	}
}

func TestTopNOrdersByDuration(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	mu.Lock()
	frameTotals["slow"] = 10 * time.Millisecond
	frameTotals["fast"] = 1 * time.Millisecond
	frameTotals["mid"] = 5 * time.Millisecond
	mu.Unlock()

	got := TopN(2)
	if got != "slow:10.0ms, mid:5.0ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if !strings.Contains(TopN(10), "fast:1.0ms") {
		t.Errorf("TopN(10) = %q, missing fast", TopN(10))
	}
}
