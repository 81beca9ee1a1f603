package meshing

import (
	"testing"
	"time"
)

func drainUntil(t *testing.T, p *Pool, done func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !done() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for mesh delivery")
		}
		p.Drain()
		time.Sleep(time.Millisecond)
	}
}

func TestPoolDeliversThroughDrain(t *testing.T) {
	p := NewPool(2, 16)
	defer p.Shutdown()

	var got *Mesh
	p.RequestMeshData(flatData(13, 1), 0, func(m *Mesh) { got = m })

	// The callback must never fire from the request call itself.
	if got != nil {
		t.Fatal("callback fired synchronously")
	}

	drainUntil(t, p, func() bool { return got != nil })

	if len(got.Positions) != 169 {
		t.Errorf("delivered mesh has %d vertices, want 169", len(got.Positions))
	}
}

func TestPoolDeliversEveryRequest(t *testing.T) {
	p := NewPool(4, 64)
	defer p.Shutdown()

	const n = 40
	delivered := 0
	data := flatData(13, 0)
	for i := 0; i < n; i++ {
		p.RequestMeshData(data, i%3, func(m *Mesh) { delivered++ })
	}

	drainUntil(t, p, func() bool { return delivered == n })
}

func TestPoolDrainEmptyDoesNotBlock(t *testing.T) {
	p := NewPool(1, 4)
	defer p.Shutdown()

	done := make(chan struct{})
	go func() {
		p.Drain()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Drain blocked on an empty pool")
	}
}

func TestPoolShutdownStopsWorkers(t *testing.T) {
	p := NewPool(2, 4)
	p.Shutdown() // must not hang

	// Requests after shutdown are dropped, not deadlocked.
	fired := false
	for i := 0; i < 10; i++ {
		p.RequestMeshData(flatData(13, 0), 0, func(m *Mesh) { fired = true })
	}
	p.Drain()
	if fired {
		t.Error("callback fired after shutdown")
	}
}
