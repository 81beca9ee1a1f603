package mapgen

import (
	"runtime"
	"sync"

	"endless-terrain/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

type mapJob struct {
	center mgl32.Vec2
	cb     func(*MapData)
}

type mapResult struct {
	data *MapData
	cb   func(*MapData)
}

// Requester generates MapData payloads on background workers and delivers
// them through Drain on the tick goroutine. A callback is never invoked
// synchronously from RequestMapData, even if a worker finishes first.
type Requester struct {
	jobs    chan mapJob
	results chan mapResult
	gen     *Generator
	wg      sync.WaitGroup
}

// NewRequester starts a requester with one worker per CPU.
func NewRequester(gen *Generator) *Requester {
	r := &Requester{
		jobs:    make(chan mapJob, 4096),
		results: make(chan mapResult, 4096),
		gen:     gen,
	}

	workers := max(runtime.NumCPU()-1, 1)
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

func (r *Requester) worker() {
	defer r.wg.Done()
	for job := range r.jobs {
		r.results <- mapResult{data: r.gen.Generate(job.center), cb: job.cb}
	}
}

// RequestMapData queues generation of the payload for a chunk center.
// The callback fires on a later Drain call.
func (r *Requester) RequestMapData(center mgl32.Vec2, cb func(*MapData)) {
	r.jobs <- mapJob{center: center, cb: cb}
}

// Drain invokes the callbacks of all completed requests. Call once per tick
// from the goroutine that owns the chunk state.
func (r *Requester) Drain() {
	defer profiling.Track("mapgen.Drain")()
	for {
		select {
		case res := <-r.results:
			res.cb(res.data)
		default:
			return
		}
	}
}

// Close stops the workers. In-flight results stay buffered and can still be
// drained afterwards.
func (r *Requester) Close() {
	close(r.jobs)
	r.wg.Wait()
}
