package meshing

import (
	"context"
	"sync"

	"endless-terrain/internal/mapgen"
)

// meshJob is a mesh-build request for one (payload, detail level) pair.
type meshJob struct {
	data *mapgen.MapData
	lod  int
	cb   func(*Mesh)
}

type meshResult struct {
	mesh *Mesh
	cb   func(*Mesh)
}

// Pool manages goroutines for mesh generation. Build requests run on the
// workers; completed meshes are handed back through Drain on the tick
// goroutine, never synchronously from the request call.
type Pool struct {
	jobQueue chan meshJob
	results  chan meshResult
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewPool creates a mesh worker pool.
func NewPool(workers int, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		jobQueue: make(chan meshJob, queueSize),
		results:  make(chan meshResult, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// RequestMeshData queues a mesh build for a payload at a detail level.
// The callback fires on a later Drain call.
func (p *Pool) RequestMeshData(data *mapgen.MapData, lod int, cb func(*Mesh)) {
	select {
	case p.jobQueue <- meshJob{data: data, lod: lod, cb: cb}:
	case <-p.ctx.Done():
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			mesh := BuildMesh(job.data, job.lod)
			select {
			case p.results <- meshResult{mesh: mesh, cb: job.cb}:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Drain delivers all completed meshes to their callbacks. Call once per tick
// from the goroutine that owns the chunk state.
func (p *Pool) Drain() {
	for {
		select {
		case res := <-p.results:
			res.cb(res.mesh)
		default:
			return
		}
	}
}

// QueueLength returns the current number of queued jobs.
func (p *Pool) QueueLength() int {
	return len(p.jobQueue)
}

// Shutdown stops the worker pool.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
