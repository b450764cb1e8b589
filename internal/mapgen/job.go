package mapgen

import (
	"context"

	"faultmap/internal/terrain"
)

// Job is a generation running on its own goroutine. A caller that loses
// interest simply drops the Job; the result is discarded when the run ends.
type Job struct {
	Request Request

	done chan struct{}
	res  *terrain.Result
	err  error
}

// Start launches req in the background.
func (g *Generator) Start(req Request) *Job {
	j := &Job{Request: req, done: make(chan struct{})}
	go func() {
		defer close(j.done)
		j.res, j.err = g.Run(req)
	}()
	return j
}

// Done is closed once the run has finished.
func (j *Job) Done() <-chan struct{} { return j.done }

// Ready reports without blocking whether the run has finished.
func (j *Job) Ready() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

// Result blocks until the run finishes and returns its outcome.
func (j *Job) Result() (*terrain.Result, error) {
	<-j.done
	return j.res, j.err
}

// Wait blocks until the run finishes or ctx is done.
func (j *Job) Wait(ctx context.Context) (*terrain.Result, error) {
	select {
	case <-j.done:
		return j.res, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
