package executor

import (
	"context"
	"sync/atomic"
)

// gate is the cancellation gate both executor kinds poll between dispatch
// decisions. It is tripped either by the run context (external cancellation,
// e.g. an intercepted interrupt signal) or by the first FAILED task when
// ExitOnError is set. The gate never preempts in-flight work.
type gate struct {
	ctx     context.Context
	tripped atomic.Bool
}

func newGate(ctx context.Context) *gate {
	if ctx == nil {
		ctx = context.Background()
	}
	return &gate{ctx: ctx}
}

// trip closes the gate, stopping further dispatch.
func (g *gate) trip() {
	g.tripped.Store(true)
}

// open reports whether new tasks may still be dispatched.
func (g *gate) open() bool {
	return !g.tripped.Load() && g.ctx.Err() == nil
}

// reason describes why the gate is closed, for logging.
func (g *gate) reason() string {
	if err := g.ctx.Err(); err != nil {
		return err.Error()
	}
	if g.tripped.Load() {
		return "task failed with exit-on-error set"
	}
	return "open"
}
