package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle is a cooperative stop flag shared by a loop and the goroutines serving it.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(parent context.Context) *Lifecycle {
	ctx, cancel := context.WithCancel(parent)
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Started() {
	lc.wg.Add(1)
}

func (lc *Lifecycle) Done() {
	lc.wg.Done()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

// Stopping is closed once the lifecycle is cancelled, either directly or through its parent context.
func (lc *Lifecycle) Stopping() <-chan struct{} {
	return lc.ctx.Done()
}

// Cancel flags the lifecycle as stopping without waiting for anything.
func (lc *Lifecycle) Cancel() {
	lc.cancel()
}

// Wait blocks until every started goroutine reported Done.
func (lc *Lifecycle) Wait() {
	lc.wg.Wait()
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
