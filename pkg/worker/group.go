package worker

import (
	"context"
	"sync"
)

type ErrorJob func(context.Context) error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	errChan   chan error
	errResult error
	wg        sync.WaitGroup

	onceCloser sync.Once
}

// NewFailFastGroup cancels the context of the other jobs after the first error.
func NewFailFastGroup(ctx context.Context) Group {
	ctx, ctxCancel := context.WithCancel(ctx)
	return &group{
		ctx:       ctx,
		ctxCancel: ctxCancel,
		errChan:   make(chan error, 1),
	}
}

func (g *group) Do(job ErrorJob) {
	handleErr := func(err error) {
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
			g.ctxCancel()
		default:
		}
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		handleErr(job(g.ctx))
	}()
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.onceCloser.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
