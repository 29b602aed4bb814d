package web

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopClosed is returned by Do after Close.
var ErrLoopClosed = errors.New("ui loop closed")

// Loop runs queued functions one at a time on a single goroutine. Everything
// that touches the document or the store goes through it.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop starts a loop.
func NewLoop() *Loop {
	l := &Loop{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		select {
		case task := <-l.tasks:
			task()
		case <-l.done:
			return
		}
	}
}

// Do runs fn on the loop and returns its error. It gives up waiting when ctx
// is done; a function that already started still runs to completion.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	errc := make(chan error, 1)
	task := func() { errc <- fn() }

	select {
	case l.tasks <- task:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrLoopClosed
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrLoopClosed
	}
}

// Close stops the loop. Queued calls to Do return ErrLoopClosed.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}
