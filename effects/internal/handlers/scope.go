package handlers

import (
	"context"

	"github.com/google/uuid"
)

// effectScope owns the workers of one handler and the context they run in.
//
// A scope is meant to be closed once, by the goroutine that opened it.
// Close is not safe for concurrent use.
type effectScope[T any] struct {
	EffectId   string
	ctx        context.Context
	dispatcher WorkerDispatcher[T]
	closeFn    func()
	closed     bool
}

// Close stops the workers, waits for them to drain, then runs the teardown.
func (es *effectScope[T]) Close() {
	if !es.closed {
		es.closeFn()
		es.closed = true
	}
}

// send delivers msg to its worker unless the caller gives up or the scope
// is already closed.
func (es *effectScope[T]) send(ctx context.Context, msg T) bool {
	if ctx.Err() != nil || es.ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case <-es.ctx.Done():
		return false
	case es.dispatcher.GetChannelOf(msg) <- msg:
		return true
	}
}

func newEffectScope[T any](
	ctx context.Context,
	dispatch func(context.Context) WorkerDispatcher[T],
	teardown func(),
) *effectScope[T] {
	ctx, cancelFn := context.WithCancel(ctx)
	dispatcher := dispatch(ctx)
	return &effectScope[T]{
		EffectId:   uuid.New().String(),
		ctx:        ctx,
		dispatcher: dispatcher,
		closeFn: func() {
			cancelFn()
			dispatcher.Wait()
			teardown()
		},
	}
}
