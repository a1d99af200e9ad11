package handlers

import (
	"context"
	"errors"

	effectmodel "github.com/on-the-ground/powereggs/effects/internal/model"
)

var ErrHandlerClosed = errors.New("effect handler closed")

func NewResumableHandler[P any, R any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[ResumableEffectMessage[P, R]] {
				return NewSingleQueue(ctx, bufferSize, resume(handleFn))
			},
			teardown,
		),
	}
}

func NewPartitionableResumableHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[ResumableEffectMessage[P, R]] {
				return NewPartitionedQueue(ctx, config.NumWorkers, config.BufferSize, resume(handleFn))
			},
			teardown,
		),
	}
}

// resume adapts handleFn to reply on the message's resume channel.
// The channel has room for exactly one result, so the reply never blocks.
func resume[P, R any](handleFn func(context.Context, P) (R, error)) func(context.Context, ResumableEffectMessage[P, R]) {
	return func(ctx context.Context, msg ResumableEffectMessage[P, R]) {
		msg.ResumeCh <- ResumableResultFrom(handleFn(ctx, msg.Payload))
		close(msg.ResumeCh)
	}
}

type ResumableHandler[P any, R any] struct {
	*effectScope[ResumableEffectMessage[P, R]]
}

// PerformEffect hands payload to a worker and returns the channel the
// result will arrive on. If the payload cannot be delivered the channel
// carries the reason instead.
func (rh ResumableHandler[P, R]) PerformEffect(ctx context.Context, payload P) <-chan ResumableResult[R] {
	resumeCh := make(chan ResumableResult[R], 1)

	msg := ResumableEffectMessage[P, R]{
		Payload:  payload,
		ResumeCh: resumeCh,
	}
	if !rh.send(ctx, msg) {
		err := ctx.Err()
		if err == nil {
			err = ErrHandlerClosed
		}
		var zero R
		resumeCh <- ResumableResultFrom(zero, err)
		close(resumeCh)
	}

	return resumeCh
}

// ResumableResult represents the result of handled effects.
type ResumableResult[T any] struct {
	Value T
	Err   error
}

func ResumableResultFrom[R any](res R, err error) ResumableResult[R] {
	return ResumableResult[R]{Value: res, Err: err}
}

var _ effectmodel.Partitionable = ResumableEffectMessage[any, any]{}

type ResumableEffectMessage[P any, R any] struct {
	Payload  P
	ResumeCh chan ResumableResult[R]
}

func (rem ResumableEffectMessage[P, R]) PartitionKey() string {
	if p, ok := any(rem.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return ""
}
