package handlers

import (
	"context"

	effectmodel "github.com/on-the-ground/powereggs/effects/internal/model"
)

func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[P] {
				return NewSingleQueue(ctx, bufferSize, handleFn)
			},
			teardown,
		),
	}
}

func NewPartitionableFireAndForgetHandler[P effectmodel.Partitionable](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[P] {
				return NewPartitionedQueue(ctx, config.NumWorkers, config.BufferSize, handleFn)
			},
			teardown,
		),
	}
}

type FireAndForgetHandler[P any] struct {
	*effectScope[P]
}

// FireAndForgetEffect queues payload and returns without waiting for it to
// be handled. Payloads sent after Close are dropped.
func (ffh FireAndForgetHandler[P]) FireAndForgetEffect(ctx context.Context, payload P) bool {
	return ffh.send(ctx, payload)
}
