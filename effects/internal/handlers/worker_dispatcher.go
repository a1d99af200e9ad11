package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/powereggs/effects/internal/model"
)

// --- common interface ---

type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// Wait blocks until every worker has drained its channel and returned.
	Wait()
}

// runWorker handles messages until ctx is done, then handles whatever is
// still buffered so that nothing accepted before shutdown is lost.
func runWorker[T any](ctx context.Context, ch chan T, handleFn func(context.Context, T)) {
	for {
		select {
		case msg := <-ch:
			handleFn(ctx, msg)
		case <-ctx.Done():
			for {
				select {
				case msg := <-ch:
					handleFn(ctx, msg)
				default:
					return
				}
			}
		}
	}
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	done     chan struct{}
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Wait() {
	<-q.done
}

func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	q := singleQueue[T]{
		effectCh: make(chan T, bufferSize),
		done:     make(chan struct{}),
	}
	ready := make(chan struct{})

	go func() {
		defer close(q.done)
		close(ready)
		runWorker(ctx, q.effectCh, handleFn)
	}()

	<-ready

	return q
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
	wg        *sync.WaitGroup
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	idx := getIndexByHash(msg, len(pq.effectChs))
	return pq.effectChs[idx]
}

func (pq partitionedQueue[T]) Wait() {
	pq.wg.Wait()
}

func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	pq := partitionedQueue[T]{
		effectChs: make([]chan T, numWorkers),
		wg:        &sync.WaitGroup{},
	}
	ready := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		pq.wg.Add(1)
		ch := make(chan T, bufferSize)
		go func() {
			defer pq.wg.Done()
			ready.Done()
			runWorker(ctx, ch, handleFn)
		}()
		pq.effectChs[i] = ch
	}
	ready.Wait()
	return pq
}
