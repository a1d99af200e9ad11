package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/powereggs/effects/internal/handlers"
	"github.com/stretchr/testify/assert"
)

func TestFireAndForgetHandler_BasicExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan string, 1)

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		10,
		func(ctx context.Context, msg string) {
			received <- msg
		},
		func() {},
	)
	defer handler.Close()

	assert.True(t, handler.FireAndForgetEffect(ctx, "hello"))

	select {
	case msg := <-received:
		assert.Equal(t, "hello", msg)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for handler")
	}
}

func TestFireAndForgetHandler_CloseFlushesAndTearsDown(t *testing.T) {
	ctx := context.Background()

	var handled []int
	tornDown := false

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		10,
		func(ctx context.Context, msg int) {
			handled = append(handled, msg)
		},
		func() {
			tornDown = true
		},
	)
	assert.NotEmpty(t, handler.EffectId)

	for i := 1; i <= 5; i++ {
		handler.FireAndForgetEffect(ctx, i)
	}
	handler.Close()
	handler.Close() // idempotent

	assert.Equal(t, []int{1, 2, 3, 4, 5}, handled)
	assert.True(t, tornDown)

	assert.False(t, handler.FireAndForgetEffect(ctx, 6), "payloads after close are dropped")
}

func TestFireAndForgetHandler_CancelledCaller(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	handler := handlers.NewFireAndForgetHandler(
		context.Background(),
		10,
		func(ctx context.Context, msg string) {
			called = true
		},
		func() {},
	)

	assert.False(t, handler.FireAndForgetEffect(ctx, "should-not-send"))
	handler.Close()
	assert.False(t, called, "handler should not have been called")
}
