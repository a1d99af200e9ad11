// Package effects scopes side effects behind context-registered handlers.
//
// A handler is installed with one of the WithXxxEffectHandler functions,
// which returns a derived context and a teardown. Code running under that
// context performs the effect by enum without knowing who handles it:
//
//	ctx, end := log.WithZapEffectHandler(ctx, 16, logger)
//	defer end()
//
//	log.Effect(ctx, log.LogInfo, "solved", map[string]any{"drops": 14})
//
// Handlers run on their own workers. Fire-and-forget handlers queue the
// payload and return; resumable handlers hand back a channel that yields the
// result. Partitionable handlers route payloads with the same PartitionKey
// to the same worker, so they are handled in order.
//
// Tearing a handler down stops accepting payloads, drains what was already
// queued, and runs the teardown hook.
package effects
