// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrNotRunning reports an Add against a batcher whose background loop
// is not running, either because Start was never called or because the
// loop's context ended.
var ErrNotRunning = errors.New("batcher is not running")

// Options tune a Batcher. Zero values fall back to defaults.
type Options struct {
	// FlushSize is the buffer size that triggers an immediate flush.
	FlushSize int
	// FlushInterval flushes whatever is buffered on a timer.
	FlushInterval time.Duration
	// FlushRPS caps flush callbacks per second.
	FlushRPS int
}

func (o Options) withDefaults() Options {
	if o.FlushSize <= 0 {
		o.FlushSize = 100
	}
	if o.FlushInterval <= 0 {
		o.FlushInterval = time.Second
	}
	if o.FlushRPS <= 0 {
		o.FlushRPS = 10
	}
	return o
}

// Batcher buffers items and flushes them either by size or interval.
// Flush failures are logged, not returned: the batcher is only suitable
// for best-effort writes.
type Batcher[T any] struct {
	flush   func(context.Context, []T) error
	itemsCh chan T
	opts    Options
	rl      ratelimit.Limiter
	logger  *zap.Logger

	running atomic.Bool
	wg      sync.WaitGroup
	stop    chan struct{}
}

// New constructs a Batcher delivering buffered items to flush.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, opts Options) *Batcher[T] {
	opts = opts.withDefaults()
	return &Batcher[T]{
		logger:  logger,
		flush:   flush,
		itemsCh: make(chan T, opts.FlushSize*2),
		opts:    opts,
		rl:      ratelimit.New(opts.FlushRPS),
		stop:    make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.running.Store(true)
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes the remaining buffer and stops the background loop.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
// Without a running background loop the item would sit in the buffer
// forever, so Add fails instead of queueing.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}
	if !b.running.Load() {
		return ErrNotRunning
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()
	defer b.running.Store(false)

	ticker := time.NewTicker(b.opts.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.opts.FlushSize)

	drain := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			// Pull whatever made it into the channel before stopping.
			for {
				select {
				case item := <-b.itemsCh:
					buf = append(buf, item)
					continue
				default:
				}
				break
			}
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.opts.FlushSize {
				drain()
			}

		case <-ticker.C:
			drain()
		}
	}
}
