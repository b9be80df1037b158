package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/storage"
)

const defaultSaveTimeout = 10 * time.Second

// saver writes task list snapshots to the durable slot from a single
// goroutine. One save is in flight at a time; a snapshot enqueued while
// another is still queued replaces it, so the slot converges on the newest
// state no matter how fast mutations arrive. Failed saves are reported and
// dropped, without retries.
type saver struct {
	logger  zerolog.Logger
	slot    storage.Slot
	timeout time.Duration
	report  func(Failure)

	mu      sync.Mutex
	pending []byte
	queued  bool

	kick     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newSaver(
	logger zerolog.Logger,
	slot storage.Slot,
	timeout time.Duration,
	report func(Failure),
) *saver {
	if timeout <= 0 {
		timeout = defaultSaveTimeout
	}

	w := &saver{
		logger:  logger,
		slot:    slot,
		timeout: timeout,
		report:  report,
		kick:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// enqueue hands the saver the newest snapshot. It never blocks; a queued
// snapshot that has not started writing yet is superseded.
func (w *saver) enqueue(value []byte) {
	w.mu.Lock()
	w.pending = value
	w.queued = true
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *saver) run() {
	defer close(w.done)
	for {
		select {
		case <-w.kick:
			w.flush()
		case <-w.stop:
			w.flush()
			return
		}
	}
}

// flush writes queued snapshots until none is left.
func (w *saver) flush() {
	for {
		w.mu.Lock()
		if !w.queued {
			w.mu.Unlock()
			return
		}
		value := w.pending
		w.pending = nil
		w.queued = false
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		err := w.slot.Set(ctx, value)
		cancel()
		if err != nil {
			w.logger.Error().
				Err(err).
				Msg("failed to save tasks")
			w.report(Failure{Kind: FailureWrite, Err: err, At: time.Now()})
			continue
		}

		w.logger.Debug().
			Int("bytes", len(value)).
			Msg("saved tasks")
	}
}

// close flushes the pending snapshot and stops the loop. The context
// bounds the wait.
func (w *saver) close(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.stop) })

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
