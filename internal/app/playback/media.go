package playback

import (
	"context"
	"sync"
)

// mediaWorker runs audio handle operations one at a time, in submission order,
// outside the controller lock. Submission never blocks, so it is safe to submit
// while holding the controller lock even when a running job waits for it.
type mediaWorker struct {
	mu      sync.Mutex
	pending []func(ctx context.Context)
	stopped bool

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func newMediaWorker() *mediaWorker {
	ctx, cancel := context.WithCancel(context.Background())
	w := &mediaWorker{
		wake:   make(chan struct{}, 1),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *mediaWorker) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		if len(w.pending) == 0 {
			w.mu.Unlock()
			select {
			case <-w.wake:
				continue
			case <-w.ctx.Done():
				return
			}
		}
		job := w.pending[0]
		w.pending[0] = nil
		w.pending = w.pending[1:]
		w.mu.Unlock()

		job(w.ctx)
	}
}

// submit queues a job. Jobs submitted after stop are dropped.
func (w *mediaWorker) submit(job func(ctx context.Context)) bool {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return false
	}
	w.pending = append(w.pending, job)
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
	return true
}

// flush blocks until every job submitted before the call has run.
// It must not be called from a job.
func (w *mediaWorker) flush() {
	ch := make(chan struct{})
	if !w.submit(func(context.Context) { close(ch) }) {
		return
	}
	select {
	case <-ch:
	case <-w.done:
	}
}

// stop runs the pending jobs, then terminates the worker.
func (w *mediaWorker) stop() {
	w.once.Do(func() {
		w.flush()
		w.mu.Lock()
		w.stopped = true
		w.pending = nil
		w.mu.Unlock()
		w.cancel()
		<-w.done
	})
}
