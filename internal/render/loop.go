package render

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is one frame at 60 Hz.
const DefaultFrameInterval = time.Second / 60

// Loop ticks once per frame interval and hands each tick to dispatch, which
// should run the frame function on the host's UI goroutine. The frame
// function is expected to be cheap when nothing changed.
type Loop struct {
	interval time.Duration
	dispatch func(func())
	frame    func()

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop returns a stopped loop. A nil dispatch runs frames directly on
// the loop goroutine. dispatch must not block until Stop returns.
func NewLoop(interval time.Duration, dispatch func(func()), frame func()) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &Loop{interval: interval, dispatch: dispatch, frame: frame}
}

// Start begins ticking until ctx is done or Stop is called. Starting a
// running loop is a no-op.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	go l.run(ctx, l.done)
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

// Stop cancels the loop and waits for its goroutine to exit. It is safe to
// call more than once and on a loop that was never started.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			l.dispatch(l.frame)
		}
	}
}
