package css

import (
	"sync"
	"time"

	"shadowme/shadow"
)

// DefaultInterval is the quiet period after the last change before the
// engine recomputes.
const DefaultInterval = 10 * time.Millisecond

// Timer is a pending delayed call. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures an Engine.
type Option func(*Engine)

// WithInterval sets the debounce interval.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

// WithScheduler replaces time.AfterFunc, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.schedule = s }
}

// Engine coalesces bursts of property changes into a single recomputation.
// Every change restarts the quiet interval; when it elapses the latest
// snapshot is derived and emitted to subscribers exactly once.
type Engine struct {
	mu       sync.Mutex
	emitMu   sync.Mutex
	interval time.Duration
	schedule Scheduler

	pending Timer
	gen     uint64
	dirty   bool
	stopped bool
	latest  shadow.Properties

	last       Output
	recomputes int
	subs       []func(Output)
}

// NewEngine derives initial immediately so Current is valid from the start.
func NewEngine(initial shadow.Properties, opts ...Option) *Engine {
	e := &Engine{
		interval: DefaultInterval,
		schedule: afterFunc,
		latest:   initial,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.last = Derive(initial)
	e.recomputes = 1
	return e
}

// Subscribe registers fn to receive each emitted Output.
func (e *Engine) Subscribe(fn func(Output)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Observe implements shadow.Observer.
func (e *Engine) Observe(p shadow.Properties) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.latest = p
	e.dirty = true
	if e.pending != nil {
		e.pending.Stop()
	}
	e.gen++
	gen := e.gen
	e.pending = e.schedule(e.interval, func() { e.fire(gen) })
}

// Flush resolves a pending burst now instead of waiting for the timer.
func (e *Engine) Flush() {
	e.mu.Lock()
	if !e.dirty {
		e.mu.Unlock()
		return
	}
	if e.pending != nil {
		e.pending.Stop()
	}
	e.gen++
	e.resolveLocked()
}

// Current returns the most recently emitted Output.
func (e *Engine) Current() Output {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Pending reports whether a burst is waiting for its quiet interval.
func (e *Engine) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Recomputations counts derivations actually performed, including the
// initial one.
func (e *Engine) Recomputations() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recomputes
}

// Stop cancels any pending recomputation and ignores further changes.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	e.dirty = false
	e.gen++
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
}

func (e *Engine) fire(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || !e.dirty {
		e.mu.Unlock()
		return
	}
	e.resolveLocked()
}

// resolveLocked must be entered with e.mu held; it releases it.
func (e *Engine) resolveLocked() {
	e.pending = nil
	e.dirty = false
	if e.latest != e.last.Properties {
		e.last = Derive(e.latest)
		e.recomputes++
	}
	out := e.last
	subs := make([]func(Output), len(e.subs))
	copy(subs, e.subs)

	e.emitMu.Lock()
	e.mu.Unlock()
	defer e.emitMu.Unlock()
	for _, fn := range subs {
		fn(out)
	}
}
