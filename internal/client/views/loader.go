package views

import (
	"context"
	"errors"
	"sync"
)

// LoadState is the lifecycle of a Loader.
type LoadState int

const (
	Idle LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrDiscarded is returned by Load when its response was superseded by
	// a newer load or arrived after Close.
	ErrDiscarded = errors.New("response discarded")
	ErrClosed    = errors.New("view closed")
	ErrNotLoaded = errors.New("nothing loaded yet")
)

// Loader holds the result of the latest read of one server resource.
// The zero value is Idle and ready to use.
type Loader[T any] struct {
	mu     sync.Mutex
	state  LoadState
	value  T
	err    error
	seq    uint64
	cancel context.CancelFunc
	closed bool
}

// Load runs fetch with a context that is cancelled when a newer Load
// starts or the loader is closed. Only the latest load may store its
// result; older ones get ErrDiscarded.
func (l *Loader[T]) Load(ctx context.Context, fetch func(ctx context.Context) (T, error)) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state = Loading
	l.mu.Unlock()
	defer cancel()

	v, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || seq != l.seq {
		return ErrDiscarded
	}
	l.cancel = nil
	if err != nil {
		l.state = Failed
		l.err = err
		return err
	}
	l.state = Loaded
	l.value = v
	l.err = nil
	return nil
}

// Update edits a loaded value in place, for optimistic changes. It is a
// no-op unless the loader is Loaded.
func (l *Loader[T]) Update(fn func(v *T)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Loaded || l.closed {
		return false
	}
	fn(&l.value)
	return true
}

func (l *Loader[T]) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Value is the last successfully loaded value.
func (l *Loader[T]) Value() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value
}

func (l *Loader[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close cancels any load in flight. Later loads fail with ErrClosed.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
