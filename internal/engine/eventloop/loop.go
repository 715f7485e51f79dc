// Package eventloop provides a single-threaded cooperative task loop.
//
// Tasks posted to a Loop run one after another on the goroutine that called Exec,
// never concurrently with each other.
package eventloop

import (
	"sync"
)

// Loop is a cooperative event loop. The zero value is not usable; use New.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	exited  bool
	code    int
	running bool
}

// New creates an idle loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues task to run on the loop. It is safe to call from any goroutine,
// including from inside a running task.
func (l *Loop) Post(task func()) {
	l.mu.Lock()
	l.pending = append(l.pending, task)
	l.mu.Unlock()
	l.signal()
}

// Exit stops the loop after the current task returns. Exec returns code.
func (l *Loop) Exit(code int) {
	l.mu.Lock()
	if !l.exited {
		l.exited = true
		l.code = code
	}
	l.mu.Unlock()
	l.signal()
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Exec runs queued tasks until Exit is called and returns the exit code.
// Tasks still queued when Exit is called are dropped.
func (l *Loop) Exec() int {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		panic("eventloop: Exec called while the loop is running")
	}
	l.running = true
	l.mu.Unlock()

	for {
		l.mu.Lock()
		if l.exited {
			code := l.code
			l.pending = nil
			l.running = false
			l.mu.Unlock()
			return code
		}
		if len(l.pending) == 0 {
			l.mu.Unlock()
			<-l.wake
			continue
		}
		task := l.pending[0]
		l.pending = l.pending[1:]
		l.mu.Unlock()

		task()
	}
}
