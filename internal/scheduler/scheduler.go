// Package scheduler runs the simulated-latency callbacks (host auto-accept,
// chat auto-reply). Tasks are keyed by the entity they belong to so a state
// transition that invalidates a pending task can cancel it instead of letting
// a stale closure fire.
package scheduler

import (
	"sync"
	"time"
)

type Task func()

type Scheduler interface {
	// Schedule runs task after delay. A task already pending under the same
	// key is replaced.
	Schedule(key string, delay time.Duration, task Task)
	// Cancel drops a pending task. Unknown keys are a no-op.
	Cancel(key string)
	// CancelAll drops every pending task. Called on logout.
	CancelAll()
}

// Timers is the production scheduler, one time.AfterFunc per pending key.
type Timers struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewTimers() *Timers {
	return &Timers{timers: make(map[string]*time.Timer)}
}

func (s *Timers) Schedule(key string, delay time.Duration, task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()
		task()
	})
}

func (s *Timers) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
}

func (s *Timers) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

// Manual never fires on its own; tests trigger pending tasks explicitly.
type Manual struct {
	mu    sync.Mutex
	tasks map[string]Task
}

func NewManual() *Manual {
	return &Manual{tasks: make(map[string]Task)}
}

func (s *Manual) Schedule(key string, _ time.Duration, task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[key] = task
}

func (s *Manual) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, key)
}

func (s *Manual) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]Task)
}

// Pending reports whether a task is waiting under key.
func (s *Manual) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[key]
	return ok
}

// Fire runs and removes the task under key, if any.
func (s *Manual) Fire(key string) bool {
	s.mu.Lock()
	task, ok := s.tasks[key]
	delete(s.tasks, key)
	s.mu.Unlock()
	if ok {
		task()
	}
	return ok
}
