// Package clock abstracts time so state machines can be tested with a frozen
// or stepped clock.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant until advanced. Test helper.
type Fixed struct {
	Current time.Time
}

func NewFixed(t time.Time) *Fixed { return &Fixed{Current: t} }

func (f *Fixed) Now() time.Time { return f.Current }

// Advance moves the fixed clock forward.
func (f *Fixed) Advance(d time.Duration) { f.Current = f.Current.Add(d) }
