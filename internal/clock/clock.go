//go:generate mockgen -destination=mocks/mock_clock.go -package=mocks github.com/akyairhashvil/folio/internal/clock Scheduler,Timer

// Package clock abstracts timers so that animation loops can run against
// wall-clock time in the terminal and against simulated time in tests.
package clock

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it had already fired or been stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

type realScheduler struct{}

// Real returns a Scheduler backed by the runtime timers. Callbacks run on
// their own goroutine.
func Real() Scheduler { return realScheduler{} }

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (realScheduler) Now() time.Time { return time.Now() }
