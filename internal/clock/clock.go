// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clock abstracts the time operations used by deadline-driven code
// (unlock waiters, the auto-lock job) so that tests can drive time
// explicitly with [FakeClock] instead of sleeping.
package clock

import "time"

// Clock is the subset of the time package the vault depends on.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f in its own goroutine (real clock) or inside
	// Advance (fake clock) once d has elapsed.
	AfterFunc(d time.Duration, f func()) *Timer

	// NewTicker returns a ticker firing every d. Panics if d <= 0.
	NewTicker(d time.Duration) *Ticker
}

// Timer is a handle to a pending AfterFunc call.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the timer from firing. It reports whether the call stopped
// the timer; false means the timer already fired or was stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }

// Ticker delivers ticks on C.
type Ticker struct {
	C        <-chan time.Time
	stopFunc func()
}

// Stop turns the ticker off. No more ticks are delivered after Stop returns.
func (t *Ticker) Stop() { t.stopFunc() }

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	t := time.AfterFunc(d, f)
	return &Timer{stopFunc: t.Stop}
}

func (realClock) NewTicker(d time.Duration) *Ticker {
	t := time.NewTicker(d)
	return &Ticker{C: t.C, stopFunc: t.Stop}
}
