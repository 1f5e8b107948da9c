// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clock

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a Clock whose time moves only when Advance is called.
// AfterFunc callbacks run synchronously inside Advance, in deadline order.
// Callbacks must not call Advance.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []*fakeTimer
	changed *sync.Cond
}

type fakeTimer struct {
	deadline time.Time
	callback func()
	ticks    chan time.Time
	interval time.Duration
	stopped  bool
	fired    bool
}

// NewFake returns a FakeClock set to start.
func NewFake(start time.Time) *FakeClock {
	c := &FakeClock{now: start}
	c.changed = sync.NewCond(&c.mu)
	return c
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{stopFunc: func() bool { return false }}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ft := &fakeTimer{deadline: c.now.Add(d), callback: f}
	c.pending = append(c.pending, ft)
	c.changed.Broadcast()

	return &Timer{stopFunc: func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if ft.stopped || ft.fired {
			return false
		}
		ft.stopped = true
		return true
	}}
}

func (c *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ticks := make(chan time.Time, 1)
	ft := &fakeTimer{deadline: c.now.Add(d), ticks: ticks, interval: d}
	c.pending = append(c.pending, ft)
	c.changed.Broadcast()

	return &Ticker{C: ticks, stopFunc: func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		ft.stopped = true
	}}
}

// Advance moves the clock forward by d and fires everything whose deadline
// is now due. Ticks that find the channel full are dropped, as with
// time.Ticker.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	target := c.now
	c.mu.Unlock()

	for {
		due := c.collectDue(target)
		if len(due) == 0 {
			return
		}
		for _, ft := range due {
			if ft.callback != nil {
				ft.callback()
				continue
			}
			select {
			case ft.ticks <- target:
			default:
			}
		}
	}
}

func (c *FakeClock) collectDue(target time.Time) []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	var due, remaining []*fakeTimer
	for _, ft := range c.pending {
		switch {
		case ft.stopped:
		case !ft.deadline.After(target):
			due = append(due, ft)
		default:
			remaining = append(remaining, ft)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})

	for _, ft := range due {
		if ft.interval > 0 {
			ft.deadline = ft.deadline.Add(ft.interval)
			remaining = append(remaining, ft)
		} else {
			ft.fired = true
		}
	}

	c.pending = remaining
	return due
}

// WaitForTimers blocks until at least n timers or tickers are pending.
// It closes the race between a goroutine registering a timer and the test
// advancing the clock.
func (c *FakeClock) WaitForTimers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.pendingLocked() < n {
		c.changed.Wait()
	}
}

// PendingCount returns the number of active timers and tickers.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingLocked()
}

func (c *FakeClock) pendingLocked() int {
	n := 0
	for _, ft := range c.pending {
		if !ft.stopped {
			n++
		}
	}
	return n
}
