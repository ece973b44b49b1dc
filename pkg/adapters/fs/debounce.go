package fs

import (
	"sync"
	"time"

	"github.com/scrawlhq/scrawl/pkg/core"
)

// debouncer coalesces bursts of events per key. Editors and atomic renames
// produce several filesystem events for one logical change; only the last
// event within the window is delivered.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	pending sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fn(event) after the debounce window, resetting any pending
// delivery for the same key.
func (d *debouncer) add(key string, event core.Event, fn func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if timer, ok := d.timers[key]; ok {
		// Stop reports true only when the callback has not started,
		// so its pending slot must be released here.
		if timer.Stop() {
			d.pending.Done()
		}
	}

	d.pending.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		defer d.pending.Done()

		d.mu.Lock()
		if d.timers[key] == timer {
			delete(d.timers, key)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			fn(event)
		}
	})
	d.timers[key] = timer
}

// stopAndWait cancels all pending deliveries, rejects new ones, and blocks
// until callbacks already running have finished, up to timeout. Resources
// the callbacks touch may only be torn down after it returns.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, timer := range d.timers {
		if timer.Stop() {
			d.pending.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
