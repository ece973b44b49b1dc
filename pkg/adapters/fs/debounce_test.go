package fs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/scrawlhq/scrawl/pkg/core"
)

func TestDebouncer_StopWaitsForInFlightDelivery(t *testing.T) {
	d := newDebouncer(time.Millisecond)

	started := make(chan struct{})
	release := make(chan struct{})
	var delivered atomic.Bool

	d.add("k", core.Event{Key: "k"}, func(core.Event) {
		close(started)
		<-release
		delivered.Store(true)
	})

	<-started

	stopReturned := make(chan struct{})
	go func() {
		d.stopAndWait(5 * time.Second)
		close(stopReturned)
	}()

	select {
	case <-stopReturned:
		t.Fatal("stopAndWait returned while a delivery was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case <-stopReturned:
	case <-time.After(time.Second):
		t.Fatal("stopAndWait did not return after the delivery finished")
	}
	if !delivered.Load() {
		t.Error("the in-flight delivery should have completed")
	}
}

func TestDebouncer_StopCancelsPendingTimers(t *testing.T) {
	d := newDebouncer(time.Hour)

	fired := make(chan struct{}, 1)
	d.add("k", core.Event{Key: "k"}, func(core.Event) { fired <- struct{}{} })

	done := make(chan struct{})
	go func() {
		d.stopAndWait(time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stopAndWait hung on a timer that never fired")
	}

	select {
	case <-fired:
		t.Error("a cancelled timer must not deliver")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncer_RejectsAfterStop(t *testing.T) {
	d := newDebouncer(time.Millisecond)
	d.stopAndWait(time.Second)

	fired := make(chan struct{}, 1)
	d.add("k", core.Event{Key: "k"}, func(core.Event) { fired <- struct{}{} })

	select {
	case <-fired:
		t.Error("add after stop must be a no-op")
	case <-time.After(20 * time.Millisecond):
	}
}
