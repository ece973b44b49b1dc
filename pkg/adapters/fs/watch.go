package fs

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/scrawlhq/scrawl/pkg/core"
)

const (
	watchDebounce = 50 * time.Millisecond
	watchDrain    = 5 * time.Second
	eventBuffer   = 16
)

// Watch observes the store directory and emits an event for every key
// matching pattern that is touched outside this process. The channel closes
// when ctx is cancelled. Temporary atomic-write files are ignored.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	events := make(chan core.Event, eventBuffer)
	debouncer := newDebouncer(watchDebounce)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		// In-flight debounced deliveries must finish before the channel
		// closes; the defers run in reverse order.
		defer close(events)
		defer watcher.Close()
		defer debouncer.stopAndWait(watchDrain)

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return fmt.Errorf("watcher events channel closed")
				}
				s.handleEvent(ctx, event, pattern, debouncer, events)

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return fmt.Errorf("watcher errors channel closed")
				}
				s.config.Logger.Error("fsnotify error", "error", wErr)
				if s.config.ErrorHandler != nil {
					s.config.ErrorHandler(wErr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(fmt.Errorf("watcher failed: %w", err))
		} else {
			s.config.Logger.Error("watcher failed", "error", err)
		}
	}))

	return events, nil
}

// handleEvent filters, maps and debounces a single filesystem event.
func (s *Store) handleEvent(ctx context.Context, event fsnotify.Event, pattern string, deb *debouncer, out chan<- core.Event) {
	key, ok := s.keyFromPath(event.Name)
	if !ok {
		return
	}

	if pattern != "" {
		match, err := doublestar.Match(pattern, key)
		if err != nil || !match {
			return
		}
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	s.config.Logger.Debug("store event", "key", key, "type", eType)

	deb.add(key, core.Event{Type: eType, Key: key, Timestamp: time.Now().Unix()}, func(e core.Event) {
		// The channel can close while a delivery is racing shutdown;
		// drop the event rather than panic in a detached goroutine.
		defer func() {
			_ = recover()
		}()

		select {
		case out <- e:
		case <-ctx.Done():
		}
	})
}

// mapEventType translates fsnotify ops to store event types.
// Chmod-only events are noise and map to the empty type.
func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}
