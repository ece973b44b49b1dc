package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/scrawlhq/scrawl/pkg/adapters/memory"
	"github.com/scrawlhq/scrawl/pkg/core"
)

var _ core.Store = (*memory.Store)(nil)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if _, ok, err := store.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || value != "v2" {
		t.Fatalf("got value=%q ok=%v err=%v, want v2", value, ok, err)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%2)
			for j := 0; j < 100; j++ {
				_ = store.Set(ctx, key, "v")
				_, _, _ = store.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}
