package platform

import (
	"context"

	"github.com/scrawlhq/scrawl/pkg/adapters/fs"
	"github.com/scrawlhq/scrawl/pkg/core"
)

// New wires the storage adapter and the note repository together and loads
// the collection. The dir argument is where the filesystem store keeps its
// files; it is ignored when a custom store is injected.
func New(ctx context.Context, dir string, opts ...Option) (*core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		store = fs.NewStore(fs.Config{
			Dir:          dir,
			AutoInit:     o.autoInit,
			MustExist:    o.mustExist,
			Logger:       o.logger,
			ErrorHandler: o.errorHandler,
		})
	}

	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}

	repo, err := core.NewRepository(core.Config{
		Store:  store,
		Key:    o.key,
		Logger: o.logger,
		Clock:  o.clock,
	})
	if err != nil {
		return nil, err
	}

	if err := repo.Load(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}
