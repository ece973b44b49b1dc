// Package scrawl is the composition root for the scrawl note store.
//
// It connects the core note logic (Domain Layer) with the storage adapters
// (Persistence Layer). The domain owns an ordered collection of markdown-ish
// notes (tagged, searchable, starrable, archivable) and persists the whole
// collection through a small key-value port after every mutation. The default
// adapter keeps the collection in a single JSON file with atomic writes; a
// memory adapter is available for tests and embedding.
//
// Usage:
//
//	repo, err := scrawl.New(ctx, "~/notes",
//		scrawl.WithLogger(logger),
//	)
//
//	note, err := repo.Create(ctx)
//	err = repo.Update(ctx, note.ID, scrawl.Patch{Content: &text})
//
//	visible := scrawl.Filter(repo.All(), scrawl.SelectorAll, "coffee")
package scrawl
