package scrawl_test

import (
	"context"
	"fmt"
	"log"

	"github.com/scrawlhq/scrawl"
	"github.com/scrawlhq/scrawl/pkg/adapters/memory"
)

// Example shows the library embedded with the in-memory store: create a note,
// tag it by writing hashtags into its content, and filter the collection.
func Example() {
	ctx := context.Background()

	repo, err := scrawl.New(ctx, "", scrawl.WithStore(memory.NewStore()))
	if err != nil {
		log.Fatal(err)
	}

	note, err := repo.Create(ctx)
	if err != nil {
		log.Fatal(err)
	}

	content := "# Grocery run\n\n- milk\n- eggs\n\n#errands"
	if err := repo.Update(ctx, note.ID, scrawl.Patch{Content: &content}); err != nil {
		log.Fatal(err)
	}

	for _, n := range scrawl.Filter(repo.All(), "errands", "") {
		fmt.Println(n.Title, n.Tags)
	}

	// Output:
	// Grocery run [errands]
}
