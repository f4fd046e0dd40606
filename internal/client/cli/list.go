package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tfernandez-dev/menumap/internal/client/filter"
	"github.com/tfernandez-dev/menumap/internal/client/models"
)

func formatRestaurant(r models.Restaurant) string {
	s := r.Name
	if r.Category != "" {
		s += fmt.Sprintf(" [%s]", r.Category)
	}
	if r.Address != "" {
		s += " — " + r.Address
	}
	if r.MenuLink != "" {
		s += "  " + r.MenuLink
	}
	return s
}

func renderList(items []models.Restaurant) {
	if len(items) == 0 {
		printlnFn("No restaurants.")
		return
	}
	for _, r := range items {
		printlnFn(" ", formatRestaurant(r))
	}
}

// List refreshes the directory from the server and prints it. A failed
// fetch prints the error and falls back to the items already held, which
// may come from the local snapshot.
func (a *App) List(ctx context.Context) error {
	if err := a.restaurants.FetchAll(ctx); err != nil {
		printlnFn(a.restaurants.State().Err())
	}
	renderList(a.restaurants.State().Items())
	return nil
}

// Search refreshes the directory, then prompts for a text query and a
// category and prints the matching subset. Matching is accent- and
// case-insensitive; an empty query with no category shows everything.
func (a *App) Search(ctx context.Context) error {
	if err := a.restaurants.FetchAll(ctx); err != nil {
		printlnFn(a.restaurants.State().Err())
	}

	query, err := getSimpleText(a.reader, "Search text (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Category %v (empty for all)", models.Categories)
	cat, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}

	category := models.CategoryAll
	if cat != "" {
		category = models.Category(cat)
	}

	renderList(filter.Apply(a.restaurants.State().Items(), query, category))
	return nil
}

// Filter prompts for a category and prints the matching subset of the items
// already held. Unlike Search it does not refetch: it narrows whatever the
// last fetch (or the snapshot) produced.
func (a *App) Filter(ctx context.Context) error {
	prompt := fmt.Sprintf("Category %v (empty for all)", models.Categories)
	cat, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}

	category := models.CategoryAll
	if cat != "" {
		category = models.Category(cat)
	}

	renderList(filter.Apply(a.restaurants.State().Items(), "", category))
	return nil
}
