// Package filter implements the pure search/category filter applied to the
// restaurant list. It is re-derived on every keystroke or category change
// and never stored.
package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tfernandez-dev/menumap/internal/client/models"
)

// stripMarks decomposes text and removes combining marks, so "Bodegón"
// compares equal to "bodegon".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s and strips diacritics. Falls back to plain
// lower-casing if the transform fails on malformed input.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Apply keeps the records whose normalized name contains the normalized
// query (empty query matches everything) and whose normalized category
// equals the normalized selected category, unless category is the "all"
// sentinel. Records without a category never match a specific category.
// The result is a stable sub-sequence of items.
func Apply(items []models.Restaurant, query string, category models.Category) []models.Restaurant {
	q := Normalize(query)
	cat := Normalize(string(category))
	all := cat == string(models.CategoryAll) || cat == ""

	out := make([]models.Restaurant, 0, len(items))
	for _, item := range items {
		if q != "" && !strings.Contains(Normalize(item.Name), q) {
			continue
		}
		if !all {
			if item.Category == "" || Normalize(item.Category) != cat {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
