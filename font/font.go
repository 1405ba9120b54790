// Package font holds the curated catalog of heading/body font pairings.
package font

import (
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrUnknownPair is returned when a pair cannot be resolved from the catalog.
var ErrUnknownPair = errors.New("unknown font pair")

// Pair is a heading and body font. It is a value type: every copy is independent.
type Pair struct {
	Heading string `json:"heading" jsonschema:"minLength=1"`
	Body    string `json:"body" jsonschema:"minLength=1"`
}

func (p Pair) String() string {
	return p.Heading + " / " + p.Body
}

// URL is the Google Fonts stylesheet that loads both families.
func (p Pair) URL() string {
	return fmt.Sprintf(
		"https://fonts.googleapis.com/css2?family=%s:wght@400;700&family=%s:wght@400;600&display=swap",
		family(p.Heading),
		family(p.Body),
	)
}

func family(name string) string {
	return strings.Join(strings.Fields(name), "+")
}

// Entry is a catalog pair with its display category.
type Entry struct {
	Pair
	Category string
}

var catalog = []Entry{
	{Pair{"Playfair Display", "Lato"}, "Serif/Sans"},
	{Pair{"Montserrat", "Open Sans"}, "Sans/Sans"},
	{Pair{"Oswald", "Roboto"}, "Condensed/Sans"},
	{Pair{"Merriweather", "Source Sans 3"}, "Serif/Sans"},
	{Pair{"Space Grotesk", "Inter"}, "Modern/Tech"},
	{Pair{"Abril Fatface", "Poppins"}, "Display/Geometric"},
	{Pair{"Lora", "Mulish"}, "Serif/Sans"},
	{Pair{"Raleway", "Roboto Slab"}, "Geometric/Serif"},
	{Pair{"Bebas Neue", "Montserrat"}, "Display/Geometric"},
	{Pair{"Syne", "Inter"}, "Unique/Clean"},
}

// Default is the pair shown at startup.
var Default = catalog[4].Pair

// Catalog returns a copy of the curated entries in catalog order.
func Catalog() []Entry {
	return append([]Entry(nil), catalog...)
}

// Len is the number of catalog entries.
func Len() int {
	return len(catalog)
}

// At returns the pair at catalog index i.
func At(i int) Pair {
	return catalog[i].Pair
}

// Find looks a pair up by its heading font, case-insensitively.
func Find(heading string) mo.Option[Entry] {
	entry, ok := lo.Find(catalog, func(e Entry) bool {
		return strings.EqualFold(e.Heading, heading)
	})
	if !ok {
		return mo.None[Entry]()
	}
	return mo.Some(entry)
}

// Resolve returns the pair for heading or an error suggesting the closest catalog heading.
func Resolve(heading string) (Pair, error) {
	if entry, ok := Find(heading).Get(); ok {
		return entry.Pair, nil
	}

	closest := lo.MinBy(catalog, func(a, b Entry) bool {
		return distance(heading, a.Heading) < distance(heading, b.Heading)
	})
	return Pair{}, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownPair, heading, closest.Heading)
}

func distance(a, b string) int {
	return levenshtein.Distance(strings.ToLower(a), strings.ToLower(b))
}

// Filter returns the entries whose heading, body or category fuzzily match query.
// An empty query matches everything.
func Filter(query string) []Entry {
	if query == "" {
		return Catalog()
	}

	return lo.Filter(catalog, func(e Entry, _ int) bool {
		return fuzzy.MatchFold(query, e.Heading) ||
			fuzzy.MatchFold(query, e.Body) ||
			fuzzy.MatchFold(query, e.Category)
	})
}
