// Package catalog implements the client-side instant filter over a fetched
// product page: matching is case-insensitive and ignores accents, since the
// catalog carries French product names ("Boubou brodé", "Écharpe").
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// foldChain decomposes, strips combining marks and recomposes, turning
// "brodé" into "brode".
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases and removes diacritics for comparison.
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		// Malformed input still filters, just accent-sensitively.
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// Matches reports whether the product's name or SKU contains the query,
// ignoring case and accents. An empty query matches everything.
func Matches(p entity.Product, query string) bool {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(Fold(p.Name), q) || strings.Contains(Fold(p.SKU), q)
}

// Filter returns the products matching the query, preserving order.
func Filter(products []entity.Product, query string) []entity.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}
	var matched []entity.Product
	for _, p := range products {
		if Matches(p, query) {
			matched = append(matched, p)
		}
	}
	return matched
}
