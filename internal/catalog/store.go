package catalog

// store.go implements the Collection Store.
//
// The store keeps two ordered sequences:
//  1. all: the last known server state plus locally applied API results
//  2. filtered: the subset of all matching the search term, reordered
//     only by SetSort
//
// filtered never holds an entry whose ID is absent from all. The two
// sequences hold separate copies, so patches are applied to each independently.
//
// Store is not safe for concurrent use; Dashboard guards it with its mutex.

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Store holds the full product collection and its filtered, sorted view.
type Store struct {
	all      []Product
	filtered []Product
	term     string
	sort     SortState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sort: SortState{Ascending: true}}
}

// Ingest replaces both sequences wholesale with products.
// No validation is performed; optional fields may be missing.
func (s *Store) Ingest(products []Product) {
	s.all = make([]Product, len(products))
	s.filtered = make([]Product, len(products))
	for i, p := range products {
		s.all[i] = p.clone()
		s.filtered[i] = p.clone()
	}
}

// SetSearchTerm recomputes filtered as the members of all whose title
// contains term, compared case-folded. An empty term keeps every product.
// The result keeps the order of all; the sort state is left as is, so the
// next SetSort on the same field still toggles its direction.
func (s *Store) SetSearchTerm(term string) {
	s.term = term
	s.filtered = s.filterAll()
}

func (s *Store) filterAll() []Product {
	needle := fold(s.term)
	out := make([]Product, 0, len(s.all))
	for _, p := range s.all {
		if needle == "" || strings.Contains(fold(p.Title), needle) {
			out = append(out, p.clone())
		}
	}
	return out
}

// SetSort flips the direction when field is already the sort field,
// otherwise switches to field ascending. filtered is then stably re-sorted.
// Descending order inverts the comparator; equal keys keep their relative order.
func (s *Store) SetSort(field SortField) {
	if s.sort.Field == field {
		s.sort.Ascending = !s.sort.Ascending
	} else {
		s.sort = SortState{Field: field, Ascending: true}
	}
	s.sortFiltered()
}

func (s *Store) sortFiltered() {
	cmp := compareBy(s.sort.Field)
	if cmp == nil {
		return
	}
	asc := s.sort.Ascending
	slices.SortStableFunc(s.filtered, func(a, b Product) int {
		if asc {
			return cmp(a, b)
		}
		return cmp(b, a)
	})
}

// compareBy returns the ascending comparator for field, or nil for SortNone.
func compareBy(field SortField) func(a, b Product) int {
	switch field {
	case SortPrice:
		return func(a, b Product) int { return a.Price.Cmp(b.Price) }
	case SortTitle:
		return func(a, b Product) int { return strings.Compare(fold(a.Title), fold(b.Title)) }
	case SortCategory:
		return func(a, b Product) int { return strings.Compare(fold(a.CategoryName()), fold(b.CategoryName())) }
	default:
		return nil
	}
}

// ApplyUpdate replaces the present fields of patch on the entry with the
// given id, in all and in filtered independently. A missing id is a no-op
// for that sequence. The return values report where the entry was found.
func (s *Store) ApplyUpdate(id int, patch ProductPatch) (inAll, inFiltered bool) {
	if i := indexByID(s.all, id); i >= 0 {
		s.all[i] = patch.apply(s.all[i])
		inAll = true
	}
	if i := indexByID(s.filtered, id); i >= 0 {
		s.filtered[i] = patch.apply(s.filtered[i])
		inFiltered = true
	}
	return inAll, inFiltered
}

// Prepend inserts p at the front of both sequences, whether or not it
// matches the current search term.
func (s *Store) Prepend(p Product) {
	s.all = slices.Insert(s.all, 0, p.clone())
	s.filtered = slices.Insert(s.filtered, 0, p.clone())
}

// Lookup returns a copy of the product with id from all.
func (s *Store) Lookup(id int) (Product, bool) {
	i := indexByID(s.all, id)
	if i < 0 {
		return Product{}, false
	}
	return s.all[i].clone(), true
}

// All returns a copy of the full collection.
func (s *Store) All() []Product {
	return cloneProducts(s.all)
}

// Filtered returns a copy of the filtered view.
func (s *Store) Filtered() []Product {
	return cloneProducts(s.filtered)
}

// FilteredLen returns the number of products in the filtered view.
func (s *Store) FilteredLen() int {
	return len(s.filtered)
}

// Len returns the number of products in the full collection.
func (s *Store) Len() int {
	return len(s.all)
}

// SearchTerm returns the active search term.
func (s *Store) SearchTerm() string {
	return s.term
}

// Sort returns the active sort state.
func (s *Store) Sort() SortState {
	return s.sort
}

func indexByID(products []Product, id int) int {
	return slices.IndexFunc(products, func(p Product) bool { return p.ID == id })
}

func cloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.clone()
	}
	return out
}

// fold returns s case-folded for caseless comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}
