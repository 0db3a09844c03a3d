package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func product(id int, title string, price int64) Product {
	return Product{ID: id, Title: title, Price: decimal.NewFromInt(price)}
}

func withCategory(p Product, name string) Product {
	p.Category = &Category{Name: name}
	return p
}

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(got []Product, want ...int) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func TestStore_SortTitleToggles(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(1, "Zeta", 10), product(2, "Alpha", 5)})

	s.SetSort(SortTitle)
	if !equalIDs(s.Filtered(), 2, 1) {
		t.Fatalf("after first sort, order = %v, want [2 1]", ids(s.Filtered()))
	}
	if st := s.Sort(); st.Field != SortTitle || !st.Ascending {
		t.Errorf("sort state = %+v, want title ascending", st)
	}

	s.SetSort(SortTitle)
	if !equalIDs(s.Filtered(), 1, 2) {
		t.Fatalf("after second sort, order = %v, want [1 2]", ids(s.Filtered()))
	}
	if s.Sort().Ascending {
		t.Error("second sort on the same field should be descending")
	}
}

func TestStore_SortNewFieldResetsAscending(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(1, "B", 30), product(2, "A", 10), product(3, "C", 20)})

	s.SetSort(SortTitle)
	s.SetSort(SortTitle) // title descending
	s.SetSort(SortPrice)

	if st := s.Sort(); st.Field != SortPrice || !st.Ascending {
		t.Errorf("sort state = %+v, want price ascending", st)
	}
	if !equalIDs(s.Filtered(), 2, 3, 1) {
		t.Errorf("order = %v, want [2 3 1]", ids(s.Filtered()))
	}
}

func TestStore_SortPriceReverses(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(1, "a", 30), product(2, "b", 10), product(3, "c", 20), product(4, "d", 40)})

	s.SetSort(SortPrice)
	asc := ids(s.Filtered())
	s.SetSort(SortPrice)
	desc := ids(s.Filtered())

	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("descending %v is not the reverse of ascending %v", desc, asc)
		}
	}
}

func TestStore_SortStableOnEqualKeys(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{
		product(1, "x", 10),
		product(2, "y", 5),
		product(3, "z", 10),
		product(4, "w", 5),
	})

	s.SetSort(SortPrice)
	if !equalIDs(s.Filtered(), 2, 4, 1, 3) {
		t.Errorf("ascending = %v, want [2 4 1 3]", ids(s.Filtered()))
	}

	s.SetSort(SortPrice)
	// Equal keys keep their relative order under the inverted comparator.
	if !equalIDs(s.Filtered(), 1, 3, 2, 4) {
		t.Errorf("descending = %v, want [1 3 2 4]", ids(s.Filtered()))
	}
}

func TestStore_SortCategoryUsesPlaceholder(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{
		withCategory(product(1, "a", 1), "Shoes"),
		product(2, "b", 1),
		withCategory(product(3, "c", 1), "Electronics"),
	})

	s.SetSort(SortCategory)
	// "Electronics" < "N/A" < "Shoes"
	if !equalIDs(s.Filtered(), 3, 2, 1) {
		t.Errorf("order = %v, want [3 2 1]", ids(s.Filtered()))
	}
}

func TestStore_SetSearchTerm(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int
	}{
		{"empty term keeps all in order", "", []int{1, 2, 3, 4}},
		{"case-insensitive match", "SHIRT", []int{1, 3}},
		{"substring match", "amp", []int{2}},
		{"no match", "sofa", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Ingest([]Product{
				product(1, "Blue Shirt", 20),
				product(2, "Desk Lamp", 15),
				product(3, "Red shirt", 25),
				product(4, "Mug", 5),
			})

			s.SetSearchTerm(tt.term)
			if !equalIDs(s.Filtered(), tt.want...) {
				t.Fatalf("filtered = %v, want %v", ids(s.Filtered()), tt.want)
			}

			all := make(map[int]bool)
			for _, p := range s.All() {
				all[p.ID] = true
			}
			for _, p := range s.Filtered() {
				if !all[p.ID] {
					t.Errorf("filtered id %d not in all", p.ID)
				}
				if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(tt.term)) {
					t.Errorf("title %q does not contain %q", p.Title, tt.term)
				}
			}
		})
	}
}

func TestStore_SearchRestoresCollectionOrder(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(1, "Zeta", 10), product(2, "Alpha", 5)})

	s.SetSort(SortTitle)
	if !equalIDs(s.Filtered(), 2, 1) {
		t.Fatalf("sorted = %v, want [2 1]", ids(s.Filtered()))
	}

	s.SetSearchTerm("")
	if !equalIDs(s.Filtered(), 1, 2) {
		t.Errorf("cleared search = %v, want collection order [1 2]", ids(s.Filtered()))
	}
	if st := s.Sort(); st.Field != SortTitle || !st.Ascending {
		t.Errorf("sort state changed by search: %+v", st)
	}

	// The kept state means the next click on the same column toggles.
	s.SetSort(SortTitle)
	if !equalIDs(s.Filtered(), 1, 2) {
		t.Errorf("toggled = %v, want descending [1 2]", ids(s.Filtered()))
	}
}

func TestStore_SearchKeepsCollectionOrder(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(1, "Shirt B", 30), product(2, "Lamp", 10), product(3, "Shirt A", 20)})

	s.SetSort(SortPrice)
	s.SetSearchTerm("shirt")

	if !equalIDs(s.Filtered(), 1, 3) {
		t.Errorf("filtered = %v, want [1 3]", ids(s.Filtered()))
	}
}

func TestStore_ApplyUpdate(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(5, "Other", 20), product(7, "Target", 50)})

	price := decimal.NewFromInt(99)
	inAll, inFiltered := s.ApplyUpdate(7, ProductPatch{Price: &price})
	if !inAll || !inFiltered {
		t.Fatalf("ApplyUpdate found = (%v, %v), want (true, true)", inAll, inFiltered)
	}

	for _, seq := range [][]Product{s.All(), s.Filtered()} {
		for _, p := range seq {
			switch p.ID {
			case 7:
				if !p.Price.Equal(price) {
					t.Errorf("id 7 price = %s, want 99", p.Price)
				}
				if p.Title != "Target" {
					t.Errorf("id 7 title = %q, want unchanged", p.Title)
				}
			case 5:
				if !p.Price.Equal(decimal.NewFromInt(20)) {
					t.Errorf("id 5 price = %s, want unchanged 20", p.Price)
				}
			}
		}
	}
}

func TestStore_ApplyUpdateOnlyInAll(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(1, "Lamp", 10), product(2, "Mug", 5)})
	s.SetSearchTerm("mug")

	title := "Floor Lamp"
	inAll, inFiltered := s.ApplyUpdate(1, ProductPatch{Title: &title})
	if !inAll || inFiltered {
		t.Fatalf("ApplyUpdate found = (%v, %v), want (true, false)", inAll, inFiltered)
	}
	if p, _ := s.Lookup(1); p.Title != "Floor Lamp" {
		t.Errorf("all title = %q, want Floor Lamp", p.Title)
	}
	// The filter is not re-evaluated until the next search.
	if !equalIDs(s.Filtered(), 2) {
		t.Errorf("filtered = %v, want [2]", ids(s.Filtered()))
	}
}

func TestStore_ApplyUpdateMissingID(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(1, "Lamp", 10)})

	title := "x"
	inAll, inFiltered := s.ApplyUpdate(42, ProductPatch{Title: &title})
	if inAll || inFiltered {
		t.Errorf("missing id reported found: (%v, %v)", inAll, inFiltered)
	}
	if p, _ := s.Lookup(1); p.Title != "Lamp" {
		t.Errorf("unrelated product changed: %+v", p)
	}
}

func TestStore_PrependIgnoresSearch(t *testing.T) {
	s := NewStore()
	s.Ingest([]Product{product(1, "Lamp", 10)})
	s.SetSearchTerm("lamp")

	s.Prepend(product(9, "Mug", 3))

	if !equalIDs(s.All(), 9, 1) {
		t.Errorf("all = %v, want [9 1]", ids(s.All()))
	}
	if !equalIDs(s.Filtered(), 9, 1) {
		t.Errorf("filtered = %v, want [9 1]", ids(s.Filtered()))
	}
}

func TestStore_IngestCopiesInput(t *testing.T) {
	in := []Product{{ID: 1, Title: "Lamp", Images: []string{"a"}}}
	s := NewStore()
	s.Ingest(in)

	in[0].Title = "changed"
	in[0].Images[0] = "b"

	p, ok := s.Lookup(1)
	if !ok {
		t.Fatal("Lookup(1) not found")
	}
	if p.Title != "Lamp" || p.Images[0] != "a" {
		t.Errorf("store shares memory with input: %+v", p)
	}
}
