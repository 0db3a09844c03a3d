package catalog

import (
	"fmt"
	"testing"
)

func makeProducts(n int) []Product {
	out := make([]Product, n)
	for i := range out {
		out[i] = product(i+1, fmt.Sprintf("Product %d", i+1), int64(i+1))
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 5, 5},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}

func TestProject(t *testing.T) {
	items := makeProducts(25)

	tests := []struct {
		name       string
		page, size int
		wantIDs    []int
		wantStart  int
		wantEnd    int
		wantPages  int
	}{
		{"first page", 1, 10, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 1, 10, 3},
		{"last partial page", 3, 10, []int{21, 22, 23, 24, 25}, 21, 25, 3},
		{"beyond end", 4, 10, []int{}, 31, 25, 3},
		{"page size 20", 2, 20, []int{21, 22, 23, 24, 25}, 21, 25, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := Project(items, tt.page, tt.size)
			if !equalIDs(proj.Items, tt.wantIDs...) {
				t.Errorf("Items = %v, want %v", ids(proj.Items), tt.wantIDs)
			}
			if proj.RangeStart != tt.wantStart || proj.RangeEnd != tt.wantEnd {
				t.Errorf("range = %d-%d, want %d-%d", proj.RangeStart, proj.RangeEnd, tt.wantStart, tt.wantEnd)
			}
			if proj.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", proj.TotalPages, tt.wantPages)
			}
			if proj.TotalCount != 25 {
				t.Errorf("TotalCount = %d, want 25", proj.TotalCount)
			}
		})
	}
}

func TestProject_SizeInvariant(t *testing.T) {
	for total := 0; total <= 23; total++ {
		items := makeProducts(total)
		for _, size := range []int{5, 10, 20} {
			pages := TotalPages(total, size)
			for page := 1; page <= pages+1; page++ {
				proj := Project(items, page, size)
				want := 0
				if page <= pages {
					want = max(0, min(size, total-(page-1)*size))
				}
				if len(proj.Items) != want {
					t.Errorf("total=%d size=%d page=%d: got %d items, want %d", total, size, page, len(proj.Items), want)
				}
			}
		}
	}
}

func TestProject_EmptyCollection(t *testing.T) {
	proj := Project(nil, 1, 10)
	if proj.Items == nil || len(proj.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil", proj.Items)
	}
	if !proj.Empty() {
		t.Errorf("Empty() = false for range %d-%d", proj.RangeStart, proj.RangeEnd)
	}
	if proj.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", proj.TotalPages)
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
		prev, next     bool
	}{
		{1, 1, []int{1}, false, false},
		{1, 3, []int{1, 2, 3}, false, true},
		{1, 10, []int{1, 2, 3, 4, 5}, false, true},
		{5, 10, []int{3, 4, 5, 6, 7}, true, true},
		{10, 10, []int{6, 7, 8, 9, 10}, true, false},
		{9, 10, []int{6, 7, 8, 9, 10}, true, true},
	}

	for _, tt := range tests {
		got := PageWindow(tt.current, tt.total)
		if fmt.Sprint(got.Pages) != fmt.Sprint(tt.want) {
			t.Errorf("PageWindow(%d, %d).Pages = %v, want %v", tt.current, tt.total, got.Pages, tt.want)
		}
		if got.HasPrev != tt.prev || got.HasNext != tt.next {
			t.Errorf("PageWindow(%d, %d) prev/next = %v/%v, want %v/%v",
				tt.current, tt.total, got.HasPrev, got.HasNext, tt.prev, tt.next)
		}
	}
}

func TestChangePage(t *testing.T) {
	// 25 items at page size 10 is 3 pages.
	tests := []struct {
		requested, want int
	}{
		{0, 2},
		{4, 2},
		{-1, 2},
		{1, 1},
		{3, 3},
	}
	for _, tt := range tests {
		if got := ChangePage(2, tt.requested, 3); got != tt.want {
			t.Errorf("ChangePage(2, %d, 3) = %d, want %d", tt.requested, got, tt.want)
		}
	}
}
