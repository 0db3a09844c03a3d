package templates

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
	"github.com/JonMunkholm/catalogdash/internal/view"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func pageModel(n, page, size int) view.PageModel {
	products := make([]catalog.Product, n)
	for i := range products {
		products[i] = catalog.Product{
			ID:    i + 1,
			Title: fmt.Sprintf("Product %d", i+1),
			Price: decimal.NewFromInt(int64(10 * (i + 1))),
		}
	}
	return modelFor(products, page, size)
}

func modelFor(products []catalog.Product, page, size int) view.PageModel {
	proj := catalog.Project(products, page, size)
	return view.BuildPage(catalog.Snapshot{
		Projection: proj,
		Pagination: catalog.PageWindow(proj.Page, proj.TotalPages),
		Sort:       catalog.SortState{Field: catalog.SortPrice, Ascending: false},
		PageSizes:  []int{5, 10, 20},
	})
}

func TestTable_EscapesProductText(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Title: `<script>alert("x")</script>`, Price: decimal.NewFromInt(1)},
		{ID: 2, Title: "Lamp", Price: decimal.NewFromInt(2)},
	}

	html := renderString(t, Table(modelFor(products, 1, 10)))

	if strings.Contains(html, "<script>alert") {
		t.Error("title was not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("escaped title missing from %q", html)
	}
	if !strings.Contains(html, `hx-get="/products/2"`) {
		t.Error("row should open the detail view")
	}
	if !strings.Contains(html, "Showing 1-2 of 2 products") {
		t.Error("range info missing")
	}
}

func TestTable_Pagination(t *testing.T) {
	tests := []struct {
		name string
		page int
		want []string
	}{
		{
			name: "middle page",
			page: 2,
			want: []string{
				`hx-post="/products/page/1"`,
				`hx-post="/products/page/3"`,
				`hx-post="/products/sort/price"`,
				`<li class="page-item active">`,
				"▼",
			},
		},
		{
			name: "first page disables previous",
			page: 1,
			want: []string{`<li class="page-item disabled"><span class="page-link">Previous</span>`},
		},
		{
			name: "last page disables next",
			page: 3,
			want: []string{`<li class="page-item disabled"><span class="page-link">Next</span>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderString(t, Table(pageModel(25, tt.page, 10)))
			for _, want := range tt.want {
				if !strings.Contains(html, want) {
					t.Errorf("table missing %q", want)
				}
			}
		})
	}
}

func TestTable_NoticeAndLoading(t *testing.T) {
	m := pageModel(0, 1, 10)
	m.Loading = true
	m.Notice = &view.Notice{Message: "Error loading products", Code: "API001"}

	html := renderString(t, Table(m))
	for _, want := range []string{`class="alert alert-error"`, "(API001)", "Loading products...", "No products found"} {
		if !strings.Contains(html, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestDetail(t *testing.T) {
	p := catalog.Product{ID: 4, Title: "Lamp", Description: "Desk lamp"}

	if html := renderString(t, Detail(nil)); html != "" {
		t.Errorf("Detail(nil) = %q, want empty", html)
	}

	viewHTML := renderString(t, Detail(view.BuildDetail(p, false, nil)))
	if !strings.Contains(viewHTML, "No images") || !strings.Contains(viewHTML, `hx-post="/products/4/edit"`) {
		t.Errorf("view mode markup = %q", viewHTML)
	}

	edit := renderString(t, Detail(view.BuildDetail(p, true, catalog.FieldErrors{"price": "price must be a positive number"})))
	if !strings.Contains(edit, `<form id="editForm" hx-post="/products/4"`) {
		t.Error("edit form missing")
	}
	if !strings.Contains(edit, `id="editPrice" name="price" type="number"`) {
		t.Error("price input missing")
	}
	if !strings.Contains(edit, "price must be a positive number") {
		t.Error("inline field error missing")
	}
}

func TestDetail_GalleryEscapesURLs(t *testing.T) {
	p := catalog.Product{ID: 1, Title: "Mug", Images: []string{"https://img/a.png?x=1&y=2", "javascript:alert(1)"}}

	html := renderString(t, Detail(view.BuildDetail(p, false, nil)))
	if !strings.Contains(html, `src="https://img/a.png?x=1&amp;y=2"`) {
		t.Errorf("image url not escaped: %q", html)
	}
	if strings.Contains(html, "javascript:") {
		t.Error("unsafe url rendered")
	}
}

func TestCreateForm(t *testing.T) {
	html := renderString(t, CreateForm(view.CreateFormModel{
		Values:      map[string]string{"title": "Mug", "images": "https://img/a.png?size=1,2"},
		FieldErrors: catalog.FieldErrors{"categoryId": "categoryId must be greater than 0"},
		Notice:      &view.Notice{Kind: "error", Message: "Failed to create product", Code: "API003"},
	}))

	for _, want := range []string{
		`value="Mug"`,
		`name="images" rows="2" placeholder="One URL per line">https://img/a.png?size=1,2</textarea>`,
		"categoryId must be greater than 0",
		"alert-error",
		"(API003)",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("create form missing %q", want)
		}
	}
}

func TestAlert(t *testing.T) {
	html := renderString(t, Alert(view.Notice{Kind: "success", Message: "Product updated successfully"}))

	if !strings.Contains(html, `class="alert alert-success"`) {
		t.Errorf("alert class = %q", html)
	}
	if strings.Contains(html, "alert-code") || strings.Contains(html, "alert-action") {
		t.Error("empty code and action should not render")
	}
}

func TestPage(t *testing.T) {
	html := renderString(t, Page(pageModel(3, 1, 10)))

	for _, want := range []string{
		"<!DOCTYPE html>",
		`id="products"`,
		`hx-trigger="productsChanged from:body"`,
		`id="detail"`,
		`id="create-form"`,
		`href="/api/export"`,
		`<option value="10" selected>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
