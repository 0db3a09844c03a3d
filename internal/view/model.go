// Package view turns dashboard state into something a browser can show.
//
// BuildPage is a pure function from a catalog.Snapshot to a PageModel. The
// templ components in internal/web/templates only format these models and
// never touch the dashboard.
package view

import (
	"fmt"
	"strconv"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
)

// ProductsChangedEvent is the HX-Trigger event that makes the table reload itself.
const ProductsChangedEvent = "productsChanged"

// Notice is a one-shot message shown above the table.
type Notice struct {
	Kind    string // "success" or "error"
	Message string
	Action  string
	Code    string
}

// Level returns the notice kind, defaulting to "error".
func (n Notice) Level() string {
	if n.Kind == "" {
		return "error"
	}
	return n.Kind
}

// CreateFormModel is the state of the create form.
type CreateFormModel struct {
	Values      map[string]string
	FieldErrors catalog.FieldErrors
	Notice      *Notice
}

// PageModel is everything the dashboard page renders.
type PageModel struct {
	Rows        []RowModel
	Info        string
	Empty       bool
	Pagination  PaginationModel
	SortHeaders []SortHeader
	SearchTerm  string
	PageSizes   []PageSizeOption
	Page        int
	Detail      *DetailModel
	Loading     bool
	Notice      *Notice
}

// RowModel is one table row.
type RowModel struct {
	ID          int
	Title       string
	Price       string
	Category    string
	Thumbnail   string
	Description string
}

// PageLink is one pagination control.
type PageLink struct {
	Label    string
	Page     int
	Active   bool
	Disabled bool
}

// PaginationModel holds the previous, numbered, and next controls.
type PaginationModel struct {
	Prev  PageLink
	Pages []PageLink
	Next  PageLink
}

// SortHeader is a sortable column header.
type SortHeader struct {
	Field     catalog.SortField
	Label     string
	Active    bool
	Ascending bool
}

// Indicator returns the arrow shown next to the header label.
func (h SortHeader) Indicator() string {
	switch {
	case !h.Active:
		return ""
	case h.Ascending:
		return "▲"
	default:
		return "▼"
	}
}

// PageSizeOption is one entry of the page-size selector.
type PageSizeOption struct {
	Value    int
	Selected bool
}

// DetailModel is the detail view of the selected product.
type DetailModel struct {
	ID          int
	Title       string
	Price       string
	PriceValue  string
	Description string
	Category    string
	Images      []string
	EditMode    bool
	FieldErrors catalog.FieldErrors
	Notice      *Notice
}

var sortColumns = []struct {
	field catalog.SortField
	label string
}{
	{catalog.SortTitle, "Title"},
	{catalog.SortPrice, "Price"},
	{catalog.SortCategory, "Category"},
}

// BuildPage maps a dashboard snapshot to the page model.
func BuildPage(snap catalog.Snapshot) PageModel {
	proj := snap.Projection

	m := PageModel{
		Rows:       make([]RowModel, len(proj.Items)),
		Info:       RangeInfo(proj),
		Empty:      len(proj.Items) == 0,
		Pagination: buildPagination(snap.Pagination),
		SearchTerm: snap.SearchTerm,
		Page:       proj.Page,
		Loading:    snap.Loading,
	}

	for i, p := range proj.Items {
		m.Rows[i] = RowModel{
			ID:          p.ID,
			Title:       p.Title,
			Price:       FormatPrice(p),
			Category:    p.CategoryName(),
			Thumbnail:   p.Thumbnail(),
			Description: p.Description,
		}
	}

	for _, col := range sortColumns {
		m.SortHeaders = append(m.SortHeaders, SortHeader{
			Field:     col.field,
			Label:     col.label,
			Active:    snap.Sort.Field == col.field,
			Ascending: snap.Sort.Ascending,
		})
	}

	for _, size := range snap.PageSizes {
		m.PageSizes = append(m.PageSizes, PageSizeOption{
			Value:    size,
			Selected: size == proj.PageSize,
		})
	}

	if snap.Selected != nil {
		m.Detail = BuildDetail(*snap.Selected, snap.EditMode, nil)
	}

	if snap.LoadError != nil {
		msg := catalog.MapError(snap.LoadError)
		m.Notice = &Notice{Kind: "error", Message: msg.Message, Action: msg.Action, Code: msg.Code}
	}

	return m
}

// BuildDetail maps a product to the detail model. fieldErrs holds inline
// validation messages for a rejected edit.
func BuildDetail(p catalog.Product, editMode bool, fieldErrs catalog.FieldErrors) *DetailModel {
	return &DetailModel{
		ID:          p.ID,
		Title:       p.Title,
		Price:       FormatPrice(p),
		PriceValue:  p.Price.String(),
		Description: p.Description,
		Category:    p.CategoryName(),
		Images:      append([]string(nil), p.Images...),
		EditMode:    editMode,
		FieldErrors: fieldErrs,
	}
}

// RangeInfo returns the "Showing X-Y of N products" line, or a plain
// message when the range is empty.
func RangeInfo(proj catalog.Projection) string {
	if proj.TotalCount == 0 {
		return "No products found"
	}
	if proj.Empty() {
		return fmt.Sprintf("No products on this page (%d total)", proj.TotalCount)
	}
	return fmt.Sprintf("Showing %d-%d of %d products", proj.RangeStart, proj.RangeEnd, proj.TotalCount)
}

// FormatPrice renders a price with a dollar sign.
func FormatPrice(p catalog.Product) string {
	return "$" + p.Price.String()
}

func buildPagination(pg catalog.Pagination) PaginationModel {
	m := PaginationModel{
		Prev: PageLink{Label: "Previous", Page: pg.Current - 1, Disabled: !pg.HasPrev},
		Next: PageLink{Label: "Next", Page: pg.Current + 1, Disabled: !pg.HasNext},
	}
	for _, n := range pg.Pages {
		m.Pages = append(m.Pages, PageLink{
			Label:  strconv.Itoa(n),
			Page:   n,
			Active: n == pg.Current,
		})
	}
	return m
}
