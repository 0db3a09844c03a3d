package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CategoryPlaceholder is shown when a product has no category.
const CategoryPlaceholder = "N/A"

// ThumbnailPlaceholder is the image shown in table rows for products without images.
const ThumbnailPlaceholder = "https://via.placeholder.com/50"

// Category is the optional category reference carried by a product.
type Category struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Product is a catalog entry as returned by the product API.
// ID is assigned by the API and never changed locally.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    *Category       `json:"category,omitempty"`
	Images      []string        `json:"images"`
}

// MarshalJSON encodes Price as a JSON number, the shape the product API uses.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int         `json:"id"`
		Title       string      `json:"title"`
		Price       json.Number `json:"price"`
		Description string      `json:"description"`
		Category    *Category   `json:"category,omitempty"`
		Images      []string    `json:"images"`
	}{p.ID, p.Title, json.Number(p.Price.String()), p.Description, p.Category, p.Images})
}

// CategoryName returns the category name, or CategoryPlaceholder when the
// product has no category or the category has no name.
func (p Product) CategoryName() string {
	if p.Category == nil || p.Category.Name == "" {
		return CategoryPlaceholder
	}
	return p.Category.Name
}

// FirstImage returns the first image URL, or "" when there are none.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Thumbnail returns the first image URL, or ThumbnailPlaceholder.
func (p Product) Thumbnail() string {
	if img := p.FirstImage(); img != "" {
		return img
	}
	return ThumbnailPlaceholder
}

// clone returns a copy that shares no slices or pointers with p.
func (p Product) clone() Product {
	out := p
	if p.Category != nil {
		c := *p.Category
		out.Category = &c
	}
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	return out
}

// ProductPatch holds the fields of a product that should replace local values.
// A nil field is absent and leaves the local value untouched.
// It decodes directly from an API response body, so fields the API omits stay nil.
type ProductPatch struct {
	Title       *string          `json:"title,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	Images      *[]string        `json:"images,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (pp ProductPatch) IsEmpty() bool {
	return pp.Title == nil && pp.Price == nil && pp.Description == nil &&
		pp.Category == nil && pp.Images == nil
}

// apply returns p with every present patch field replaced. ID is never touched.
func (pp ProductPatch) apply(p Product) Product {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Category != nil {
		c := *pp.Category
		p.Category = &c
	}
	if pp.Images != nil {
		p.Images = append([]string(nil), (*pp.Images)...)
	}
	return p
}

// SortField names a sortable column.
type SortField string

const (
	SortNone     SortField = ""
	SortTitle    SortField = "title"
	SortPrice    SortField = "price"
	SortCategory SortField = "category"
)

// ParseSortField converts a column name to a SortField.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortTitle, SortPrice, SortCategory:
		return f, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", ErrInvalidSortField, s)
	}
}

// SortState is the active sort column and direction.
type SortState struct {
	Field     SortField `json:"field"`
	Ascending bool      `json:"ascending"`
}

// Active reports whether a sort column is set.
func (s SortState) Active() bool {
	return s.Field != SortNone
}
