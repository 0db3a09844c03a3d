package catalog

// validation.go checks edit and create form submissions before any network call.
//
// Struct tags drive go-playground/validator; the price field is additionally
// parsed as a decimal and must be strictly positive. All field problems are
// collected into one *ValidationError keyed by form field name.

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name instead of the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// UpdateForm is the edit form submitted for an existing product.
type UpdateForm struct {
	Title       string `form:"title" validate:"required"`
	Price       string `form:"price" validate:"required"`
	Description string `form:"description" validate:"required"`
}

// CreateForm is the form submitted for a new product.
type CreateForm struct {
	Title       string   `form:"title" validate:"required"`
	Price       string   `form:"price" validate:"required"`
	Description string   `form:"description" validate:"required"`
	CategoryID  int      `form:"categoryId" validate:"gt=0"`
	Images      []string `form:"images" validate:"min=1,dive,required,url"`
}

// Validate trims the form and returns the API input, or a *ValidationError.
func (f UpdateForm) Validate() (UpdateInput, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.Price = strings.TrimSpace(f.Price)
	f.Description = strings.TrimSpace(f.Description)

	fields := structErrors(f)
	price, ok := parsePrice(f.Price)
	if !ok {
		fields["price"] = priceMessage
	}
	if len(fields) > 0 {
		return UpdateInput{}, &ValidationError{Fields: fields}
	}

	return UpdateInput{
		Title:       f.Title,
		Price:       price,
		Description: f.Description,
	}, nil
}

// Validate trims the form and returns the API input, or a *ValidationError.
// Blank image entries are dropped before the at-least-one check.
func (f CreateForm) Validate() (CreateInput, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.Price = strings.TrimSpace(f.Price)
	f.Description = strings.TrimSpace(f.Description)

	images := make([]string, 0, len(f.Images))
	for _, img := range f.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	f.Images = images

	fields := structErrors(f)
	price, ok := parsePrice(f.Price)
	if !ok {
		fields["price"] = priceMessage
	}
	if len(fields) > 0 {
		return CreateInput{}, &ValidationError{Fields: fields}
	}

	return CreateInput{
		Title:       f.Title,
		Price:       price,
		Description: f.Description,
		CategoryID:  f.CategoryID,
		Images:      images,
	}, nil
}

const priceMessage = "price must be a positive number"

func parsePrice(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// structErrors runs the tag validator and converts failures to FieldErrors.
// Element errors for a slice ("images[0]") are reported under the slice name.
func structErrors(form any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if err := validate.Struct(form); errors.As(err, &ve) {
		for _, fe := range ve {
			name, _, _ := strings.Cut(fe.Field(), "[")
			if _, seen := out[name]; seen {
				continue
			}
			out[name] = messageForTag(name, fe.Tag())
		}
	}
	return out
}

func messageForTag(field, tag string) string {
	switch {
	case field == "images" && tag == "min":
		return "at least one image URL is required"
	case tag == "url":
		return field + " must contain valid URLs"
	case tag == "gt":
		return field + " must be greater than 0"
	default:
		return field + " is required"
	}
}
