package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestUpdateForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		form       UpdateForm
		wantFields []string
	}{
		{
			name: "valid",
			form: UpdateForm{Title: " Lamp ", Price: "19.99", Description: "Desk lamp"},
		},
		{
			name:       "missing title",
			form:       UpdateForm{Title: "   ", Price: "5", Description: "x"},
			wantFields: []string{"title"},
		},
		{
			name:       "zero price",
			form:       UpdateForm{Title: "Lamp", Price: "0", Description: "x"},
			wantFields: []string{"price"},
		},
		{
			name:       "negative price",
			form:       UpdateForm{Title: "Lamp", Price: "-3", Description: "x"},
			wantFields: []string{"price"},
		},
		{
			name:       "non-numeric price",
			form:       UpdateForm{Title: "Lamp", Price: "cheap", Description: "x"},
			wantFields: []string{"price"},
		},
		{
			name:       "everything missing",
			form:       UpdateForm{},
			wantFields: []string{"title", "price", "description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := tt.form.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				if in.Title != "Lamp" {
					t.Errorf("Title = %q, want trimmed %q", in.Title, "Lamp")
				}
				if !in.Price.Equal(decimal.RequireFromString("19.99")) {
					t.Errorf("Price = %s, want 19.99", in.Price)
				}
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("errors.Is(err, ErrValidation) = false")
			}
			if len(ve.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want keys %v", ve.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if ve.Fields[f] == "" {
					t.Errorf("missing message for %q in %v", f, ve.Fields)
				}
			}
		})
	}
}

func TestCreateForm_Validate(t *testing.T) {
	valid := CreateForm{
		Title:       "Mug",
		Price:       "10",
		Description: "Big mug",
		CategoryID:  2,
		Images:      []string{"https://img/mug.png", "  "},
	}

	in, err := valid.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(in.Images) != 1 {
		t.Errorf("Images = %v, want blank entry dropped", in.Images)
	}

	tests := []struct {
		name    string
		mutate  func(*CreateForm)
		field   string
		message string
	}{
		{"no category", func(f *CreateForm) { f.CategoryID = 0 }, "categoryId", "categoryId must be greater than 0"},
		{"no images", func(f *CreateForm) { f.Images = []string{" "} }, "images", "at least one image URL is required"},
		{"bad image url", func(f *CreateForm) { f.Images = []string{"not a url"} }, "images", "images must contain valid URLs"},
		{"missing description", func(f *CreateForm) { f.Description = "" }, "description", "description is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			form.Images = append([]string(nil), valid.Images...)
			tt.mutate(&form)

			_, err := form.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if got := ve.Fields[tt.field]; got != tt.message {
				t.Errorf("Fields[%q] = %q, want %q", tt.field, got, tt.message)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: FieldErrors{
		"title": "title is required",
		"price": "price must be a positive number",
	}}
	want := "validation failed: price must be a positive number; title is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
