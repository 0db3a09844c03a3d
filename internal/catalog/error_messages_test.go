package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"nil error returns empty", nil, ""},
		{"load failure", fmt.Errorf("%w: %w", ErrFetch, errors.New("GET /products: unexpected status 500")), "API001"},
		{"update failure", fmt.Errorf("%w: %w", ErrUpdateFailed, errors.New("connection refused")), "API002"},
		{"create failure", fmt.Errorf("%w: %w", ErrCreateFailed, errMissingID), "API003"},
		{"busy wins over update failure", fmt.Errorf("%w: %w", ErrUpdateFailed, ErrMutationBusy), "API004"},
		{"update timeout stays an update failure", fmt.Errorf("%w: %w", ErrUpdateFailed, context.DeadlineExceeded), "API002"},
		{"invalid price", &ValidationError{Fields: FieldErrors{"price": priceMessage}}, "VAL002"},
		{"missing field", &ValidationError{Fields: FieldErrors{"title": "title is required"}}, "VAL001"},
		{"page size", fmt.Errorf("%w: 7", ErrInvalidPageSize), "VAL003"},
		{"sort field", fmt.Errorf("%w: %q", ErrInvalidSortField, "color"), "VAL004"},
		{"not found", fmt.Errorf("%w: id 9", ErrProductNotFound), "VIEW001"},
		{"no selection", ErrNoSelection, "VIEW001"},
		{"cancelled", context.Canceled, "REQ001"},
		{"deadline", context.DeadlineExceeded, "REQ002"},
		{"rate limit", errors.New("rate limit exceeded"), "RATE001"},
		{"case insensitive", errors.New("FETCH PRODUCTS FAILED"), "API001"},
		{"unknown error returns default", errors.New("some random internal error"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if tt.err != nil && got.Message == "" {
				t.Error("MapError() returned empty message")
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(ErrFetch)
	if !strings.Contains(got, "Code: API001") || !strings.Contains(got, "reload") {
		t.Errorf("FormatUserError() = %q", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("IsUserFacing(nil) = true")
	}
	if !IsUserFacing(ErrCreateFailed) {
		t.Error("IsUserFacing(ErrCreateFailed) = false")
	}
	if IsUserFacing(errors.New("segfault")) {
		t.Error("IsUserFacing(unknown) = true")
	}
}
