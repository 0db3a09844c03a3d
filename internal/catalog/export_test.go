package catalog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func encodeString(products []Product) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, products); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func TestEncode(t *testing.T) {
	products := []Product{
		{
			ID:          1,
			Title:       `He said "hi"`,
			Price:       decimal.RequireFromString("12.5"),
			Description: "Soft, warm",
			Category:    &Category{Name: "Clothes"},
			Images:      []string{"https://img/1.png", "https://img/2.png"},
		},
		{ID: 2, Title: "Lamp", Price: decimal.NewFromInt(30), Description: "Desk lamp"},
	}

	got, err := encodeString(products)
	if err != nil {
		t.Fatalf("encodeString() error = %v", err)
	}

	want := "ID,Title,Price,Category,Description,Image URL\n" +
		`1,"He said ""hi""",12.5,Clothes,"Soft, warm",https://img/1.png` + "\n" +
		"2,Lamp,30,N/A,Desk lamp,\n"
	if got != want {
		t.Errorf("encodeString() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncode_QuotesTitleWithQuotes(t *testing.T) {
	got, err := encodeString([]Product{{ID: 3, Title: `He said "hi"`}})
	if err != nil {
		t.Fatalf("encodeString() error = %v", err)
	}
	if !strings.Contains(got, `"He said ""hi"""`) {
		t.Errorf("title not escaped: %q", got)
	}
}

func TestEncode_HeaderOnlyForEmptyPage(t *testing.T) {
	got, err := encodeString(nil)
	if err != nil {
		t.Fatalf("encodeString() error = %v", err)
	}
	if got != "ID,Title,Price,Category,Description,Image URL\n" {
		t.Errorf("encodeString(nil) = %q", got)
	}
}

func TestEncode_KeepsInputOrder(t *testing.T) {
	got, err := encodeString([]Product{product(3, "c", 1), product(1, "a", 1), product(2, "b", 1)})
	if err != nil {
		t.Fatalf("encodeString() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for i, prefix := range []string{"3,", "1,", "2,"} {
		if !strings.HasPrefix(lines[i+1], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i+1, lines[i+1], prefix)
		}
	}
}

func TestExportFilename(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*60*60)
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)

	if got := ExportFilename(2, now); got != "products_page_2_2024-03-10.csv" {
		t.Errorf("ExportFilename() = %q", got)
	}
}
