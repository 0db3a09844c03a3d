package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// ExportColumns is the header row of a product export.
var ExportColumns = []string{"ID", "Title", "Price", "Category", "Description", "Image URL"}

// Encode writes products as CSV in input order, preceded by ExportColumns.
// Fields containing a comma, quote, or line break are quoted and embedded
// quotes doubled. Lines end in LF.
func Encode(w io.Writer, products []Product) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range products {
		record := []string{
			strconv.Itoa(p.ID),
			p.Title,
			p.Price.String(),
			p.CategoryName(),
			p.Description,
			p.FirstImage(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write product %d: %w", p.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename returns products_page_<page>_<YYYY-MM-DD>.csv using the UTC date of now.
func ExportFilename(page int, now time.Time) string {
	return fmt.Sprintf("products_page_%d_%s.csv", page, now.UTC().Format(time.DateOnly))
}
