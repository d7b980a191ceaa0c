package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"balance_insight/pkg/models"
)

// ReadHTML extracts the largest table from an HTML document. Spreadsheet
// exports and statement pages often wrap the data table in layout
// tables, so cell count decides which one is the balance sheet.
func ReadHTML(r io.Reader) (*models.RawTable, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	var best *goquery.Selection
	bestCells := 0
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		cells := table.Find("td, th").Length()
		if cells > bestCells {
			best = table
			bestCells = cells
		}
	})
	if best == nil {
		return nil, fmt.Errorf("no table found in document")
	}
	return tableFromSelection(best)
}

// tableFromSelection converts one <table> into a RawTable. The first row
// is the header; th cells are preferred when present.
func tableFromSelection(table *goquery.Selection) (*models.RawTable, error) {
	rows := table.Find("tr")
	if rows.Length() < 2 {
		return nil, fmt.Errorf("table has no data rows")
	}

	var header []string
	rows.First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
		header = append(header, strings.TrimSpace(cell.Text()))
	})
	if len(header) == 0 {
		return nil, fmt.Errorf("table has no header cells")
	}

	out := &models.RawTable{Columns: make([]models.RawColumn, len(header))}
	for i, name := range header {
		out.Columns[i].Name = name
	}

	rows.Slice(1, rows.Length()).Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td, th")
		for j := range out.Columns {
			cell := ""
			if j < cells.Length() {
				cell = strings.TrimSpace(cells.Eq(j).Text())
			}
			out.Columns[j].Cells = append(out.Columns[j].Cells, cell)
		}
	})
	return out, nil
}
