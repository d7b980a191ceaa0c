// Package ingest reads balance sheet files into RawTable form. The rest
// of the pipeline is agnostic to where a table came from; this package
// owns the file-format edge.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"balance_insight/pkg/models"
)

// candidateDelimiters are tried when sniffing a CSV dialect.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// sniffDelimiter picks the delimiter occurring most often in the header
// line. Comma wins ties by being checked first.
func sniffDelimiter(header string) rune {
	best := ','
	bestCount := 0
	for _, d := range candidateDelimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

// ReadCSV parses delimited text into a RawTable. The first record is the
// header; short rows are padded with blank cells so every column has one
// cell per row.
func ReadCSV(r io.Reader) (*models.RawTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")

	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(firstLine)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	header := records[0]
	table := &models.RawTable{Columns: make([]models.RawColumn, len(header))}
	for i, name := range header {
		table.Columns[i].Name = strings.TrimSpace(name)
	}
	for _, record := range records[1:] {
		for i := range table.Columns {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			table.Columns[i].Cells = append(table.Columns[i].Cells, cell)
		}
	}
	return table, nil
}
