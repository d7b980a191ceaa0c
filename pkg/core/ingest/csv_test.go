package ingest

import (
	"strings"
	"testing"
)

func TestReadCSVComma(t *testing.T) {
	input := "Account,Amount_2023\nCash,\"$1,234\"\nAccounts Payable,(500)\n"

	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if len(table.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(table.Columns))
	}
	if table.Columns[0].Name != "Account" || table.Columns[1].Name != "Amount_2023" {
		t.Errorf("header = %v", table.ColumnNames())
	}
	if table.Columns[1].Cells[0] != "$1,234" {
		t.Errorf("quoted cell = %q", table.Columns[1].Cells[0])
	}
	if table.RowCount() != 2 {
		t.Errorf("rows = %d, want 2", table.RowCount())
	}
}

func TestReadCSVSniffsDelimiters(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"semicolon", "Account;Amount_2023\nCash;1000\n"},
		{"tab", "Account\tAmount_2023\nCash\t1000\n"},
		{"pipe", "Account|Amount_2023\nCash|1000\n"},
	}

	for _, c := range cases {
		table, err := ReadCSV(strings.NewReader(c.input))
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if len(table.Columns) != 2 {
			t.Errorf("%s: columns = %d, want 2", c.name, len(table.Columns))
			continue
		}
		if table.Columns[0].Cells[0] != "Cash" || table.Columns[1].Cells[0] != "1000" {
			t.Errorf("%s: cells = %v / %v", c.name, table.Columns[0].Cells, table.Columns[1].Cells)
		}
	}
}

func TestReadCSVPadsShortRows(t *testing.T) {
	input := "Account,Category,Amount_2023\nCash,Current Assets\n"

	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got := table.Columns[2].Cells[0]; got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
}

func TestReadCSVStripsBOM(t *testing.T) {
	input := "\ufeffAccount,Amount_2023\nCash,1000\n"

	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table.Columns[0].Name != "Account" {
		t.Errorf("first header = %q, want Account", table.Columns[0].Name)
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error on empty input")
	}
}
