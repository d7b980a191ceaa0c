package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.csv")
	content := "Account,Amount_2023\nCash,\"$850,000\"\nAccounts Payable,\"(280,000)\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	raw, err := loadTable(path)
	if err != nil {
		t.Fatalf("loadTable: %v", err)
	}
	if got := raw.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
	if raw.Columns[0].Name != "Account" {
		t.Errorf("first column = %q", raw.Columns[0].Name)
	}
}

func TestLoadTableHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.html")
	content := `<table>
	  <tr><th>Account</th><th>Amount_2023</th></tr>
	  <tr><td>Cash</td><td>850000</td></tr>
	</table>`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	raw, err := loadTable(path)
	if err != nil {
		t.Fatalf("loadTable: %v", err)
	}
	if got := raw.RowCount(); got != 1 {
		t.Errorf("RowCount() = %d, want 1", got)
	}
}
