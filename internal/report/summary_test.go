package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/avyukov/cardledger/internal/domain"
)

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "all_transactions.csv"))

	var missing *domain.MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingInputError", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all_transactions.csv")
	content := "date,description,amount,category,origin_tag,source_file,label\n" +
		"2025-03-01,SHELL OIL 12345,12.5,Gas,CapitalOne,CapitalOne_March.csv,Gas Station Indiscretion\n" +
		"2025-03-02,NETFLIX.COM,15.99,Services,Discover,Discover-Statement.csv,Netflix\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing ledger: %v", err)
	}

	txs, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if txs[0].Label != "Gas Station Indiscretion" || txs[0].Amount != 12.5 {
		t.Errorf("unexpected first transaction: %+v", txs[0])
	}
}

func TestSummarize(t *testing.T) {
	txs := []*domain.Transaction{
		{Date: "2025-03-01", Amount: 12.5, Label: "Gasoline", OriginTag: "CapitalOne"},
		{Date: "2025-03-05", Amount: 40.0, Label: "Gasoline", OriginTag: "CapitalOne"},
		{Date: "2025-03-02", Amount: 15.99, Label: "Netflix", OriginTag: "Discover"},
		{Date: "pending", Amount: 3.0, Label: "Vending Machine", OriginTag: "Chase-2040"},
	}

	s := Summarize(txs)

	if s.Transactions != 4 {
		t.Errorf("Transactions = %d, want 4", s.Transactions)
	}
	if s.ByLabel[0].Key != "Gasoline" || s.ByLabel[0].Count != 2 || s.ByLabel[0].Total != 52.5 {
		t.Errorf("top label bucket = %+v", s.ByLabel[0])
	}
	if s.ByOrigin[0].Key != "CapitalOne" {
		t.Errorf("top origin = %q, want CapitalOne", s.ByOrigin[0].Key)
	}

	// The unparseable date must not perturb the range.
	if s.FirstDate.String() != "2025-03-01" || s.LastDate.String() != "2025-03-05" {
		t.Errorf("date range = %s..%s", s.FirstDate, s.LastDate)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Transactions != 0 || s.Total != 0 || len(s.ByLabel) != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if s.FirstDate.IsValid() {
		t.Error("FirstDate should stay zero with no parseable dates")
	}
}
