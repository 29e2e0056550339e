// Package export orders classified transactions and writes the merged
// ledger CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/avyukov/cardledger/internal/domain"
)

// Header is the column order of the merged ledger file. Label comes last,
// after the carried-through source columns.
var Header = []string{"date", "description", "amount", "category", "origin_tag", "source_file", "label"}

// SortByDate orders transactions by their date string, ascending. The sort
// is stable so rows sharing a date keep their source order, and unparseable
// dates sort by their literal text rather than failing.
func SortByDate(txs []*domain.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date < txs[j].Date
	})
}

// WriteCSV writes the transactions to path in Header column order.
func WriteCSV(path string, txs []*domain.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteCSV: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("WriteCSV: write header: %w", err)
	}
	for _, tx := range txs {
		row := []string{
			tx.Date,
			tx.Description,
			domain.FormatAmount(tx.Amount),
			tx.Category,
			tx.OriginTag,
			tx.SourceFile,
			tx.Label,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("WriteCSV: flush: %w", err)
	}
	return nil
}
