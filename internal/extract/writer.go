package extract

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/avyukov/cardledger/internal/domain"
)

// canonicalHeader is the column order of the pre-normalized CSV that the
// merge stage reads back.
var canonicalHeader = []string{"date", "description", "amount", "category", "origin_tag", "source_file"}

// WriteCanonicalCSV writes extracted records to path in canonical column
// order, sorted by date string so reruns produce identical files.
func WriteCanonicalCSV(path string, records []domain.RawRecord) error {
	sorted := make([]domain.RawRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteCanonicalCSV: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(canonicalHeader); err != nil {
		return fmt.Errorf("WriteCanonicalCSV: write header: %w", err)
	}
	for _, rec := range sorted {
		row := []string{
			rec.Date,
			rec.Description,
			domain.FormatAmount(rec.Amount),
			rec.Category,
			rec.OriginTag,
			rec.SourceFile,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("WriteCanonicalCSV: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("WriteCanonicalCSV: flush: %w", err)
	}
	return nil
}
