package sources

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/avyukov/cardledger/internal/domain"
)

// ExtractedAdapter handles the pre-normalized CSV produced by the
// extraction stage. Rows were already filtered and tagged during
// extraction, so this adapter is a passthrough: origin tag and source file
// come from the file's own columns.
type ExtractedAdapter struct{}

func (a *ExtractedAdapter) Name() string { return "extracted" }

// Normalize reads an extraction-output file and returns its rows.
func (a *ExtractedAdapter) Normalize(path string) ([]domain.RawRecord, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	header, rows, err := parseCSV(content)
	if err != nil {
		return nil, fmt.Errorf("ExtractedAdapter: parse %s: %w", path, err)
	}

	dateIdx := columnIndex(header, "date")
	descIdx := columnIndex(header, "description")
	amountIdx := columnIndex(header, "amount")
	catIdx := columnIndex(header, "category")
	originIdx := columnIndex(header, "origin_tag")
	sourceIdx := columnIndex(header, "source_file")
	if dateIdx < 0 || descIdx < 0 || amountIdx < 0 || originIdx < 0 {
		return nil, fmt.Errorf("ExtractedAdapter: %s: missing expected columns", path)
	}

	base := filepath.Base(path)
	records := make([]domain.RawRecord, 0, len(rows))
	for _, row := range rows {
		amount, err := strconv.ParseFloat(field(row, amountIdx), 64)
		if err != nil {
			continue
		}
		source := field(row, sourceIdx)
		if source == "" {
			source = base
		}
		records = append(records, domain.RawRecord{
			Date:        NormalizeDate(field(row, dateIdx)),
			Description: field(row, descIdx),
			Amount:      amount,
			Category:    field(row, catIdx),
			OriginTag:   field(row, originIdx),
			SourceFile:  source,
		})
	}
	return records, nil
}
