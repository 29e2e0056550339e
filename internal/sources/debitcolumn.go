package sources

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/avyukov/cardledger/internal/domain"
)

// DebitColumnAdapter handles ledger exports that report purchases in a
// dedicated Debit column next to a Credit column (CapitalOne-style). Rows
// without a debit value are credits or payments and are dropped.
type DebitColumnAdapter struct {
	OriginTag string
}

func (a *DebitColumnAdapter) Name() string { return "debit-column" }

// Normalize reads a debit-column export and returns its purchase rows.
func (a *DebitColumnAdapter) Normalize(path string) ([]domain.RawRecord, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	header, rows, err := parseCSV(content)
	if err != nil {
		return nil, fmt.Errorf("DebitColumnAdapter: parse %s: %w", path, err)
	}

	dateIdx := columnIndex(header, "Transaction Date")
	descIdx := columnIndex(header, "Description")
	debitIdx := columnIndex(header, "Debit")
	catIdx := columnIndex(header, "Category")
	if dateIdx < 0 || descIdx < 0 || debitIdx < 0 {
		return nil, fmt.Errorf("DebitColumnAdapter: %s: missing expected columns", path)
	}

	base := filepath.Base(path)
	records := make([]domain.RawRecord, 0, len(rows))
	for _, row := range rows {
		debit := field(row, debitIdx)
		if debit == "" {
			continue // credit or payment row
		}
		amount, err := strconv.ParseFloat(debit, 64)
		if err != nil {
			continue // non-numeric debit cell, treated like an absent one
		}
		records = append(records, domain.RawRecord{
			Date:        NormalizeDate(field(row, dateIdx)),
			Description: field(row, descIdx),
			Amount:      amount,
			Category:    field(row, catIdx),
			OriginTag:   a.OriginTag,
			SourceFile:  base,
		})
	}
	return records, nil
}
