package sources

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/avyukov/cardledger/internal/domain"
)

// SignedAmountAdapter handles ledger exports with a single signed Amount
// column plus a category column that flags payments and rebates
// (Discover-style). Non-positive amounts and excluded categories are
// dropped.
type SignedAmountAdapter struct {
	OriginTag          string
	ExcludedCategories []string
}

// NewSignedAmountAdapter creates the adapter with the standard excluded
// category set.
func NewSignedAmountAdapter(originTag string) *SignedAmountAdapter {
	return &SignedAmountAdapter{
		OriginTag: originTag,
		ExcludedCategories: []string{
			"Payments and Credits",
			"Awards and Rebate Credits",
		},
	}
}

func (a *SignedAmountAdapter) Name() string { return "signed-amount" }

// Normalize reads a signed-amount export and returns its purchase rows.
func (a *SignedAmountAdapter) Normalize(path string) ([]domain.RawRecord, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	header, rows, err := parseCSV(content)
	if err != nil {
		return nil, fmt.Errorf("SignedAmountAdapter: parse %s: %w", path, err)
	}

	dateIdx := columnIndex(header, "Trans. Date")
	descIdx := columnIndex(header, "Description")
	amountIdx := columnIndex(header, "Amount")
	catIdx := columnIndex(header, "Category")
	if dateIdx < 0 || descIdx < 0 || amountIdx < 0 {
		return nil, fmt.Errorf("SignedAmountAdapter: %s: missing expected columns", path)
	}

	base := filepath.Base(path)
	records := make([]domain.RawRecord, 0, len(rows))
	for _, row := range rows {
		amount, err := strconv.ParseFloat(field(row, amountIdx), 64)
		if err != nil || amount <= 0 {
			continue // payment, credit, or unparseable amount
		}
		category := field(row, catIdx)
		if a.excluded(category) {
			continue
		}
		records = append(records, domain.RawRecord{
			Date:        NormalizeDate(field(row, dateIdx)),
			Description: field(row, descIdx),
			Amount:      amount,
			Category:    category,
			OriginTag:   a.OriginTag,
			SourceFile:  base,
		})
	}
	return records, nil
}

func (a *SignedAmountAdapter) excluded(category string) bool {
	for _, c := range a.ExcludedCategories {
		if category == c {
			return true
		}
	}
	return false
}
