// Package domain defines the canonical record model shared by every
// pipeline stage.
package domain

import "strconv"

// RawRecord is one normalized purchase row produced by a source adapter,
// before merging. Adapters emit purchases only: credits, payments and fees
// are filtered out at the source and never represented.
type RawRecord struct {
	Date        string  // YYYY-MM-DD when parseable, original text otherwise
	Description string  // merchant description as exported
	Amount      float64 // positive magnitude, purchase convention
	Category    string  // category reported by the source, may be empty
	OriginTag   string  // card/account identifier, e.g. "Chase-2040"
	SourceFile  string  // basename of the originating file
}

// Transaction is the canonical post-merge record. Label starts equal to
// Category and is the only field the classification engine mutates; every
// transaction holds exactly one label at any point.
type Transaction struct {
	Date        string
	Description string
	Amount      float64
	Category    string
	OriginTag   string
	SourceFile  string
	Label       string
}

// FromRaw converts an adapter record into a canonical transaction with the
// label seeded from the source category.
func FromRaw(r RawRecord) *Transaction {
	return &Transaction{
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		OriginTag:   r.OriginTag,
		SourceFile:  r.SourceFile,
		Label:       r.Category,
	}
}

// FormatAmount renders an amount the way the canonical CSVs store it: the
// shortest decimal text that round-trips the value.
func FormatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
