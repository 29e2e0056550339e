// Package report reads the merged ledger back and aggregates it into
// per-label and per-origin spending summaries.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"cloud.google.com/go/civil"

	"github.com/avyukov/cardledger/internal/domain"
)

// Bucket is one aggregation row: a key with its transaction count and
// spend total.
type Bucket struct {
	Key   string
	Count int
	Total float64
}

// Summary is the aggregate view over one merged ledger file.
type Summary struct {
	Transactions int
	Total        float64
	ByLabel      []Bucket
	ByOrigin     []Bucket
	// FirstDate and LastDate bound the parseable dates in the ledger; both
	// are zero when no row carries a parseable date.
	FirstDate civil.Date
	LastDate  civil.Date
}

// Load reads a merged ledger CSV back into transactions. A missing file is
// reported as domain.MissingInputError so callers can distinguish "run the
// merge first" from a corrupt file.
func Load(path string) ([]*domain.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.MissingInputError{Path: path}
		}
		return nil, fmt.Errorf("Load: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Load: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := map[string]int{}
	for i, col := range rows[0] {
		idx[col] = i
	}
	for _, col := range []string{"date", "description", "amount", "label", "origin_tag"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("Load: %s: missing column %q", path, col)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	txs := make([]*domain.Transaction, 0, len(rows)-1)
	for _, row := range rows[1:] {
		amount, err := strconv.ParseFloat(cell(row, "amount"), 64)
		if err != nil {
			continue
		}
		txs = append(txs, &domain.Transaction{
			Date:        cell(row, "date"),
			Description: cell(row, "description"),
			Amount:      amount,
			Category:    cell(row, "category"),
			OriginTag:   cell(row, "origin_tag"),
			SourceFile:  cell(row, "source_file"),
			Label:       cell(row, "label"),
		})
	}
	return txs, nil
}

// Summarize aggregates transactions by label and by origin. Buckets are
// ordered by descending total, ties broken by key for stable output.
func Summarize(txs []*domain.Transaction) Summary {
	s := Summary{Transactions: len(txs)}
	byLabel := map[string]*Bucket{}
	byOrigin := map[string]*Bucket{}

	for _, tx := range txs {
		s.Total += tx.Amount
		bump(byLabel, tx.Label, tx.Amount)
		bump(byOrigin, tx.OriginTag, tx.Amount)

		if d, err := civil.ParseDate(tx.Date); err == nil {
			if s.FirstDate == (civil.Date{}) || d.Before(s.FirstDate) {
				s.FirstDate = d
			}
			if d.After(s.LastDate) {
				s.LastDate = d
			}
		}
	}

	s.ByLabel = sorted(byLabel)
	s.ByOrigin = sorted(byOrigin)
	return s
}

func bump(m map[string]*Bucket, key string, amount float64) {
	b, ok := m[key]
	if !ok {
		b = &Bucket{Key: key}
		m[key] = b
	}
	b.Count++
	b.Total += amount
}

func sorted(m map[string]*Bucket) []Bucket {
	out := make([]Bucket, 0, len(m))
	for _, b := range m {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Key < out[j].Key
	})
	return out
}
