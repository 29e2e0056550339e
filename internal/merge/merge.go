// Package merge discovers exported CSV files, routes each to the adapter
// that understands its layout, and pools the results into one transaction
// set ready for classification.
package merge

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/avyukov/cardledger/internal/domain"
	"github.com/avyukov/cardledger/internal/logger"
	"github.com/avyukov/cardledger/internal/sources"
)

// sourceClass binds a filename pattern to the adapter that parses matching
// files.
type sourceClass struct {
	Pattern string
	Adapter sources.Adapter
}

// defaultClasses lists the recognized export layouts. The class order fixes
// the concatenation order of the pooled records, which is what the stable
// date sort falls back on for same-day rows.
func defaultClasses() []sourceClass {
	return []sourceClass{
		{Pattern: "CapitalOne*.csv", Adapter: &sources.DebitColumnAdapter{OriginTag: "CapitalOne"}},
		{Pattern: "Discover*.csv", Adapter: sources.NewSignedAmountAdapter("Discover")},
		{Pattern: "*_extracted*.csv", Adapter: &sources.ExtractedAdapter{}},
	}
}

// Load reads every recognized CSV under dir and returns the pooled raw
// records. A file that fails to decode or parse is logged and skipped; the
// pipeline proceeds with the sources that did load.
func Load(ctx context.Context, dir string) ([]domain.RawRecord, error) {
	log := logger.ForComponent(logger.FromContext(ctx), "merge")

	var all []domain.RawRecord
	for _, class := range defaultClasses() {
		paths, err := filepath.Glob(filepath.Join(dir, class.Pattern))
		if err != nil {
			return nil, fmt.Errorf("Load: glob %s: %w", class.Pattern, err)
		}
		sort.Strings(paths)

		for _, path := range paths {
			records, err := class.Adapter.Normalize(path)
			if err != nil {
				log.Warn().
					Str("file", filepath.Base(path)).
					Str("adapter", class.Adapter.Name()).
					Err(err).
					Msg("Skipping unreadable source file")
				continue
			}
			log.Info().
				Str("file", filepath.Base(path)).
				Str("adapter", class.Adapter.Name()).
				Int("transactions", len(records)).
				Msg("Loaded source file")
			all = append(all, records...)
		}
	}

	log.Info().Int("total", len(all)).Msg("Merged source files")
	return all, nil
}

// Transactions lifts raw records into classifiable transactions, seeding
// each label from its source category.
func Transactions(records []domain.RawRecord) []*domain.Transaction {
	txs := make([]*domain.Transaction, 0, len(records))
	for _, rec := range records {
		txs = append(txs, domain.FromRaw(rec))
	}
	return txs
}
