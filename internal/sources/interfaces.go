// Package sources normalizes source-specific export files into canonical
// raw purchase records. One adapter exists per export format; all of them
// share the same encoding fallback and date normalization.
package sources

import "github.com/avyukov/cardledger/internal/domain"

// Adapter converts one source-specific export file into normalized raw
// purchase records.
type Adapter interface {
	// Name identifies the adapter in logs.
	Name() string

	// Normalize reads the file at path and returns its purchase rows. Rows
	// that represent credits, payments or rebates are dropped here, never
	// downstream.
	Normalize(path string) ([]domain.RawRecord, error)
}
