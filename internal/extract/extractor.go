package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avyukov/cardledger/internal/domain"
)

// Extractor turns statement documents into pre-normalized records using a
// ModelClient.
type Extractor struct {
	client ModelClient
	logger zerolog.Logger
}

// NewExtractor creates an Extractor backed by the given model client.
func NewExtractor(client ModelClient, logger zerolog.Logger) *Extractor {
	return &Extractor{client: client, logger: logger}
}

// ExtractDocument runs the model over one document and decodes its output.
// Malformed output goes through one repair pass and, failing that, one full
// retry of the model call; a second malformed response surfaces as
// domain.MalformedOutputError. Model call errors propagate immediately
// without retry.
func (e *Extractor) ExtractDocument(ctx context.Context, path string) ([]domain.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ExtractDocument: read %s: %w", path, err)
	}

	name := filepath.Base(path)
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		raw, err := e.client.GenerateJSON(ctx, data, extractionPrompt)
		if err != nil {
			return nil, fmt.Errorf("ExtractDocument: model call for %s: %w", name, err)
		}

		cleaned := cleanResponse(raw)
		records, err := decodeRecords(cleaned, name)
		if err == nil {
			return records, nil
		}

		repaired := RepairTruncatedJSON(cleaned)
		records, repairErr := decodeRecords(repaired, name)
		if repairErr == nil {
			e.logger.Warn().
				Str("document", name).
				Msg("Model output was truncated; repaired and parsed")
			return records, nil
		}
		lastErr = err

		if attempt == 0 {
			e.logger.Warn().
				Str("document", name).
				Err(err).
				Msg("Malformed model output; retrying once")
		}
	}

	return nil, &domain.MalformedOutputError{Document: name, Err: lastErr}
}

// ProcessFolders walks each statement folder, extracts every PDF inside,
// and tags the results with an origin derived from the folder suffix. A
// document whose output stays malformed contributes zero records rather
// than failing the whole run.
func (e *Extractor) ProcessFolders(ctx context.Context, originPrefix string, folders map[string]string) ([]domain.RawRecord, error) {
	runID := uuid.New().String()
	log := e.logger.With().Str("run_id", runID).Logger()

	suffixes := make([]string, 0, len(folders))
	for suffix := range folders {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)

	var all []domain.RawRecord
	for _, suffix := range suffixes {
		dir := folders[suffix]
		origin := originPrefix + "-" + suffix

		paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
		if err != nil {
			return nil, fmt.Errorf("ProcessFolders: glob %s: %w", dir, err)
		}
		sort.Strings(paths)

		log.Info().
			Str("origin", origin).
			Str("dir", dir).
			Int("documents", len(paths)).
			Msg("Processing statement folder")

		for _, path := range paths {
			records, err := e.ExtractDocument(ctx, path)
			if err != nil {
				var malformed *domain.MalformedOutputError
				if errors.As(err, &malformed) {
					log.Error().
						Str("document", filepath.Base(path)).
						Err(err).
						Msg("Giving up on document after repair and retry")
					continue
				}
				return nil, err
			}

			for i := range records {
				records[i].OriginTag = origin
				records[i].SourceFile = filepath.Base(path)
			}
			log.Info().
				Str("document", filepath.Base(path)).
				Int("transactions", len(records)).
				Msg("Extracted document")
			all = append(all, records...)
		}
	}

	log.Info().Int("total", len(all)).Msg("Extraction run complete")
	return all, nil
}

// decodeRecords parses a JSON array of transaction objects into RawRecords.
func decodeRecords(text, sourceFile string) ([]domain.RawRecord, error) {
	var rows []map[string]any
	if err := json.Unmarshal([]byte(text), &rows); err != nil {
		return nil, fmt.Errorf("decodeRecords: unmarshal: %w", err)
	}

	records := make([]domain.RawRecord, 0, len(rows))
	for i, row := range rows {
		rec := domain.RawRecord{
			Date:        getStringField(row, "date"),
			Description: getStringField(row, "description"),
			Amount:      getFloat64Field(row, "amount"),
			Category:    getStringField(row, "category"),
			SourceFile:  sourceFile,
		}
		if rec.Date == "" || rec.Description == "" {
			return nil, fmt.Errorf("decodeRecords: row %d missing date or description", i)
		}
		records = append(records, rec)
	}
	return records, nil
}

func getStringField(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func getFloat64Field(row map[string]any, key string) float64 {
	switch v := row[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
