package sources

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/avyukov/cardledger/internal/domain"
)

// candidateEncodings are tried in order against every source file; the
// first one that decodes without error wins. The list mirrors what card
// exports show up with in practice. Since latin-1 accepts any byte
// sequence, the candidates after it never actually run; they are kept so
// the configured chain reads as the full set of supported encodings.
var candidateEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", nil}, // nil marks strict UTF-8 validation, no transcoding
	{"latin-1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// readFile reads path and decodes it with the first candidate encoding
// that succeeds. Returns a DecodeError when none do.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("sources.readFile: %w", err)
	}
	return decodeBytes(path, data)
}

func decodeBytes(path string, data []byte) (string, error) {
	for _, cand := range candidateEncodings {
		if cand.enc == nil {
			// Strict UTF-8: reject files with invalid sequences instead of
			// silently substituting replacement runes.
			if utf8.Valid(data) {
				return string(data), nil
			}
			continue
		}
		decoded, err := cand.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), nil
	}

	names := make([]string, 0, len(candidateEncodings))
	for _, cand := range candidateEncodings {
		names = append(names, cand.name)
	}
	return "", &domain.DecodeError{Path: path, Encodings: names}
}

// parseCSV splits a decoded CSV document into its header row and data rows.
func parseCSV(content string) ([]string, [][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("file has no header row")
	}
	return rows[0], rows[1:], nil
}

// columnIndex finds a header column by name, case-insensitively.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// field returns the trimmed cell at idx, or "" when the row is short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
