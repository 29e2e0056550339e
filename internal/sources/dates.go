package sources

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	"2006-01-02", // 2025-01-15
	"01/02/2006", // 01/15/2025
	"01/02/06",   // 01/15/25
}

// NormalizeDate canonicalizes a source date string to YYYY-MM-DD. Strings
// matching none of the known layouts pass through unchanged and sort as
// opaque text downstream; adapters never reject a row over its date.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return civil.DateOf(t).String()
	}
	return s
}
