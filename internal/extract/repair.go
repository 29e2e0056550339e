package extract

import "strings"

// RepairTruncatedJSON attempts to mend model output that was cut off
// mid-stream: it closes an unterminated string, trims a dangling comma, and
// appends closing braces and brackets to balance the counted depth.
// Counting is character-based and does not understand brackets inside
// string values; this is a best-effort heuristic for tail truncation, not a
// parser.
func RepairTruncatedJSON(s string) string {
	openBraces := strings.Count(s, "{") - strings.Count(s, "}")
	openBrackets := strings.Count(s, "[") - strings.Count(s, "]")

	// Detect whether the text ends inside a quoted string by toggling on
	// each unescaped quote.
	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			inString = !inString
		}
	}

	fixed := s
	if inString {
		fixed += `"`
	}

	fixed = strings.TrimRight(fixed, " \t\r\n")
	fixed = strings.TrimSuffix(fixed, ",")

	if openBraces > 0 {
		fixed += strings.Repeat("}", openBraces)
	}
	if openBrackets > 0 {
		fixed += strings.Repeat("]", openBrackets)
	}
	return fixed
}

// cleanResponse strips Markdown fences the model sometimes adds despite the
// prompt, and narrows to the JSON array when both delimiters are present. A
// truncated tail (no closing bracket) is left intact for the repair pass.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
