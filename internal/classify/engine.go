package classify

import (
	"strings"

	"github.com/avyukov/cardledger/internal/domain"
)

// Apply runs the groups in order over every transaction, mutating labels in
// place and returning the same slice. Group order is the only cross-group
// precedence; within a group the last matching rule wins. The result never
// depends on row order, and every transaction keeps some label: a
// transaction no rule matches retains its source category.
func Apply(groups []Group, txs []*domain.Transaction) []*domain.Transaction {
	for _, g := range groups {
		for _, rule := range g.Rules {
			for _, tx := range txs {
				if g.SkipLabel != "" && tx.Label == g.SkipLabel {
					continue
				}
				if rule.OnlyUnlabeled && tx.Label != tx.Category {
					continue
				}
				if !rule.Amount.Contains(tx.Amount) {
					continue
				}
				if !matches(tx.Description, rule.Patterns, rule.Exclude) {
					continue
				}
				tx.Label = rule.Label
			}
		}
	}
	return txs
}

// matches reports a case-insensitive substring hit on any of patterns with
// none of exclude present.
func matches(description string, patterns, exclude []string) bool {
	upper := strings.ToUpper(description)

	hit := false
	for _, p := range patterns {
		if strings.Contains(upper, strings.ToUpper(p)) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	for _, p := range exclude {
		if strings.Contains(upper, strings.ToUpper(p)) {
			return false
		}
	}
	return true
}
