// Package classify assigns each transaction a semantic label by running an
// ordered list of pattern-matching rule groups over its description. The
// groups are plain data so merchant rules can be edited without touching
// engine code.
package classify

// AmountRange constrains a rule to a half-open amount interval. Min is
// inclusive and Max exclusive, matching the fuel-threshold convention
// (amount >= 30 is a fill-up). A nil bound is open; a nil range matches
// every amount.
type AmountRange struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// Contains reports whether amount satisfies the range.
func (r *AmountRange) Contains(amount float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && amount < *r.Min {
		return false
	}
	if r.Max != nil && amount >= *r.Max {
		return false
	}
	return true
}

// Rule relabels every transaction whose description contains one of
// Patterns (case-insensitive substring) and none of Exclude, subject to the
// optional amount range. OnlyUnlabeled restricts the rule to transactions
// whose label still equals the source category.
type Rule struct {
	Patterns      []string     `yaml:"patterns"`
	Exclude       []string     `yaml:"exclude,omitempty"`
	Label         string       `yaml:"label"`
	Amount        *AmountRange `yaml:"amount,omitempty"`
	OnlyUnlabeled bool         `yaml:"only_unlabeled,omitempty"`
}

// Group is an ordered run of rules applied as one precedence tier. Later
// rules in a group override earlier matches. SkipLabel exempts transactions
// currently holding that label from every rule in the group.
type Group struct {
	Name      string `yaml:"name"`
	SkipLabel string `yaml:"skip_label,omitempty"`
	Rules     []Rule `yaml:"rules"`
}
