package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avyukov/cardledger/internal/domain"
)

func writeRules(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing rules file: %v", err)
	}
	return path
}

func TestLoadGroups(t *testing.T) {
	doc := `
- name: protected
  rules:
    - patterns: ["AMK MSU"]
      label: Vending Machine
- name: fuel
  rules:
    - patterns: ["SHELL"]
      amount: {max: 30}
      label: Gas Station Indiscretion
    - patterns: ["SHELL"]
      amount: {min: 30}
      label: Gasoline
- name: merchants
  skip_label: Vending Machine
  rules:
    - patterns: ["NETFLIX"]
      label: Netflix
    - patterns: ["AMAZON"]
      exclude: ["PRIME"]
      label: Amazon Shopping
    - patterns: ["PAYPAL *GOOGLE"]
      only_unlabeled: true
      label: Google Services
`
	groups, err := LoadGroups(writeRules(t, doc))
	if err != nil {
		t.Fatalf("LoadGroups failed: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[2].SkipLabel != "Vending Machine" {
		t.Errorf("SkipLabel = %q", groups[2].SkipLabel)
	}
	if !groups[2].Rules[2].OnlyUnlabeled {
		t.Error("only_unlabeled flag not decoded")
	}

	// The loaded table must drive the engine the same way the built-in one
	// does for the shapes it covers.
	under := tx("SHELL OIL 1", 12.0, "Gas")
	vending := tx("AMK MSU POD NETFLIX", 3.0, "Dining")
	Apply(groups, []*domain.Transaction{under, vending})

	if under.Label != "Gas Station Indiscretion" {
		t.Errorf("under.Label = %q", under.Label)
	}
	if vending.Label != "Vending Machine" {
		t.Errorf("vending.Label = %q (merchant group must skip the protected label)", vending.Label)
	}
}

func TestLoadGroups_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"group without name", "- rules:\n    - patterns: [\"X\"]\n      label: Y\n"},
		{"rule without patterns", "- name: g\n  rules:\n    - label: Y\n"},
		{"rule without label", "- name: g\n  rules:\n    - patterns: [\"X\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadGroups(writeRules(t, tt.doc)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadGroups_MissingFile(t *testing.T) {
	if _, err := LoadGroups(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
