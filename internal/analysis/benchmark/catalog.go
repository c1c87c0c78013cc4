package benchmark

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poligap/poligap/pkg/errors"
)

// Catalog is the read-only collection of framework rule sets plus their
// compiled trigger patterns. Build one at process start with NewCatalog; a
// broken catalogue fails fast there instead of corrupting scores at call time.
type Catalog struct {
	sets     map[string]*FrameworkRuleSet
	compiled map[string][]compiledRule
	ids      []string
}

// compiledRule pairs a rule with its pre-compiled regex patterns and
// pre-lowered keywords so per-call evaluation does no compilation.
type compiledRule struct {
	rule     ComplianceRule
	keywords []string
	patterns []*regexp.Regexp
}

// NewCatalog validates the given rule sets and builds a catalogue.
func NewCatalog(sets []*FrameworkRuleSet) (*Catalog, error) {
	c := &Catalog{
		sets:     make(map[string]*FrameworkRuleSet, len(sets)),
		compiled: make(map[string][]compiledRule, len(sets)),
	}

	for _, fs := range sets {
		if fs == nil || fs.ID == "" {
			return nil, errors.NewFromCodef(errors.ErrCatalogMalformed, "framework rule set has no identifier")
		}
		id := NormalizeFrameworkID(fs.ID)
		if _, dup := c.sets[id]; dup {
			return nil, errors.NewFromCodef(errors.ErrCatalogMalformed, "duplicate framework rule set %q", id)
		}
		if len(fs.Rules) == 0 {
			return nil, errors.NewFromCodef(errors.ErrCatalogMalformed, "framework %q has no rules", id)
		}

		sum := 0
		seen := make(map[string]bool, len(fs.Rules))
		compiledRules := make([]compiledRule, 0, len(fs.Rules))
		for _, rule := range fs.Rules {
			if rule.ID == "" {
				return nil, errors.NewFromCodef(errors.ErrCatalogMalformed, "framework %q has a rule without an id", id)
			}
			if seen[rule.ID] {
				return nil, errors.NewFromCodef(errors.ErrCatalogMalformed, "framework %q has duplicate rule %q", id, rule.ID)
			}
			seen[rule.ID] = true
			if rule.Weight <= 0 {
				return nil, errors.NewFromCodef(errors.ErrCatalogMalformed, "rule %q in %q has non-positive weight %d", rule.ID, id, rule.Weight)
			}
			if len(rule.Keywords) == 0 && len(rule.Patterns) == 0 {
				return nil, errors.NewFromCodef(errors.ErrCatalogMalformed, "rule %q in %q has no triggers", rule.ID, id)
			}
			sum += rule.Weight

			cr := compiledRule{rule: rule}
			for _, kw := range rule.Keywords {
				cr.keywords = append(cr.keywords, strings.ToLower(kw))
			}
			for _, p := range rule.Patterns {
				re, err := regexp.Compile("(?i)" + p)
				if err != nil {
					return nil, errors.WrapConfigurationError(err, errors.ErrCatalogMalformed.Code,
						fmt.Sprintf("rule %q in %q has an invalid pattern", rule.ID, id))
				}
				cr.patterns = append(cr.patterns, re)
			}
			compiledRules = append(compiledRules, cr)
		}

		if sum != WeightTotal {
			return nil, errors.NewFromCodef(errors.ErrCatalogWeightSum,
				"framework %q rule weights sum to %d, expected %d", id, sum, WeightTotal)
		}

		c.sets[id] = fs
		c.compiled[id] = compiledRules
		c.ids = append(c.ids, id)
	}

	sort.Strings(c.ids)
	return c, nil
}

// Get returns the rule set for a framework id, normalizing the id first.
func (c *Catalog) Get(id string) (*FrameworkRuleSet, bool) {
	fs, ok := c.sets[NormalizeFrameworkID(id)]
	return fs, ok
}

// FrameworkIDs returns the canonical ids of all catalogued frameworks in
// sorted order.
func (c *Catalog) FrameworkIDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of catalogued frameworks.
func (c *Catalog) Len() int {
	return len(c.sets)
}

// NormalizeFrameworkID maps user-supplied framework identifiers onto catalogue
// keys: trimmed, upper-cased, spaces and hyphens folded to underscores, so
// "pci dss", "PCI-DSS" and "pci_dss" all address "PCI_DSS".
func NormalizeFrameworkID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.ToUpper(id)
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "-", "_")
	return id
}

// catalogFile is the YAML shape of a catalogue override file.
type catalogFile struct {
	Frameworks []*FrameworkRuleSet `yaml:"frameworks"`
}

// LoadCatalogFile reads framework rule sets from a YAML file. The file fully
// replaces the built-in sets for the frameworks it names and adds any new
// ones, so rule data can change without touching algorithm code.
func LoadCatalogFile(path string) ([]*FrameworkRuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfigurationError(err, errors.ErrCatalogFileUnreadable.Code,
			fmt.Sprintf("cannot read catalogue file %s", path))
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapConfigurationError(err, errors.ErrCatalogFileUnreadable.Code,
			fmt.Sprintf("cannot parse catalogue file %s", path))
	}
	if len(file.Frameworks) == 0 {
		return nil, errors.NewFromCodef(errors.ErrCatalogFileUnreadable, "catalogue file %s defines no frameworks", path)
	}
	return file.Frameworks, nil
}

// NewCatalogWithOverrides builds a catalogue from the built-in sets merged
// with overrides loaded from the given YAML path. An empty path yields the
// built-in catalogue unchanged.
func NewCatalogWithOverrides(path string) (*Catalog, error) {
	sets := BuiltinRuleSets()
	if path != "" {
		overrides, err := LoadCatalogFile(path)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]int, len(sets))
		for i, fs := range sets {
			byID[NormalizeFrameworkID(fs.ID)] = i
		}
		for _, ov := range overrides {
			if i, ok := byID[NormalizeFrameworkID(ov.ID)]; ok {
				sets[i] = ov
			} else {
				sets = append(sets, ov)
			}
		}
	}
	return NewCatalog(sets)
}
