package skill

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// minKeywordLen is the shortest keyword allowed without space padding.
// Shorter tokens ("js", "ts", "ml") match inside ordinary words.
const minKeywordLen = 3

// Rule is one skill's detection policy
type Rule struct {
	Skill    string   `yaml:"skill"`
	Keywords []string `yaml:"keywords"`
	Exclude  []string `yaml:"exclude,omitempty"`
}

// Alias pairs a canonical skill with a redundant spelling of it. When
// both match a topic only Canonical is kept.
type Alias struct {
	Canonical string `yaml:"canonical"`
	Alias     string `yaml:"alias"`
}

// RuleSet is the immutable rule table: the catalog, the matching rules
// and the alias pairs. Load it once at startup and share it.
type RuleSet struct {
	version int
	catalog *Catalog
	rules   []Rule
	aliases []Alias
}

type ruleFile struct {
	Version int      `yaml:"version"`
	Catalog []string `yaml:"catalog"`
	Aliases []Alias  `yaml:"aliases"`
	Rules   []Rule   `yaml:"rules"`
}

// Default parses the rule table compiled into the binary
func Default() (*RuleSet, error) {
	return Parse(defaultRules)
}

// MustDefault is Default for package-level initialization and tests
func MustDefault() *RuleSet {
	rs, err := Default()
	if err != nil {
		panic(fmt.Sprintf("skill: embedded rules: %v", err))
	}
	return rs
}

// LoadFile reads a rule table from a YAML file on disk
func LoadFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Load returns the rule table at path, or the embedded one when path is
// empty.
func Load(path string) (*RuleSet, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a YAML rule table
func Parse(data []byte) (*RuleSet, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	rs := &RuleSet{
		version: f.Version,
		catalog: NewCatalog(f.Catalog),
		rules:   f.Rules,
		aliases: f.Aliases,
	}
	if err := rs.Validate(f.Catalog); err != nil {
		return nil, err
	}
	return rs, nil
}

// Validate checks the table invariants. rawCatalog is the catalog as
// written, so duplicate entries can be reported.
func (rs *RuleSet) Validate(rawCatalog []string) error {
	var errs []error

	seenCatalog := make(map[string]bool, len(rawCatalog))
	for _, n := range rawCatalog {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, errors.New("catalog: blank skill name"))
			continue
		}
		if seenCatalog[n] {
			errs = append(errs, fmt.Errorf("catalog: duplicate skill %q", n))
		}
		seenCatalog[n] = true
	}

	seenRule := make(map[string]bool, len(rs.rules))
	for _, r := range rs.rules {
		if !rs.catalog.Contains(r.Skill) {
			errs = append(errs, fmt.Errorf("rule %q: skill not in catalog", r.Skill))
		}
		if seenRule[r.Skill] {
			errs = append(errs, fmt.Errorf("rule %q: duplicate rule", r.Skill))
		}
		seenRule[r.Skill] = true

		if len(r.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("rule %q: no keywords", r.Skill))
		}
		for _, kw := range r.Keywords {
			if err := checkPhrase(kw); err != nil {
				errs = append(errs, fmt.Errorf("rule %q: keyword %q: %w", r.Skill, kw, err))
			}
		}
		for _, ex := range r.Exclude {
			if err := checkPhrase(ex); err != nil {
				errs = append(errs, fmt.Errorf("rule %q: exclude %q: %w", r.Skill, ex, err))
			}
		}
	}

	for _, a := range rs.aliases {
		if !rs.catalog.Contains(a.Canonical) {
			errs = append(errs, fmt.Errorf("alias %q: canonical %q not in catalog", a.Alias, a.Canonical))
		}
		if !rs.catalog.Contains(a.Alias) {
			errs = append(errs, fmt.Errorf("alias %q: not in catalog", a.Alias))
		}
		if a.Canonical == a.Alias {
			errs = append(errs, fmt.Errorf("alias %q: aliases itself", a.Alias))
		}
	}

	return errors.Join(errs...)
}

func checkPhrase(p string) error {
	trimmed := strings.TrimSpace(p)
	switch {
	case trimmed == "":
		return errors.New("blank")
	case p != strings.ToLower(p):
		return errors.New("must be lowercase")
	case len(trimmed) < minKeywordLen && !(strings.HasPrefix(p, " ") && strings.HasSuffix(p, " ")):
		return fmt.Errorf("shorter than %d characters must be space padded", minKeywordLen)
	}
	return nil
}

// Version returns the rule table version
func (rs *RuleSet) Version() int {
	return rs.version
}

// Catalog returns the skill catalog
func (rs *RuleSet) Catalog() *Catalog {
	return rs.catalog
}

// Rules returns a copy of the rules
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Rule looks up the rule for a skill
func (rs *RuleSet) Rule(skill string) (Rule, bool) {
	for _, r := range rs.rules {
		if r.Skill == skill {
			return r, true
		}
	}
	return Rule{}, false
}

// Aliases returns a copy of the alias pairs
func (rs *RuleSet) Aliases() []Alias {
	out := make([]Alias, len(rs.aliases))
	copy(out, rs.aliases)
	return out
}
