package skill

import (
	"sort"
	"strings"
)

// Classifier maps a topic description to the skills it mentions.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	rules   *RuleSet
	aliases map[string]string // alias -> canonical
}

// Match is a matched skill together with the keyword that triggered it
type Match struct {
	Skill   string
	Keyword string
}

// NewClassifier creates a classifier over a rule table
func NewClassifier(rules *RuleSet) *Classifier {
	aliases := make(map[string]string, len(rules.aliases))
	for _, a := range rules.aliases {
		aliases[a.Alias] = a.Canonical
	}
	return &Classifier{
		rules:   rules,
		aliases: aliases,
	}
}

// RuleSet returns the rule table the classifier matches against
func (c *Classifier) RuleSet() *RuleSet {
	return c.rules
}

// Classify returns the sorted skill names matched by topic
func (c *Classifier) Classify(topic string) []string {
	matches := c.Explain(topic)
	skills := make([]string, len(matches))
	for i, m := range matches {
		skills[i] = m.Skill
	}
	return skills
}

// Explain is Classify with the triggering keyword of each match
func (c *Classifier) Explain(topic string) []Match {
	result := []Match{}
	if topic == "" {
		return result
	}

	// Padding lets " js " style keywords match at either end of the topic.
	text := " " + strings.ToLower(topic) + " "

	matched := make(map[string]string)
	for _, r := range c.rules.rules {
		kw, ok := firstContained(text, r.Keywords)
		if !ok {
			continue
		}
		// Exclusions look at the whole topic, not just around kw.
		if _, excluded := firstContained(text, r.Exclude); excluded {
			continue
		}
		matched[r.Skill] = kw
	}

	for alias, canonical := range c.aliases {
		if _, ok := matched[canonical]; !ok {
			continue
		}
		delete(matched, alias)
	}

	for s, kw := range matched {
		result = append(result, Match{Skill: s, Keyword: kw})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Skill < result[j].Skill
	})
	return result
}

func firstContained(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return p, true
		}
	}
	return "", false
}
