// Package routing holds the public-to-internal path rewrite table and the
// navigation matcher the authorization middleware intercepts on. Both have
// compiled-in defaults and can be overridden by a YAML file.
package routing

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps a public path prefix to the internal module path it serves.
type Rule struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// Table is the mode-specific rewrite table.
type Table struct {
	rules []Rule
}

// fileSpec is the on-disk shape of a routes file.
type fileSpec struct {
	Rewrites map[string][]Rule `yaml:"rewrites"` // keyed by mode
	Matcher  []string          `yaml:"matcher"`
}

// Default module roots intercepted by the authorization middleware. Paths
// outside these bypass authorization entirely.
var defaultMatcherPatterns = []string{
	"/dashboard",
	"/dashboard/*",
	"/reset-password",
	"/people/*",
	"/leave/*",
	"/attendance/*",
	"/sign/*",
	"/settings/*",
}

func defaultRules(mode string) []Rule {
	prefix := "/" + mode
	sources := []string{
		"/dashboard",
		"/people",
		"/leave",
		"/attendance",
		"/sign",
		"/settings",
	}
	rules := make([]Rule, 0, len(sources))
	for _, src := range sources {
		rules = append(rules, Rule{Source: src, Destination: prefix + src})
	}
	return rules
}

// NewTable builds the rewrite table for a mode from the built-in defaults.
func NewTable(mode string) *Table {
	return newTable(defaultRules(mode))
}

func newTable(rules []Rule) *Table {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	// Longest source first so the most specific rewrite wins.
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Source) > len(ordered[j].Source)
	})
	return &Table{rules: ordered}
}

// Rewrite maps a public path to its internal destination. Unmatched paths
// pass through unchanged.
func (t *Table) Rewrite(path string) string {
	for _, rule := range t.rules {
		if path == rule.Source {
			return rule.Destination
		}
		if strings.HasPrefix(path, rule.Source+"/") {
			return rule.Destination + strings.TrimPrefix(path, rule.Source)
		}
	}
	return path
}

// Matcher is the allow-list of path patterns the authorization middleware
// intercepts. Patterns are exact paths or a prefix ending in "/*".
type Matcher struct {
	patterns []string
}

func NewMatcher(patterns []string) *Matcher {
	if len(patterns) == 0 {
		patterns = defaultMatcherPatterns
	}
	return &Matcher{patterns: patterns}
}

// Matches reports whether the path is subject to authorization.
func (m *Matcher) Matches(path string) bool {
	for _, pattern := range m.patterns {
		if trimmed, ok := strings.CutSuffix(pattern, "/*"); ok {
			if path == trimmed || strings.HasPrefix(path, trimmed+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}

// Load builds the table and matcher for a mode, reading the YAML overrides
// file when path is non-empty.
func Load(mode string, path string) (*Table, *Matcher, error) {
	if path == "" {
		return NewTable(mode), NewMatcher(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, nil, err
	}

	rules := spec.Rewrites[mode]
	if len(rules) == 0 {
		rules = defaultRules(mode)
	}

	return newTable(rules), NewMatcher(spec.Matcher), nil
}
