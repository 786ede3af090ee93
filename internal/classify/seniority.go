// Package classify provides the heuristic keyword classifiers for job
// records: seniority tier, market sector, and job type. Each classifier is
// an ordered list of keyword rules evaluated in a fixed declared sequence,
// data-driven from configuration.
package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobmarket/internal/textnorm"
	"github.com/jonathan/jobmarket/internal/vocab"
)

// Seniority tiers, from highest to lowest priority. An explicit tier
// keyword always outranks the generic-role fallback.
const (
	TierExecutive    = "Executive"
	TierLeadManager  = "Lead / Manager"
	TierSenior       = "Senior"
	TierMid          = "Mid"
	TierJunior       = "Junior"
	TierUnclassified = "Unclassified"
)

type tierRule struct {
	tier     string
	patterns []*regexp.Regexp
}

// SeniorityClassifier maps title+description text to one seniority tier
// using a priority-ordered keyword table with a generic-role fallback.
type SeniorityClassifier struct {
	tiers    []tierRule
	fallback []*regexp.Regexp
}

// NewSeniorityClassifier compiles the tier table in its configured order.
func NewSeniorityClassifier(v vocab.SeniorityVocab) *SeniorityClassifier {
	c := &SeniorityClassifier{}
	for _, tier := range v.Tiers {
		rule := tierRule{tier: tier.Name}
		for _, kw := range tier.Keywords {
			rule.patterns = append(rule.patterns, textnorm.WordPattern(kw))
		}
		c.tiers = append(c.tiers, rule)
	}
	for _, role := range v.FallbackRoles {
		c.fallback = append(c.fallback, textnorm.WordPattern(role))
	}
	return c
}

// Classify returns the first tier whose keywords match title+description as
// whole words. Records with no explicit tier marker but a generic technical
// role noun classify as Mid; this deliberately trades precision for a lower
// unclassified rate on common titles like "Backend Engineer".
func (c *SeniorityClassifier) Classify(title, description string) string {
	text := strings.ToLower(title + " " + description)
	if strings.TrimSpace(text) == "" {
		return TierUnclassified
	}

	for _, rule := range c.tiers {
		for _, p := range rule.patterns {
			if p.MatchString(text) {
				return rule.tier
			}
		}
	}

	for _, p := range c.fallback {
		if p.MatchString(text) {
			return TierMid
		}
	}

	return TierUnclassified
}
