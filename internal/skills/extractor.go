// Package skills extracts technical skill mentions from job-posting text
// using a configured vocabulary with notation-variant matching.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/jobmarket/internal/textnorm"
	"github.com/jonathan/jobmarket/internal/vocab"
)

type skillEntry struct {
	name     string
	patterns []*regexp.Regexp
}

// Extractor scans text against a skill vocabulary. Matching tolerates
// notation variants, so "Node.js" is found in "nodejs backend" and
// "Spring Boot" in "springboot".
type Extractor struct {
	entries    []skillEntry
	categoryOf map[string]string
}

// NewExtractor compiles match patterns for every vocabulary term. Each term
// matches as a whole word in any of four notations: as written, dots
// removed, spaces removed, hyphens removed.
func NewExtractor(v vocab.SkillVocab) *Extractor {
	e := &Extractor{categoryOf: make(map[string]string)}
	seen := make(map[string]bool)

	for _, cat := range v.Categories {
		for _, term := range cat.Keywords {
			if _, ok := e.categoryOf[term]; !ok {
				e.categoryOf[term] = cat.Name
			}
			if seen[term] {
				continue
			}
			seen[term] = true
			e.entries = append(e.entries, skillEntry{
				name:     term,
				patterns: compileVariants(term),
			})
		}
	}
	return e
}

func compileVariants(term string) []*regexp.Regexp {
	lower := strings.ToLower(term)
	variants := []string{
		lower,
		strings.ReplaceAll(lower, ".", ""),
		strings.ReplaceAll(lower, " ", ""),
		strings.ReplaceAll(lower, "-", ""),
	}

	var patterns []*regexp.Regexp
	seen := make(map[string]bool)
	for _, variant := range variants {
		if variant == "" || seen[variant] {
			continue
		}
		seen[variant] = true
		patterns = append(patterns, textnorm.WordPattern(variant))
	}
	return patterns
}

// Extract returns the deduplicated set of vocabulary skills mentioned in
// text, sorted by name for deterministic output. Empty text yields nil.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, entry := range e.entries {
		for _, p := range entry.patterns {
			if p.MatchString(lower) {
				found = append(found, entry.name)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}

// Categorize returns the vocabulary category for a skill, or "Other" when
// the skill belongs to no category.
func (e *Extractor) Categorize(skillName string) string {
	if cat, ok := e.categoryOf[skillName]; ok {
		return cat
	}
	return "Other"
}
