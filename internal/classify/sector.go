package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobmarket/internal/textnorm"
	"github.com/jonathan/jobmarket/internal/types"
	"github.com/jonathan/jobmarket/internal/vocab"
)

// SectorOther is returned when no configured sector matches.
const SectorOther = "Other"

type sectorRule struct {
	name     string
	patterns []*regexp.Regexp
}

// SectorClassifier assigns a market-vertical label from configured keyword
// lists. Sectors are tested in configuration order; the first hit wins.
type SectorClassifier struct {
	sectors []sectorRule
}

// NewSectorClassifier compiles the sector table in its configured order.
func NewSectorClassifier(sectors []vocab.KeywordGroup) *SectorClassifier {
	c := &SectorClassifier{}
	for _, s := range sectors {
		rule := sectorRule{name: s.Name}
		for _, kw := range s.Keywords {
			rule.patterns = append(rule.patterns, textnorm.WordPattern(kw))
		}
		c.sectors = append(c.sectors, rule)
	}
	return c
}

// Classify matches title, description and company name against the sector
// keyword lists with whole-word matching. Returns SectorOther on no match.
func (c *SectorClassifier) Classify(title, description, companyName string) string {
	text := strings.ToLower(title + " " + description + " " + companyName)
	for _, rule := range c.sectors {
		for _, p := range rule.patterns {
			if p.MatchString(text) {
				return rule.name
			}
		}
	}
	return SectorOther
}

// genericIndustry reports whether a company-derived industry label carries
// no sector signal of its own.
func genericIndustry(industry string) bool {
	switch industry {
	case "", SectorOther, types.CompanyIndustryDefault, "Technology", "Software":
		return true
	}
	return false
}

// ResolveSector applies the pipeline precedence rule: a specific keyword
// sector beats a generic company-derived industry; the company industry is
// only a fallback when keyword classification found nothing and the
// industry itself is non-generic.
func ResolveSector(keywordSector, companyIndustry string) string {
	if keywordSector != SectorOther {
		return keywordSector
	}
	if !genericIndustry(companyIndustry) {
		return companyIndustry
	}
	return SectorOther
}
