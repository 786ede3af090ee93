// Package enrich derives company attributes (size, industry, HQ country,
// type) from the company name alone via priority-ordered keyword cascades.
package enrich

import (
	"strings"

	"github.com/jonathan/jobmarket/internal/types"
	"github.com/jonathan/jobmarket/internal/vocab"
)

// CompanyEnricher memoizes enrichment per exact company name for the
// lifetime of one pipeline run. Instances are not safe for concurrent use;
// each pipeline run owns its own.
type CompanyEnricher struct {
	v     vocab.CompanyVocab
	cache map[string]types.CompanyProfile
}

// NewCompanyEnricher builds an enricher over the company vocabulary.
func NewCompanyEnricher(v vocab.CompanyVocab) *CompanyEnricher {
	return &CompanyEnricher{
		v:     v,
		cache: make(map[string]types.CompanyProfile),
	}
}

// Enrich derives the company profile for a name. Empty and placeholder
// names resolve straight to the all-default profile without consulting the
// cascades, so "Unknown Company" never keyword-matches anything.
func (e *CompanyEnricher) Enrich(companyName string) types.CompanyProfile {
	if strings.TrimSpace(companyName) == "" || companyName == types.PlaceholderCompany {
		return types.DefaultCompanyProfile(types.PlaceholderCompany)
	}

	if cached, ok := e.cache[companyName]; ok {
		return cached
	}

	name := strings.ToLower(companyName)
	profile := types.CompanyProfile{
		Name:      companyName,
		Size:      firstGroupMatch(e.v.Sizes, name, types.CompanySizeUnspecified),
		Industry:  firstGroupMatch(e.v.Industries, name, types.CompanyIndustryDefault),
		HQCountry: countryMatch(e.v.Countries, name, types.CompanyCountryDefault),
		Type:      firstGroupMatch(e.v.Types, name, types.CompanyTypeDefault),
	}

	e.cache[companyName] = profile
	return profile
}

// CacheSize reports how many distinct company names have been memoized.
func (e *CompanyEnricher) CacheSize() int {
	return len(e.cache)
}

func firstGroupMatch(groups []vocab.KeywordGroup, name, fallback string) string {
	for _, g := range groups {
		for _, kw := range g.Keywords {
			if strings.Contains(name, strings.ToLower(kw)) {
				return g.Name
			}
		}
	}
	return fallback
}

func countryMatch(countries []vocab.CountryEntry, name, fallback string) string {
	for _, c := range countries {
		if strings.Contains(name, strings.ToLower(c.Name)) {
			return c.Name
		}
		for _, a := range c.Aliases {
			if strings.Contains(name, strings.ToLower(a)) {
				return c.Name
			}
		}
	}
	return fallback
}
