// Package geo resolves free-text job locations to canonical countries using
// keyword tables. Resolution is pure: no geocoding services, no network.
package geo

import (
	"strings"

	"github.com/jonathan/jobmarket/internal/vocab"
)

type countryKeywords struct {
	name     string
	keywords []string
}

// Resolver maps location strings to countries. The country table keeps its
// configuration order so ambiguous strings resolve the same way on every
// run.
type Resolver struct {
	countries []countryKeywords
	remote    []string
}

// NewResolver builds a Resolver from the geo vocabulary. Each country
// matches on its own name plus its configured metro-area aliases.
func NewResolver(v vocab.GeoVocab) *Resolver {
	r := &Resolver{}
	for _, c := range v.Countries {
		kw := make([]string, 0, len(c.Aliases)+1)
		kw = append(kw, strings.ToLower(c.Name))
		for _, a := range c.Aliases {
			kw = append(kw, strings.ToLower(a))
		}
		r.countries = append(r.countries, countryKeywords{name: c.Name, keywords: kw})
	}
	for _, ind := range v.RemoteIndicators {
		r.remote = append(r.remote, strings.ToLower(ind))
	}
	return r
}

// ResolveCountry resolves a location string to a canonical country name.
// A remote-work indicator resolves to searchContext (the location the
// collector was querying for), since the listing belongs to that market
// rather than to any city named in the text. Returns ("", false) when
// nothing matches.
func (r *Resolver) ResolveCountry(locationText, searchContext string) (string, bool) {
	loc := strings.ToLower(strings.TrimSpace(locationText))
	if loc == "" {
		return "", false
	}

	for _, c := range r.countries {
		for _, kw := range c.keywords {
			if strings.Contains(loc, kw) {
				return c.name, true
			}
		}
	}

	for _, ind := range r.remote {
		if strings.Contains(loc, ind) {
			if ctx := strings.TrimSpace(searchContext); ctx != "" {
				return ctx, true
			}
			break
		}
	}

	return "", false
}
