// Package textnorm provides text normalization for scraped job-posting
// fields: markup stripping, whitespace collapsing, and title cleanup.
// Every function is total over strings and never fails.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	tagPattern         = regexp.MustCompile(`<[^>]+>`)
	parentheticalAside = regexp.MustCompile(`\s*\([^)]*\)`)
)

// NormalizeWhitespace collapses runs of whitespace (including newlines and
// non-breaking spaces) to a single space and trims both ends.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// StripMarkup removes HTML markup and returns the visible text with pieces
// joined by single spaces. An empty input yields "".
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "<") {
		return NormalizeWhitespace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// Malformed fragments still need best-effort cleanup.
		return NormalizeWhitespace(tagPattern.ReplaceAllString(s, " "))
	}
	doc.Find("script, style").Remove()

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := NormalizeWhitespace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// NormalizeTitle removes parenthetical asides from a job title and
// normalizes the remaining whitespace.
func NormalizeTitle(s string) string {
	return NormalizeWhitespace(parentheticalAside.ReplaceAllString(s, " "))
}
