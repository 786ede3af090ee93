// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmarket/internal/pipeline"
	"github.com/jonathan/jobmarket/internal/types"
	"github.com/jonathan/jobmarket/internal/vocab"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBatchSummary outputs the outcome counts of one batch.
func (p *Printer) PrintBatchSummary(label string, summary *pipeline.BatchSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:    %s\n\n", label))
	sb.WriteString(fmt.Sprintf("Processed:          %d\n", summary.Processed))
	sb.WriteString(fmt.Sprintf("Accepted:           %d\n", summary.Accepted))
	sb.WriteString(fmt.Sprintf("Duplicates:         %d\n", summary.Duplicates))
	sb.WriteString(fmt.Sprintf("Dropped:            %d\n", summary.Dropped))
	sb.WriteString(fmt.Sprintf("Failed:             %d\n", summary.Failed))
	sb.WriteString(fmt.Sprintf("Conflicts resolved: %d", summary.ConflictsResolved))

	p.printBox("BATCH SUMMARY", sb.String())
}

// PrintRecord outputs a human-readable summary of one enriched record.
func (p *Printer) PrintRecord(rec *types.EnrichedRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", rec.Title))
	sb.WriteString(fmt.Sprintf("Company:   %s\n", rec.CompanyName))
	sb.WriteString(fmt.Sprintf("Country:   %s\n", rec.Country))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", rec.SeniorityLevel))
	sb.WriteString(fmt.Sprintf("Sector:    %s\n", rec.Sector))

	if len(rec.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(rec.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", rec.Skills[i].Name, rec.Skills[i].Category))
		}
		if len(rec.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Skills)-maxItemsToShow))
		}
	}

	p.printBox("ENRICHED RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVocabularyStats outputs the size of each loaded vocabulary so a
// misconfigured file is visible before the batch runs.
func (p *Printer) PrintVocabularyStats(v *vocab.Vocabularies) {
	if v == nil {
		return
	}

	skillTerms := 0
	for _, c := range v.Skills.Categories {
		skillTerms += len(c.Keywords)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill terms:       %d in %d categories\n", skillTerms, len(v.Skills.Categories)))
	sb.WriteString(fmt.Sprintf("Sectors:           %d\n", len(v.Sectors)))
	sb.WriteString(fmt.Sprintf("Seniority tiers:   %d\n", len(v.Seniority.Tiers)))
	sb.WriteString(fmt.Sprintf("Countries:         %d\n", len(v.Geo.Countries)))
	sb.WriteString(fmt.Sprintf("Company cascades:  %d sizes, %d industries",
		len(v.Company.Sizes), len(v.Company.Industries)))

	p.printBox("VOCABULARIES", sb.String())
}
