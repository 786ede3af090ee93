package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobmarket/internal/pipeline"
	"github.com/jonathan/jobmarket/internal/types"
	"github.com/jonathan/jobmarket/internal/vocab"
)

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary("records.jsonl", &pipeline.BatchSummary{
		Processed:         10,
		Accepted:          7,
		Duplicates:        2,
		Dropped:           1,
		ConflictsResolved: 3,
	})

	out := buf.String()
	assert.Contains(t, out, "BATCH SUMMARY")
	assert.Contains(t, out, "records.jsonl")
	assert.Contains(t, out, "Processed:          10")
	assert.Contains(t, out, "Conflicts resolved: 3")
}

func TestPrintBatchSummaryNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary("x", nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecord(&types.EnrichedRecord{
		Title:          "Senior Python Developer",
		CompanyName:    "Banco Fintech SA",
		Country:        "Argentina",
		SeniorityLevel: "Senior",
		Sector:         "Fintech",
		Skills: []types.Skill{
			{Name: "Python", Category: "Programming Language"},
			{Name: "Django", Category: "Framework/Library"},
			{Name: "AWS", Category: "Cloud/DevOps"},
			{Name: "SQL", Category: "Database"},
			{Name: "Docker", Category: "Cloud/DevOps"},
			{Name: "Git", Category: "Version Control"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "ENRICHED RECORD")
	assert.Contains(t, out, "Senior Python Developer")
	assert.Contains(t, out, "• Python (Programming Language)")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintVocabularyStats(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintVocabularyStats(vocab.Defaults())

	out := buf.String()
	assert.Contains(t, out, "VOCABULARIES")
	assert.Contains(t, out, "Sectors:           5")
	assert.Contains(t, out, "Seniority tiers:   5")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	title := strings.Repeat("Very Long Title ", 10)
	p.PrintRecord(&types.EnrichedRecord{Title: title})

	out := buf.String()
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, title)
}
