// Package pipeline orchestrates the extraction-transform stages that turn
// raw scraped records into enriched, identity-stamped records ready for
// upsert, and drives batches of them into a storage sink.
package pipeline

import (
	"strings"
	"time"

	"github.com/jonathan/jobmarket/internal/classify"
	"github.com/jonathan/jobmarket/internal/enrich"
	"github.com/jonathan/jobmarket/internal/geo"
	"github.com/jonathan/jobmarket/internal/identity"
	"github.com/jonathan/jobmarket/internal/skills"
	"github.com/jonathan/jobmarket/internal/textnorm"
	"github.com/jonathan/jobmarket/internal/types"
	"github.com/jonathan/jobmarket/internal/vocab"
)

// DropReason says why the pipeline emitted nothing for a record.
type DropReason string

const (
	// DropNone marks a successfully processed record.
	DropNone DropReason = ""
	// DropDuplicate marks a record whose identity key was already seen in
	// this run; first seen wins.
	DropDuplicate DropReason = "duplicate"
	// DropMissingFields marks a record lacking the mandatory identity
	// fields after cleaning.
	DropMissingFields DropReason = "missing_fields"
)

// Result is the outcome of processing one record: either an enriched record
// or a drop reason, never both.
type Result struct {
	Record *types.EnrichedRecord
	Drop   DropReason
	Detail string
}

// Pipeline applies the fixed stage order to records one at a time. The only
// cross-record state is the in-batch identity seen-set and the company
// enricher's memoization cache, both scoped to this instance. Instances are
// not safe for concurrent use; run one per collector stream.
type Pipeline struct {
	locations *geo.Resolver
	seniority *classify.SeniorityClassifier
	sectors   *classify.SectorClassifier
	extractor *skills.Extractor
	enricher  *enrich.CompanyEnricher

	seen map[string]struct{}
	now  func() time.Time
}

// New builds a pipeline over the given vocabularies.
func New(v *vocab.Vocabularies) *Pipeline {
	return &Pipeline{
		locations: geo.NewResolver(v.Geo),
		seniority: classify.NewSeniorityClassifier(v.Seniority),
		sectors:   classify.NewSectorClassifier(v.Sectors),
		extractor: skills.NewExtractor(v.Skills),
		enricher:  enrich.NewCompanyEnricher(v.Company),
		seen:      make(map[string]struct{}),
		now:       time.Now,
	}
}

// Process runs one raw record through the stage order:
// clean, identity/dedup, location/seniority/type, skills, company
// enrichment, sector precedence.
func (p *Pipeline) Process(raw types.RawRecord) Result {
	rec := p.clean(raw)

	if detail, ok := mandatoryFields(rec, raw.SourceID); !ok {
		return Result{Drop: DropMissingFields, Detail: detail}
	}

	rec.IdentityKey = identity.ComputeKey(rec.Title, rec.CompanyName, rec.Location, rec.SourcePlatform)
	if _, dup := p.seen[rec.IdentityKey]; dup {
		return Result{Drop: DropDuplicate, Detail: rec.IdentityKey}
	}
	p.seen[rec.IdentityKey] = struct{}{}

	p.normalize(&rec, raw)
	p.extractSkills(&rec)
	rec.Company = p.enricher.Enrich(rec.CompanyName)
	rec.Sector = classify.ResolveSector(
		p.sectors.Classify(rec.Title, rec.Description, rec.CompanyName),
		rec.Company.Industry,
	)

	return Result{Record: &rec}
}

// clean is stage 1: text normalization, timestamping, and the empty-company
// placeholder.
func (p *Pipeline) clean(raw types.RawRecord) types.EnrichedRecord {
	rec := types.EnrichedRecord{
		Title:          textnorm.NormalizeTitle(raw.Title),
		CompanyName:    textnorm.NormalizeWhitespace(raw.CompanyName),
		Location:       textnorm.NormalizeWhitespace(raw.Location),
		Description:    textnorm.StripMarkup(raw.Description),
		Requirements:   textnorm.StripMarkup(raw.Requirements),
		SalaryRange:    textnorm.NormalizeWhitespace(raw.SalaryRange),
		PostedDate:     strings.TrimSpace(raw.PostedDate),
		SourceURL:      strings.TrimSpace(raw.SourceURL),
		SourcePlatform: strings.TrimSpace(raw.SourcePlatform),
		ScrapedAt:      p.now(),
	}
	if rec.CompanyName == "" {
		rec.CompanyName = types.PlaceholderCompany
	}
	return rec
}

// mandatoryFields enforces the post-clean identity requirement: a title and
// at least one of company name, source URL, or stable source id.
func mandatoryFields(rec types.EnrichedRecord, sourceID string) (string, bool) {
	if rec.Title == "" {
		return "missing title", false
	}
	if rec.CompanyName == types.PlaceholderCompany && rec.SourceURL == "" && strings.TrimSpace(sourceID) == "" {
		return "missing company name, source url and source id", false
	}
	return "", true
}

// normalize is stage 3: country, seniority and job type. Values the
// collector already resolved are kept; the classifiers only fill gaps.
func (p *Pipeline) normalize(rec *types.EnrichedRecord, raw types.RawRecord) {
	rec.Country = strings.TrimSpace(raw.Country)
	if rec.Country == "" {
		if country, ok := p.locations.ResolveCountry(rec.Location, raw.SearchLocation); ok {
			rec.Country = country
		} else {
			rec.Country = strings.TrimSpace(raw.SearchLocation)
		}
	}

	rec.SeniorityLevel = strings.TrimSpace(raw.SeniorityLevel)
	if rec.SeniorityLevel == "" || rec.SeniorityLevel == "N/A" {
		rec.SeniorityLevel = p.seniority.Classify(rec.Title, rec.Description)
	}

	rec.JobType = classify.JobType(raw.JobType, rec.Description)
}

// extractSkills is stage 4: scan title, description and requirements.
func (p *Pipeline) extractSkills(rec *types.EnrichedRecord) {
	text := rec.Title + " " + rec.Description + " " + rec.Requirements
	for _, name := range p.extractor.Extract(text) {
		rec.Skills = append(rec.Skills, types.Skill{
			Name:     name,
			Category: p.extractor.Categorize(name),
		})
	}
}
