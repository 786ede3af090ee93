package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/jobmarket/internal/types"
)

// UpsertResult reports what the sink did with one record.
type UpsertResult struct {
	ConflictResolved bool
}

// ErrSkillReplace marks a skills-replacement failure on a job row that was
// itself stored successfully. Sinks wrap it so the batch driver can keep
// the record counted as accepted.
var ErrSkillReplace = errors.New("skill replacement failed")

// UpsertSink is the storage boundary for enriched records. UpsertJob must
// resolve conflicts on the record's identity key (last write wins) and
// replace the record's skill set as a unit, never merging old and new.
type UpsertSink interface {
	Ping(ctx context.Context) error
	UpsertJob(ctx context.Context, rec *types.EnrichedRecord) (UpsertResult, error)
	UpsertCompany(ctx context.Context, profile types.CompanyProfile) error
}

// BatchSummary is the caller-owned accumulator for one batch invocation.
type BatchSummary struct {
	Processed         int `json:"processed"`
	Accepted          int `json:"accepted"`
	Duplicates        int `json:"duplicates"`
	Dropped           int `json:"dropped"`
	Failed            int `json:"failed"`
	ConflictsResolved int `json:"conflicts_resolved"`
}

func (s *BatchSummary) String() string {
	return fmt.Sprintf("processed=%d accepted=%d duplicates=%d dropped=%d failed=%d conflicts=%d",
		s.Processed, s.Accepted, s.Duplicates, s.Dropped, s.Failed, s.ConflictsResolved)
}

// Add merges another summary into this one.
func (s *BatchSummary) Add(other BatchSummary) {
	s.Processed += other.Processed
	s.Accepted += other.Accepted
	s.Duplicates += other.Duplicates
	s.Dropped += other.Dropped
	s.Failed += other.Failed
	s.ConflictsResolved += other.ConflictsResolved
}

// Run processes a batch of raw records and feeds the survivors to the sink.
// An unreachable sink aborts before any record is processed; after that,
// individual upsert failures are logged with the record's identity key and
// the batch continues. The returned summary is owned by the caller and
// scoped to this invocation.
func (p *Pipeline) Run(ctx context.Context, records []types.RawRecord, sink UpsertSink) (*BatchSummary, error) {
	if err := sink.Ping(ctx); err != nil {
		return nil, fmt.Errorf("sink unreachable, aborting batch: %w", err)
	}

	summary := &BatchSummary{}
	for _, raw := range records {
		summary.Processed++

		res := p.Process(raw)
		switch res.Drop {
		case DropDuplicate:
			summary.Duplicates++
			continue
		case DropMissingFields:
			summary.Dropped++
			log.Printf("dropped record %q: %s", raw.Title, res.Detail)
			continue
		}

		rec := res.Record
		upsert, err := sink.UpsertJob(ctx, rec)
		if err != nil {
			if errors.Is(err, ErrSkillReplace) {
				// Job row landed; only the child skills failed.
				log.Printf("skills not replaced for %s (%q): %v", rec.IdentityKey, rec.Title, err)
			} else {
				summary.Failed++
				log.Printf("upsert failed for %s (%q): %v", rec.IdentityKey, rec.Title, err)
				continue
			}
		}

		summary.Accepted++
		if upsert.ConflictResolved {
			summary.ConflictsResolved++
		}

		if err := sink.UpsertCompany(ctx, rec.Company); err != nil {
			log.Printf("company upsert failed for %q: %v", rec.Company.Name, err)
		}
	}

	return summary, nil
}
