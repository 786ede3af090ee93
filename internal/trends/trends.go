// Package trends computes aggregate market metrics from persisted job
// records for the dashboard: top skills (overall, per country and per
// sector) plus sector and seniority distributions.
package trends

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/jobmarket/internal/db"
	"github.com/jonathan/jobmarket/internal/types"
)

// Metric names emitted by Aggregate.
const (
	MetricTopSkill      = "top_skill"
	MetricSectorJobs    = "sector_jobs"
	MetricSeniorityJobs = "seniority_jobs"
)

// topSkillLimit caps how many skill rows are emitted per scope.
const topSkillLimit = 50

// Aggregate computes the trend rows for one aggregation date. Output order
// is deterministic: counts descending, then metric value ascending.
func Aggregate(facts []db.JobFacts, date time.Time) []types.Trend {
	day := date.Truncate(24 * time.Hour)

	var out []types.Trend
	out = append(out, rankedCounts(skillCounts(facts, nil), MetricTopSkill, "", "", day, topSkillLimit)...)

	for _, country := range dimensionValues(facts, func(f db.JobFacts) string { return f.Country }) {
		counts := skillCounts(facts, func(f db.JobFacts) bool { return f.Country == country })
		out = append(out, rankedCounts(counts, MetricTopSkill, "", country, day, topSkillLimit)...)
	}

	for _, sector := range dimensionValues(facts, func(f db.JobFacts) string { return f.Sector }) {
		counts := skillCounts(facts, func(f db.JobFacts) bool { return f.Sector == sector })
		out = append(out, rankedCounts(counts, MetricTopSkill, sector, "", day, topSkillLimit)...)
	}

	sectors := make(map[string]int)
	seniorities := make(map[string]int)
	for _, f := range facts {
		if f.Sector != "" {
			sectors[f.Sector]++
		}
		if f.SeniorityLevel != "" {
			seniorities[f.SeniorityLevel]++
		}
	}
	out = append(out, rankedCounts(sectors, MetricSectorJobs, "", "", day, 0)...)
	out = append(out, rankedCounts(seniorities, MetricSeniorityJobs, "", "", day, 0)...)

	return out
}

func skillCounts(facts []db.JobFacts, include func(db.JobFacts) bool) map[string]int {
	counts := make(map[string]int)
	for _, f := range facts {
		if include != nil && !include(f) {
			continue
		}
		for _, s := range f.Skills {
			counts[s]++
		}
	}
	return counts
}

// dimensionValues collects the distinct non-empty values of one fact
// dimension, sorted for deterministic scope order.
func dimensionValues(facts []db.JobFacts, dim func(db.JobFacts) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range facts {
		if v := dim(f); v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// rankedCounts turns a count map into trend rows sorted by count descending
// then value ascending, truncated to limit when limit > 0.
func rankedCounts(counts map[string]int, metric, sector, country string, day time.Time, limit int) []types.Trend {
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] < values[j]
	})
	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}

	trends := make([]types.Trend, 0, len(values))
	for _, v := range values {
		trends = append(trends, types.Trend{
			Date:        day,
			MetricName:  metric,
			MetricValue: v,
			Count:       counts[v],
			Sector:      sector,
			Country:     country,
		})
	}
	return trends
}

// Updater reads job facts from the store and writes the aggregated trend
// rows back.
type Updater struct {
	store *db.DB
}

// NewUpdater builds an Updater over the store.
func NewUpdater(store *db.DB) *Updater {
	return &Updater{store: store}
}

// Run performs one aggregation pass for the given date and returns how many
// trend rows were written.
func (u *Updater) Run(ctx context.Context, date time.Time) (int, error) {
	facts, err := u.store.JobFactsForTrends(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load job facts: %w", err)
	}

	rows := Aggregate(facts, date)
	if err := u.store.UpsertTrends(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to store trends: %w", err)
	}
	return len(rows), nil
}
