package classify

import "strings"

// Canonical job types.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeRemote     = "Remote"
	JobTypeHybrid     = "Hybrid"
	JobTypeInternship = "Internship"
	JobTypeOther      = "Other"
)

var jobTypeRules = []struct {
	jobType  string
	keywords []string
}{
	{JobTypeFullTime, []string{"full-time", "full time", "tiempo completo"}},
	{JobTypePartTime, []string{"part-time", "part time", "medio tiempo"}},
	{JobTypeContract, []string{"contract", "contrato", "freelance"}},
	{JobTypeRemote, []string{"remote", "remoto", "work from home"}},
	{JobTypeHybrid, []string{"hybrid", "híbrido", "hibrido"}},
	{JobTypeInternship, []string{"internship", "pasantía", "pasantia", "intern"}},
}

// JobType normalizes a free-text employment type, consulting the
// description when the type field itself is inconclusive.
func JobType(typeText, description string) string {
	for _, source := range []string{typeText, description} {
		text := strings.ToLower(source)
		if strings.TrimSpace(text) == "" {
			continue
		}
		for _, rule := range jobTypeRules {
			for _, kw := range rule.keywords {
				if strings.Contains(text, kw) {
					return rule.jobType
				}
			}
		}
	}
	return JobTypeOther
}
