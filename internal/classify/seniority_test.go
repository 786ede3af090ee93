package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobmarket/internal/vocab"
)

func TestSeniorityClassify(t *testing.T) {
	c := NewSeniorityClassifier(vocab.Defaults().Seniority)

	tests := []struct {
		name        string
		title       string
		description string
		expected    string
	}{
		{"Explicit senior", "Senior Backend Engineer", "", TierSenior},
		{"Explicit beats fallback", "Senior Backend Engineer", "engineer role", TierSenior},
		{"Executive outranks lead", "CTO and Engineering Manager", "", TierExecutive},
		{"Lead outranks senior", "Lead Senior Developer", "", TierLeadManager},
		{"Junior explicit", "Junior QA Analyst", "", TierJunior},
		{"Mid explicit", "Desarrollador Intermedio", "", TierMid},
		{"Semi-senior reads as senior", "Semi-Senior Developer", "", TierSenior},
		{"Signal in description", "Backend Role", "we want a senior profile", TierSenior},
		{"Fallback generic engineer", "Backend Engineer", "", TierMid},
		{"Fallback generic developer", "Python Developer", "build things", TierMid},
		{"Spanish fallback role", "Desarrollador Backend", "", TierMid},
		{"Explicit trainee", "Trainee Developer Wanted", "", TierJunior},
		{"Unclassified", "Great Opportunity", "join our team", TierUnclassified},
		{"Empty input", "", "", TierUnclassified},
		{"Word boundary on sr", "srt encoder role", "", TierUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.title, tt.description))
		})
	}
}

func TestSeniorityTierOrderIsConfigurationOrder(t *testing.T) {
	// A title matching two tiers resolves to the one declared first.
	v := vocab.SeniorityVocab{
		Tiers: []vocab.KeywordGroup{
			{Name: "A", Keywords: []string{"alpha"}},
			{Name: "B", Keywords: []string{"beta"}},
		},
	}
	c := NewSeniorityClassifier(v)

	assert.Equal(t, "A", c.Classify("alpha beta", ""))
	assert.Equal(t, "B", c.Classify("beta only", ""))
}

func TestSeniorityEmptyVocabulary(t *testing.T) {
	c := NewSeniorityClassifier(vocab.SeniorityVocab{})

	assert.Equal(t, TierUnclassified, c.Classify("Senior Engineer", "anything"))
}
