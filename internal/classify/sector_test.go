package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobmarket/internal/types"
	"github.com/jonathan/jobmarket/internal/vocab"
)

func TestSectorClassify(t *testing.T) {
	c := NewSectorClassifier(vocab.Defaults().Sectors)

	tests := []struct {
		name        string
		title       string
		description string
		company     string
		expected    string
	}{
		{"Fintech from title", "Payments Engineer", "", "Acme", "Fintech"},
		{"Fintech from company name", "Backend Developer", "", "Banco Galicia", "Fintech"},
		{"EdTech from description", "Developer", "build our e-learning platform", "Acme", "EdTech"},
		{"HealthTech", "Data Analyst", "clinic management software", "Acme", "HealthTech"},
		{"First configured sector wins", "fintech meets edtech", "", "", "Fintech"},
		{"Word boundary", "Skills: baking", "", "", SectorOther},
		{"No match", "Backend Developer", "build services", "Acme", SectorOther},
		{"Empty input", "", "", "", SectorOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.title, tt.description, tt.company))
		})
	}
}

func TestResolveSector(t *testing.T) {
	tests := []struct {
		name            string
		keywordSector   string
		companyIndustry string
		expected        string
	}{
		{"Keyword beats generic industry", "Fintech", types.CompanyIndustryDefault, "Fintech"},
		{"Keyword beats specific industry", "Fintech", "HealthTech", "Fintech"},
		{"Specific industry fallback", SectorOther, "EdTech", "EdTech"},
		{"Generic industry no fallback", SectorOther, types.CompanyIndustryDefault, SectorOther},
		{"Technology is generic", SectorOther, "Technology", SectorOther},
		{"Other industry no fallback", SectorOther, SectorOther, SectorOther},
		{"Empty industry", SectorOther, "", SectorOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveSector(tt.keywordSector, tt.companyIndustry))
		})
	}
}

func TestSectorEmptyVocabulary(t *testing.T) {
	c := NewSectorClassifier(nil)

	assert.Equal(t, SectorOther, c.Classify("Payments Engineer", "fintech", "Banco"))
}
