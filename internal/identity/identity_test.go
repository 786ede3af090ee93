package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeKeyStable(t *testing.T) {
	a := ComputeKey("Senior Python Developer", "Banco Fintech SA", "Buenos Aires, Argentina", "LinkedIn")
	b := ComputeKey("Senior Python Developer", "Banco Fintech SA", "Buenos Aires, Argentina", "LinkedIn")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestComputeKeyNormalizes(t *testing.T) {
	base := ComputeKey("Senior Python Developer", "Banco Fintech SA", "Buenos Aires, Argentina", "LinkedIn")

	tests := []struct {
		name     string
		title    string
		company  string
		location string
		platform string
	}{
		{"Case insensitive", "senior python developer", "BANCO FINTECH SA", "buenos aires, argentina", "linkedin"},
		{"Extra whitespace", "  Senior  Python\tDeveloper ", "Banco Fintech SA", "Buenos Aires,  Argentina", "LinkedIn"},
		{"Both", " SENIOR python  Developer", "banco FINTECH sa ", "Buenos aires, ARGENTINA", " LinkedIn "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, base, ComputeKey(tt.title, tt.company, tt.location, tt.platform))
		})
	}
}

func TestComputeKeyDistinguishesFields(t *testing.T) {
	base := ComputeKey("Senior Python Developer", "Banco Fintech SA", "Buenos Aires, Argentina", "LinkedIn")

	tests := []struct {
		name     string
		title    string
		company  string
		location string
		platform string
	}{
		{"Different title", "Junior Python Developer", "Banco Fintech SA", "Buenos Aires, Argentina", "LinkedIn"},
		{"Different company", "Senior Python Developer", "Banco Digital SA", "Buenos Aires, Argentina", "LinkedIn"},
		{"Different location", "Senior Python Developer", "Banco Fintech SA", "Cordoba, Argentina", "LinkedIn"},
		{"Different platform", "Senior Python Developer", "Banco Fintech SA", "Buenos Aires, Argentina", "Indeed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, ComputeKey(tt.title, tt.company, tt.location, tt.platform))
		})
	}
}

func TestComputeKeyNoBoundaryCollisions(t *testing.T) {
	// Concatenation across field boundaries must not collide: moving a
	// character from the end of one field to the start of the next changes
	// the key.
	a := ComputeKey("dev ab", "c corp", "lima", "x")
	b := ComputeKey("dev a", "bc corp", "lima", "x")
	assert.NotEqual(t, a, b)
}
