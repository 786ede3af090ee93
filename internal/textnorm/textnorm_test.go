package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Already clean", "Backend Developer", "Backend Developer"},
		{"Collapses spaces", "Backend    Developer", "Backend Developer"},
		{"Collapses newlines and tabs", "Backend\n\tDeveloper\r\n", "Backend Developer"},
		{"Trims ends", "  Backend Developer  ", "Backend Developer"},
		{"Non-breaking spaces", "Backend Developer", "Backend Developer"},
		{"Whitespace only", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeWhitespace(tt.input))
		})
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Plain text untouched", "We need Python experience", "We need Python experience"},
		{"Simple tags", "<p>We need <b>Python</b> experience</p>", "We need Python experience"},
		{"Block elements joined by spaces", "<div>Requirements</div><div>5 years of Go</div>", "Requirements 5 years of Go"},
		{"List items", "<ul><li>Python</li><li>Django</li></ul>", "Python Django"},
		{"Script contents removed", "<p>Apply now</p><script>alert(1)</script>", "Apply now"},
		{"Broken markup still cleaned", "Senior <b Developer", "Senior"},
		{"Entities decoded", "<p>Design &amp; build APIs</p>", "Design & build APIs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkup(tt.input))
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"No aside", "Senior Python Developer", "Senior Python Developer"},
		{"Removes parenthetical aside", "Senior Python Developer (Remote)", "Senior Python Developer"},
		{"Aside in the middle", "Developer (m/f/d) Backend", "Developer Backend"},
		{"Multiple asides", "Dev (Remote) (LATAM)", "Dev"},
		{"Whitespace after removal", "  Developer   (Hybrid)  ", "Developer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTitle(tt.input))
		})
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		term     string
		expected bool
	}{
		{"Exact word", "java developer", "java", true},
		{"Not inside longer word", "javascript developer", "java", false},
		{"Case insensitive", "Java Developer", "java", true},
		{"Punctuation boundary", "experience with java, go", "java", true},
		{"Symbol-edged term", "knows c++ well", "c++", true},
		{"Empty text", "", "java", false},
		{"Empty term", "java", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsWord(tt.text, tt.term))
		})
	}
}
