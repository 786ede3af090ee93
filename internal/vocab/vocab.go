// Package vocab holds the keyword vocabularies that drive every heuristic
// classifier in the pipeline. Vocabularies load from a YAML file so keyword
// content stays swappable configuration; a missing or malformed file
// degrades to the built-in defaults rather than failing the run.
package vocab

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// KeywordGroup is one named entry in a priority-ordered cascade: the first
// group whose keywords match wins, so slice order is load-bearing.
type KeywordGroup struct {
	Name     string   `yaml:"name" validate:"required"`
	Keywords []string `yaml:"keywords"`
}

// CountryEntry maps a canonical country to its metro-area and alias
// keywords. The country's own name is always an implicit keyword.
type CountryEntry struct {
	Name    string   `yaml:"name" validate:"required"`
	Aliases []string `yaml:"aliases"`
}

// SkillVocab configures the skill extractor: category name to member terms.
// Extraction runs over the union of all members.
type SkillVocab struct {
	Categories []KeywordGroup `yaml:"categories" validate:"dive"`
}

// SeniorityVocab configures the seniority classifier. Tiers are evaluated
// in declared order (highest tier first); FallbackRoles are the generic
// technical-role nouns that map to Mid when no tier matches.
type SeniorityVocab struct {
	Tiers         []KeywordGroup `yaml:"tiers" validate:"dive"`
	FallbackRoles []string       `yaml:"fallback_roles"`
}

// GeoVocab configures country resolution for job locations.
type GeoVocab struct {
	Countries        []CountryEntry `yaml:"countries" validate:"dive"`
	RemoteIndicators []string       `yaml:"remote_indicators"`
}

// CompanyVocab configures the four company-enrichment cascades.
type CompanyVocab struct {
	Sizes      []KeywordGroup `yaml:"sizes" validate:"dive"`
	Industries []KeywordGroup `yaml:"industries" validate:"dive"`
	Countries  []CountryEntry `yaml:"countries" validate:"dive"`
	Types      []KeywordGroup `yaml:"types" validate:"dive"`
}

// Vocabularies is the full configuration consumed by the pipeline.
type Vocabularies struct {
	Skills    SkillVocab     `yaml:"skills"`
	Sectors   []KeywordGroup `yaml:"sectors" validate:"dive"`
	Seniority SeniorityVocab `yaml:"seniority"`
	Geo       GeoVocab       `yaml:"geo"`
	Company   CompanyVocab   `yaml:"company"`
}

// Load reads vocabularies from a YAML file. Callers are expected to fall
// back to Defaults() when it fails; the error carries the reason so the
// degradation can be logged once.
func Load(path string) (*Vocabularies, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var v Vocabularies
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary YAML %s: %w", path, err)
	}

	if err := validator.New().Struct(&v); err != nil {
		return nil, fmt.Errorf("invalid vocabulary config %s: %w", path, err)
	}

	return &v, nil
}

// LoadOrDefaults loads the file when a path is given and returns the
// built-in defaults (plus the load error, for one-time logging) otherwise.
func LoadOrDefaults(path string) (*Vocabularies, error) {
	if path == "" {
		return Defaults(), nil
	}
	v, err := Load(path)
	if err != nil {
		return Defaults(), err
	}
	return v, nil
}
