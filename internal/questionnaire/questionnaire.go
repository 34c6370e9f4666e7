// Package questionnaire handles loading, hashing, and validating the
// assessment question catalogue.
package questionnaire

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// BuiltinName is the pseudo file name reported for the embedded catalogue.
const BuiltinName = "builtin/default.yaml"

// Questionnaire is the full question catalogue for one assessment.
// Pillar and question order in the file is the order used everywhere:
// prompts, breakdowns, charts, and recommendations.
type Questionnaire struct {
	FilePath string `yaml:"-"`
	Hash     string `yaml:"-"`

	Version   int        `yaml:"version"`
	Pillars   []Pillar   `yaml:"pillars"`
	Questions []Question `yaml:"questions"`
}

// Pillar is a thematic grouping of questions, e.g. Identify or Protect.
type Pillar struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Explanation string `yaml:"explanation"`
}

// Question is a single yes/no control check.
type Question struct {
	ID             string  `yaml:"id"`
	Pillar         string  `yaml:"pillar"`
	Text           string  `yaml:"text"`
	SafeAnswer     *bool   `yaml:"safe_answer"`
	Weight         float64 `yaml:"weight"`
	RiskPoints     int     `yaml:"risk_points"`
	Recommendation string  `yaml:"recommendation"`
}

// SafeAnswerValue returns the answer that represents good practice.
// Catalogues that omit the field get the original default of yes.
func (q Question) SafeAnswerValue() bool {
	if q.SafeAnswer == nil {
		return true
	}
	return *q.SafeAnswer
}

// Load reads a questionnaire file and computes its SHA-256 hash.
func Load(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questionnaire.Load: %w", err)
	}
	q, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("questionnaire.Load: parse %s: %w", path, err)
	}
	q.FilePath = path
	return q, nil
}

// LoadBuiltin loads the embedded default catalogue.
func LoadBuiltin() (*Questionnaire, error) {
	data, err := builtinFS.ReadFile(BuiltinName)
	if err != nil {
		return nil, fmt.Errorf("questionnaire.LoadBuiltin: %w", err)
	}
	q, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("questionnaire.LoadBuiltin: %w", err)
	}
	q.FilePath = BuiltinName
	return q, nil
}

func parse(data []byte) (*Questionnaire, error) {
	var q Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, err
	}
	h := sha256.Sum256(data)
	q.Hash = fmt.Sprintf("sha256:%x", h)
	return &q, nil
}

// PillarByID returns the pillar with the given id, or false when no
// pillar declares it.
func (q *Questionnaire) PillarByID(id string) (Pillar, bool) {
	for _, p := range q.Pillars {
		if p.ID == id {
			return p, true
		}
	}
	return Pillar{}, false
}
