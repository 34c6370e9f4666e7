// Package answers reads completed answer files for non-interactive runs.
package answers

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/questionnaire"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/report"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/scoring"
)

// File is a saved answer set plus the participant details for the report.
// The answer map may be partial; unanswered questions score as unsafe.
type File struct {
	FilePath string `yaml:"-"`

	Participant report.Participant `yaml:"participant"`
	Answers     scoring.AnswerSet  `yaml:"answers"`
}

// Load reads an answers file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("answers.Load: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("answers.Load: parse %s: %w", path, err)
	}
	f.FilePath = path
	return &f, nil
}

// Unknown returns answer IDs that no question in the catalogue declares,
// sorted for stable error messages. An unknown ID would otherwise be
// silently ignored by scoring.
func (f *File) Unknown(q *questionnaire.Questionnaire) []string {
	known := make(map[string]bool, len(q.Questions))
	for _, qu := range q.Questions {
		known[qu.ID] = true
	}
	var unknown []string
	for id := range f.Answers {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}
