// Package report defines the assessment report envelope and its text
// renderings. A Report is everything downstream surfaces need: who took
// the assessment, which catalogue was used, and the computed result.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/scoring"
)

// ToolName identifies this tool in report output.
const ToolName = "cybercheck"

// Participant holds the details entered at the start of an assessment.
type Participant struct {
	Name     string `json:"name" yaml:"name"`
	Business string `json:"business" yaml:"business"`
	Email    string `json:"email" yaml:"email"`
}

// Input records which questionnaire produced the result.
type Input struct {
	QuestionnaireFile string `json:"questionnaire_file"`
	QuestionnaireHash string `json:"questionnaire_hash"`
}

// Report is the top-level output object.
type Report struct {
	Tool        string         `json:"tool"`
	Version     string         `json:"version"`
	ReportID    string         `json:"report_id"`
	Generated   time.Time      `json:"generated"`
	Input       Input          `json:"input"`
	Participant Participant    `json:"participant"`
	Result      scoring.Result `json:"result"`
}

// New stamps a report envelope around a computed result. The id and
// timestamp are fixed here, once per session, so repeated renderings of
// the same report (terminal, PDF, email) are byte-identical.
func New(version string, in Input, p Participant, res scoring.Result) *Report {
	return &Report{
		Tool:        ToolName,
		Version:     version,
		ReportID:    uuid.NewString(),
		Generated:   time.Now().UTC().Truncate(time.Second),
		Input:       in,
		Participant: p,
		Result:      res,
	}
}
