// Package scoring implements the assessment scoring engine. It is
// deliberately dependency-free: Compute is a pure transform from a
// questionnaire and an answer set to a Result, so the terminal summary,
// the charts, the PDF and the email all render from one computation.
package scoring

import (
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/questionnaire"
)

// AnswerSet maps question IDs to the user's yes/no answers. Entries may
// be missing; an unanswered question is scored as unsafe. A control
// nobody vouched for cannot count as in place, and keeping the
// denominator fixed keeps partially answered sessions comparable.
type AnswerSet map[string]bool

// PillarScore is the weighted score for one pillar. Score and MaxScore
// are in weight units; Percent converts to the 0-100 scale the charts
// and report sections use.
type PillarScore struct {
	PillarID    string  `json:"pillar_id"`
	Name        string  `json:"name"`
	Explanation string  `json:"explanation,omitempty"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"max_score"`
}

// Percent returns the pillar score on a 0-100 scale. A pillar with no
// weighted questions scores 100: nothing was asked, so nothing is missing.
func (p PillarScore) Percent() float64 {
	if p.MaxScore == 0 {
		return 100
	}
	return 100 * p.Score / p.MaxScore
}

// Result is the complete outcome of one assessment.
type Result struct {
	OverallScore    float64       `json:"overall_score"`
	RiskPoints      int           `json:"risk_points"`
	MaxRiskPoints   int           `json:"max_risk_points"`
	RiskPercentage  float64       `json:"risk_percentage"`
	RiskLevel       RiskLevel     `json:"risk_level"`
	Pillars         []PillarScore `json:"pillars"`
	Recommendations []string      `json:"recommendations"`
}

// Compute scores an answer set against a questionnaire. It is
// deterministic and side-effect free: the CLI calls it once and every
// output surface renders the same Result.
//
// Pillars keep questionnaire declaration order regardless of answer
// order, and Recommendations keep question declaration order, one entry
// per unsafely answered question.
func Compute(q *questionnaire.Questionnaire, answers AnswerSet) Result {
	pillars := make([]PillarScore, len(q.Pillars))
	index := make(map[string]*PillarScore, len(q.Pillars))
	for i, p := range q.Pillars {
		pillars[i] = PillarScore{PillarID: p.ID, Name: p.Name, Explanation: p.Explanation}
		index[p.ID] = &pillars[i]
	}

	var safeWeight, maxWeight float64
	var riskPoints, maxRiskPoints int
	var recs []string

	for _, qu := range q.Questions {
		maxWeight += qu.Weight
		maxRiskPoints += qu.RiskPoints

		// Validation rejects dangling pillar references before scoring;
		// the nil check keeps Compute total on unvalidated input.
		ps := index[qu.Pillar]
		if ps != nil {
			ps.MaxScore += qu.Weight
		}

		if isSafe(qu, answers) {
			safeWeight += qu.Weight
			if ps != nil {
				ps.Score += qu.Weight
			}
			continue
		}
		riskPoints += qu.RiskPoints
		recs = append(recs, qu.Recommendation)
	}

	// Zero-weight catalogues score 0, not a division fault.
	var overall float64
	if maxWeight > 0 {
		overall = 100 * safeWeight / maxWeight
	}
	var riskPct float64
	if maxRiskPoints > 0 {
		riskPct = 100 * float64(riskPoints) / float64(maxRiskPoints)
	}

	return Result{
		OverallScore:    overall,
		RiskPoints:      riskPoints,
		MaxRiskPoints:   maxRiskPoints,
		RiskPercentage:  riskPct,
		RiskLevel:       ClassifyRisk(riskPct),
		Pillars:         pillars,
		Recommendations: recs,
	}
}

func isSafe(q questionnaire.Question, answers AnswerSet) bool {
	got, answered := answers[q.ID]
	return answered && got == q.SafeAnswerValue()
}
