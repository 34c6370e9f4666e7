package scoring

// RiskLevel is the coarse classification of overall exposure.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Risk classification cutpoints on the 0-100 risk percentage. These are
// the single source of truth for every surface: terminal summary, charts,
// PDF, and email must all classify through ClassifyRisk.
const (
	mediumRiskThreshold = 33.0
	highRiskThreshold   = 66.0
)

// ClassifyRisk maps a 0-100 risk percentage to a risk level.
func ClassifyRisk(riskPercentage float64) RiskLevel {
	switch {
	case riskPercentage >= highRiskThreshold:
		return RiskHigh
	case riskPercentage >= mediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}
