package questionnaire

import "fmt"

// ValidationError describes a single structural problem in a catalogue.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a questionnaire for structural validity. A non-empty
// result is fatal: scoring over a malformed catalogue would silently
// produce a wrong score.
func Validate(q *Questionnaire) []ValidationError {
	var errs []ValidationError

	pillarIDs := make(map[string]bool, len(q.Pillars))
	for i, p := range q.Pillars {
		prefix := fmt.Sprintf("pillars[%d]", i)
		if p.ID == "" {
			errs = append(errs, ValidationError{prefix + ".id", "required"})
		} else if pillarIDs[p.ID] {
			errs = append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", p.ID)})
		}
		pillarIDs[p.ID] = true
		if p.Name == "" {
			errs = append(errs, ValidationError{prefix + ".name", "required"})
		}
	}

	questionIDs := make(map[string]bool, len(q.Questions))
	for i, qu := range q.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if qu.ID == "" {
			errs = append(errs, ValidationError{prefix + ".id", "required"})
		} else if questionIDs[qu.ID] {
			errs = append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", qu.ID)})
		}
		questionIDs[qu.ID] = true
		if qu.Text == "" {
			errs = append(errs, ValidationError{prefix + ".text", "required"})
		}
		if qu.Pillar == "" {
			errs = append(errs, ValidationError{prefix + ".pillar", "required"})
		} else if !pillarIDs[qu.Pillar] {
			errs = append(errs, ValidationError{prefix + ".pillar", fmt.Sprintf("unknown pillar: %q", qu.Pillar)})
		}
		if qu.Weight < 0 {
			errs = append(errs, ValidationError{prefix + ".weight", fmt.Sprintf("must not be negative, got %v", qu.Weight)})
		}
		if qu.RiskPoints < 0 {
			errs = append(errs, ValidationError{prefix + ".risk_points", fmt.Sprintf("must not be negative, got %d", qu.RiskPoints)})
		}
	}

	return errs
}
