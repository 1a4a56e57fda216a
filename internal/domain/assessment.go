package domain

// Assessment represents the self-graded difficulty a user assigns to a card
// during a study session.
type Assessment string

// Possible assessment values.
const (
	AssessmentEasy   Assessment = "easy"
	AssessmentMedium Assessment = "medium"
	AssessmentHard   Assessment = "hard"
)

// Assessments lists all valid assessment values in display order.
var Assessments = []Assessment{AssessmentEasy, AssessmentMedium, AssessmentHard}

// Validate checks if the assessment is one of the allowed values.
func (a Assessment) Validate() error {
	switch a {
	case AssessmentEasy, AssessmentMedium, AssessmentHard:
		return nil
	default:
		return ErrInvalidAssessment
	}
}
