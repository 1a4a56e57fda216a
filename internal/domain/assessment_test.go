package domain

import "testing"

func TestAssessmentValidate(t *testing.T) {
	t.Parallel()

	for _, a := range Assessments {
		if err := a.Validate(); err != nil {
			t.Errorf("Expected %q to be valid, got %v", a, err)
		}
	}

	for _, bad := range []Assessment{"", "Easy", "again", "impossible"} {
		if err := bad.Validate(); err != ErrInvalidAssessment {
			t.Errorf("Expected %q to fail with %v, got %v", bad, ErrInvalidAssessment, err)
		}
	}
}
