package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents a request to analyze resume text against a job.
// Exactly one of Role, JobDescription, or JobURL selects the job input.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	Role           string `json:"role,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// FeedbackRequest represents a user feedback submission.
type FeedbackRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Category string `json:"category" validate:"required,oneof=accuracy suggestions usability other"`
	Comment  string `json:"comment,omitempty" validate:"max=2000"`
	Helpful  bool   `json:"helpful"`
}

// Validate validates the AnalyzeRequest using the validator and checks that
// exactly one job input is set.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}

	set := 0
	for _, v := range []string{r.Role, r.JobDescription, r.JobURL} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of 'role', 'job_description', or 'job_url' must be provided")
	}
	return nil
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
