package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// TemplateIDPattern matches catalog template identifiers such as
// "modern-professional": lowercase, hyphen-separated, bounded length.
var TemplateIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{1,40}$`)

// ResumeIDPattern matches saved resume identifiers in the format rsm_<id>
var ResumeIDPattern = regexp.MustCompile(`^rsm_[a-zA-Z0-9_-]{10,50}$`)

// ValidateTemplateID reports whether the value is a well-formed template id
func ValidateTemplateID(id string) error {
	if id == "" {
		return fmt.Errorf("template id is required")
	}
	if !TemplateIDPattern.MatchString(id) {
		return fmt.Errorf("invalid template id format: %s", id)
	}
	return nil
}

// ValidateResumeID reports whether the value is a well-formed resume id
func ValidateResumeID(id string) error {
	if id == "" {
		return fmt.Errorf("resume id is required")
	}
	if !ResumeIDPattern.MatchString(id) {
		return fmt.Errorf("invalid resume id format: %s", id)
	}
	return nil
}

// RegisterResumeValidators wires the custom field validators used by the
// resume request models into a validator instance.
func RegisterResumeValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("template_id", func(fl validator.FieldLevel) bool {
		return TemplateIDPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("resume_id", func(fl validator.FieldLevel) bool {
		return ResumeIDPattern.MatchString(fl.Field().String())
	})
}
