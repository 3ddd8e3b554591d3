package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Course code as printed in the catalog, e.g. "CHEM 101" or "math100a"
	CourseCodePattern = `^[A-Za-z]{2,6}\s*\d{1,4}[A-Za-z]?$`

	// Course identifier: two letter domain prefix plus suffix, e.g. MA0410, MAANY, MACHEM
	CourseIDPattern = `^[A-Z]{2}[A-Z0-9]{1,14}$`

	// CourseCodeMaxLength bounds free-text entries
	CourseCodeMaxLength = 32
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
	CourseID   *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
	CourseID:   regexp.MustCompile(CourseIDPattern),
}

// StringValidation checks one string against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}
	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// IsCourseCode reports whether s looks like a catalog course code
func IsCourseCode(s string) bool {
	return NewStringValidation(strings.TrimSpace(s)).
		WithMaxLength(CourseCodeMaxLength).
		WithPattern(CompiledPatterns.CourseCode).
		Validate()
}

// IsCourseID reports whether s is a well-formed course identifier or wildcard
func IsCourseID(s string) bool {
	return NewStringValidation(s).
		WithPattern(CompiledPatterns.CourseID).
		Validate()
}

// RegisterCustomValidations adds the course tags to a validator instance
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("coursecode", func(fl validator.FieldLevel) bool {
		return IsCourseCode(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("courseid", func(fl validator.FieldLevel) bool {
		return IsCourseID(fl.Field().String())
	})
}
