package cadastro

import (
	"fmt"
	"regexp"
	"strings"
)

// maxFieldLength bounds every free-text form field.
const maxFieldLength = 100

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	phonePattern = regexp.MustCompile(`^\(?\d{2}\)?[\s-]?\d{4,5}-?\d{4}$`)
)

// ValidationError reports a rejected form field. The UI checks for it to
// highlight the offending field inline instead of showing a generic failure.
type ValidationError struct {
	Field  string // Form field that was rejected.
	Reason string // Human-readable reason shown next to the field.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Sanitize trims the surrounding whitespace form entries tend to carry.
func Sanitize(value string) string {
	return strings.TrimSpace(value)
}

// ValidEmail reports whether the address matches the accepted pattern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether the number matches the accepted layout,
// with or without separators.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// validateName enforces the shared rules for required name fields.
func validateName(field string, name string) error {
	if name == "" {
		return &ValidationError{Field: field, Reason: "obrigatório"}
	}
	if len([]rune(name)) > maxFieldLength {
		return &ValidationError{Field: field, Reason: "muito longo"}
	}
	return nil
}

// validatePhone enforces the optional-phone rule: empty is fine, anything
// else must hold a valid number once the mask characters are stripped.
func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if !ValidPhone(digits) {
		return &ValidationError{Field: "telefone", Reason: "telefone inválido"}
	}
	return nil
}

// validateEmail enforces the optional-email rule: empty is fine, anything
// else must match the pattern.
func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if !ValidEmail(email) {
		return &ValidationError{Field: "email", Reason: "email inválido"}
	}
	return nil
}
