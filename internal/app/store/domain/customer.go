package domain

import (
	"regexp"
	"strings"
)

// Egyptian mobile numbers: carrier prefix plus eight digits.
var phonePattern = regexp.MustCompile(`^(010|011|012|015)\d{8}$`)

// CustomerInfo is the checkout form: who the order is for and where it goes.
type CustomerInfo struct {
	Name           string
	Phone          string
	Address        string
	AdditionalInfo string
}

// FieldErrors maps a form field to one validation message each.
// It is empty for a valid form.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range []string{"name", "phone", "address"} {
		if msg, ok := fe[field]; ok {
			parts = append(parts, field+": "+msg)
		}
	}
	return "invalid customer info: " + strings.Join(parts, "; ")
}

// Validate checks the form and returns one message per offending field.
// A nil error means every field passed.
func (ci CustomerInfo) Validate() error {
	errs := make(FieldErrors)

	if !validName(ci.Name) {
		errs["name"] = "name must contain at least two words of 3 or more characters"
	}
	if !phonePattern.MatchString(ci.Phone) {
		errs["phone"] = "phone number must start with 010, 011, 012, or 015 and be 11 digits long"
	}
	if len(strings.TrimSpace(ci.Address)) < 5 {
		errs["address"] = "address must be at least 5 characters"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validName(name string) bool {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return false
	}
	for _, token := range tokens {
		if len([]rune(token)) < 3 {
			return false
		}
	}
	return true
}
