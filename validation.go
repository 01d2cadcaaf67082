package warehouse

import (
	"regexp"
	"strings"
	"unicode"
)

// Field validators. Every mutation entry point runs these eagerly before
// touching any state; the first failure aborts the whole operation.

var (
	phoneRe = regexp.MustCompile(`^[0-9]{11}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func validatePhone(value string) error {
	if !phoneRe.MatchString(value) {
		return &ValidationError{Field: "phone", Reason: "must be exactly 11 digits"}
	}
	return nil
}

func validateContact(value string) error {
	if !phoneRe.MatchString(value) {
		return &ValidationError{Field: "contact", Reason: "must be exactly 11 digits"}
	}
	return nil
}

func validateEmail(value string) error {
	if !emailRe.MatchString(value) {
		return &ValidationError{Field: "email", Reason: "invalid email format"}
	}
	return nil
}

// validateWord checks the shared rule for names and cities: at least two
// characters, no digit characters.
func validateWord(field, value string) error {
	if len([]rune(value)) < 2 {
		return &ValidationError{Field: field, Reason: "must be at least 2 characters long"}
	}
	if strings.ContainsFunc(value, unicode.IsDigit) {
		return &ValidationError{Field: field, Reason: "should not contain numbers"}
	}
	return nil
}

func validateName(value string) error         { return validateWord("name", value) }
func validateCity(value string) error         { return validateWord("city", value) }
func validateCustomerName(value string) error { return validateWord("customer name", value) }

func validateShippingInfo(value string) error {
	if len([]rune(value)) < 10 {
		return &ValidationError{Field: "shipping info", Reason: "must be at least 10 characters long"}
	}
	return nil
}

func validateOrderQuantity(value int) error {
	if value <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be greater than 0"}
	}
	return nil
}
