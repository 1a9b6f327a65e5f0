package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var validFrequencies = []string{"realtime", "hourly", "daily", "weekly"}

func ValidateString(value string, minLength int, maxLength int) error {
	n := utf8.RuneCountInString(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}
	
	return nil
}

// ValidateRequiredText rejects empty and whitespace-only values.
func ValidateRequiredText(value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("must not be empty")
	}
	
	return ValidateString(value, 1, maxLength)
}

func ValidateEmail(value string) error {
	if err := ValidateString(value, 3, 200); err != nil {
		return err
	}
	
	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("is not a valid email address")
	}
	
	return nil
}

func ValidateFrequency(value string) error {
	for _, f := range validFrequencies {
		if value == f {
			return nil
		}
	}
	
	return fmt.Errorf("must be one of %s", strings.Join(validFrequencies, ", "))
}
