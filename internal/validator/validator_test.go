package validator

import (
	"strings"
	"testing"
	
	"github.com/stretchr/testify/assert"
)

func TestValidateRequiredText(t *testing.T) {
	assert.NoError(t, ValidateRequiredText("hello", 10))
	assert.Error(t, ValidateRequiredText("", 10))
	assert.Error(t, ValidateRequiredText("   ", 10))
	assert.Error(t, ValidateRequiredText(strings.Repeat("a", 11), 10))
	assert.NoError(t, ValidateRequiredText("ñandú", 5))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail("user"))
	assert.Error(t, ValidateEmail("not an email"))
}

func TestValidateFrequency(t *testing.T) {
	for _, f := range []string{"realtime", "hourly", "daily", "weekly"} {
		assert.NoError(t, ValidateFrequency(f))
	}
	assert.Error(t, ValidateFrequency("monthly"))
	assert.Error(t, ValidateFrequency(""))
}
