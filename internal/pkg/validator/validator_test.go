package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co",
		"tag+filter@example.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"@example.com",
		"user@",
		"user@example",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("10-03-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2025-03-10T09:00:00+09:00")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2025-03-10T00:00:00Z")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2025-03-10 09:00")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	kinds := []string{"CHECK_IN", "CHECK_OUT"}
	assert.True(t, IsInSlice("CHECK_IN", kinds))
	assert.False(t, IsInSlice("check_in", kinds))
	assert.False(t, IsInSlice("", kinds))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "Email is required"},
		{Field: "password", Message: "Password is required"},
	}

	assert.Equal(t, "email: Email is required; password: Password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "Email is required",
		"password": "Password is required",
	}, errs.ToMap())
}
