package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// isValidEmail checks the address format the same way request binding does
func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
