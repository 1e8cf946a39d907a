// internal/utils/validator.go
package utils

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("ru_phone", validatePhone)
	validate.RegisterValidation("storefront_password", validatePassword)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// NormalizePhone strips everything except digits. Phones are stored and
// compared in this form only; formatted input ("+7 (912) 000-00-00") is a
// presentation concern.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Accepts 10 or 11 digits after normalization (with or without the
// leading country code).
func validatePhone(fl validator.FieldLevel) bool {
	digits := NormalizePhone(fl.Field().String())
	return len(digits) == 10 || len(digits) == 11
}

// At least 6 characters with a latin letter and a special symbol.
func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 6 {
		return false
	}

	var hasLatin, hasSymbol bool

	for _, char := range password {
		switch {
		case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z':
			hasLatin = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSymbol = true
		}
	}

	return hasLatin && hasSymbol
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "ru_phone":
		return "Phone must contain 10 or 11 digits"
	case "storefront_password":
		return "Password must be at least 6 characters with a latin letter and a special symbol"
	default:
		return e.Field() + " is invalid"
	}
}
