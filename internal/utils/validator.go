package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// emailRegex mirrors the client-side check exactly so both ends agree on what
// a well-formed address looks like.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phonePHRegex accepts Philippine numbers with an optional +63 or 0 prefix,
// applied after stripping whitespace.
var phonePHRegex = regexp.MustCompile(`^(\+63|0)?[0-9]{10}$`)

func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})

	_ = Validate.RegisterValidation("phone_ph", func(fl validator.FieldLevel) bool {
		stripped := strings.Join(strings.Fields(fl.Field().String()), "")
		return phonePHRegex.MatchString(stripped)
	})
}
