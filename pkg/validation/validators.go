package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("starts_upper", StartsUpper)
	_ = v.RegisterValidation("letters_spaces", LettersSpaces)
	_ = v.RegisterValidation("interior_space", InteriorSpace)
}

// StartsUpper validates that a string begins with an upper-case letter
func StartsUpper(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return StartsWithUpper(val)
}

// LettersSpaces validates that a string contains only letters and whitespace
func LettersSpaces(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsLettersAndSpaces(val)
}

// InteriorSpace validates that a string contains at least one space between
// other characters ("Mac Book" passes, "MacBook" fails)
func InteriorSpace(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return strings.Contains(strings.TrimSpace(val), " ")
}

// StartsWithUpper reports whether the first rune of s is an upper-case letter.
func StartsWithUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// IsLettersAndSpaces reports whether s consists solely of letters and
// whitespace characters.
func IsLettersAndSpaces(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
