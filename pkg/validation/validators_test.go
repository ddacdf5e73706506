package validation_test

import (
	"testing"

	"go-ishop-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestStartsWithUpper(t *testing.T) {
	assert.True(t, validation.StartsWithUpper("Mac Book"))
	assert.True(t, validation.StartsWithUpper("Ștefan")) // non-ASCII upper-case letter
	assert.False(t, validation.StartsWithUpper("macBook Air"))
	assert.False(t, validation.StartsWithUpper("1Phone"))
	assert.False(t, validation.StartsWithUpper(""))
}

func TestIsLettersAndSpaces(t *testing.T) {
	assert.True(t, validation.IsLettersAndSpaces("Ana Maria"))
	assert.True(t, validation.IsLettersAndSpaces("Ion"))
	assert.False(t, validation.IsLettersAndSpaces("Ana-Maria"))
	assert.False(t, validation.IsLettersAndSpaces("Ana2"))
}

func TestRegisteredTags(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	type form struct {
		Name string `validate:"starts_upper,letters_spaces,interior_space"`
	}

	assert.NoError(t, v.Struct(form{Name: "Mac Book"}))
	assert.Error(t, v.Struct(form{Name: "MacBook"}), "missing interior space")
	assert.Error(t, v.Struct(form{Name: "macBook Air"}), "lower-case first letter")
	// Empty values pass the custom tags; required-ness is a separate rule
	assert.NoError(t, v.Struct(form{Name: ""}))
}
