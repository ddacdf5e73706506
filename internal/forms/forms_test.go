package forms_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"go-ishop-backend/internal/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference date so the age rules are deterministic.
var today = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func validContactValues() url.Values {
	return url.Values{
		"first_name":    {"John"},
		"last_name":     {"Doe"},
		"birth_date":    {"1990-04-12"},
		"email":         {"john@example.com"},
		"confirm_email": {"john@example.com"},
		"message_type":  {"question"},
		"subject":       {"Delivery question"},
		"min_wait_days": {"3"},
		"message":       {"Hello there my good friend John"},
	}
}

func TestContactFormValid(t *testing.T) {
	sub, errs := forms.ParseContactForm(validContactValues(), today)
	require.Nil(t, errs)
	require.NotNil(t, sub)

	assert.Equal(t, "John", sub.FirstName)
	assert.Equal(t, "Doe", sub.LastName)
	assert.Equal(t, "question", sub.MessageType)
	assert.Equal(t, 3, sub.MinWaitDays)
	assert.Equal(t, "Hello there my good friend John", sub.Message)
	require.NotNil(t, sub.BirthDate)
	assert.Equal(t, 1990, sub.BirthDate.Year())
}

func TestContactFormOptionalFields(t *testing.T) {
	values := validContactValues()
	values.Del("last_name")
	values.Del("birth_date")

	sub, errs := forms.ParseContactForm(values, today)
	require.Nil(t, errs)
	assert.Empty(t, sub.LastName)
	assert.Nil(t, sub.BirthDate)
}

func TestContactFormRequiredFields(t *testing.T) {
	for _, field := range []string{"first_name", "email", "confirm_email", "message_type", "subject", "min_wait_days", "message"} {
		t.Run(field, func(t *testing.T) {
			values := validContactValues()
			values.Del(field)
			_, errs := forms.ParseContactForm(values, today)
			require.NotNil(t, errs)
			assert.True(t, errs.Has(field), "expected an error on %s", field)
		})
	}
}

func TestContactFormNameRules(t *testing.T) {
	t.Run("lower-case first letter", func(t *testing.T) {
		values := validContactValues()
		values.Set("first_name", "john")
		// Keep the signature consistent so only the name rule fires there
		_, errs := forms.ParseContactForm(values, today)
		require.NotNil(t, errs)
		assert.Len(t, errs["first_name"], 1)
	})

	t.Run("digits rejected, both rules reported", func(t *testing.T) {
		values := validContactValues()
		values.Set("subject", "2nd opinion 4u")
		_, errs := forms.ParseContactForm(values, today)
		require.NotNil(t, errs)
		assert.Len(t, errs["subject"], 2)
	})

	t.Run("optional empty last_name skips character rules", func(t *testing.T) {
		values := validContactValues()
		values.Set("last_name", "")
		_, errs := forms.ParseContactForm(values, today)
		assert.Nil(t, errs)
	})
}

func TestContactFormEmailMismatch(t *testing.T) {
	t.Run("exactly one error on confirm_email", func(t *testing.T) {
		values := validContactValues()
		values.Set("confirm_email", "other@example.com")
		_, errs := forms.ParseContactForm(values, today)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"The e-mail addresses do not match."}, errs["confirm_email"])
	})

	t.Run("reported independently of other invalid fields", func(t *testing.T) {
		values := validContactValues()
		values.Set("confirm_email", "other@example.com")
		values.Set("subject", "lowercase")
		values.Set("min_wait_days", "0")
		_, errs := forms.ParseContactForm(values, today)
		require.NotNil(t, errs)
		assert.Len(t, errs["confirm_email"], 1)
		assert.True(t, errs.Has("subject"))
		assert.True(t, errs.Has("min_wait_days"))
	})
}

func TestContactFormAgeBoundary(t *testing.T) {
	t.Run("exactly 18 today passes", func(t *testing.T) {
		values := validContactValues()
		values.Set("birth_date", "2008-08-31")
		_, errs := forms.ParseContactForm(values, today)
		assert.Nil(t, errs)
	})

	t.Run("one day short of 18 fails", func(t *testing.T) {
		values := validContactValues()
		values.Set("birth_date", "2008-09-01")
		_, errs := forms.ParseContactForm(values, today)
		require.NotNil(t, errs)
		assert.True(t, errs.Has("birth_date"))
	})

	t.Run("malformed date", func(t *testing.T) {
		values := validContactValues()
		values.Set("birth_date", "31/08/2008")
		_, errs := forms.ParseContactForm(values, today)
		require.NotNil(t, errs)
		assert.True(t, errs.Has("birth_date"))
	})
}

func messageOfWords(n int, signature string) string {
	words := make([]string, 0, n)
	for len(words) < n-1 {
		words = append(words, "word")
	}
	words = append(words, signature)
	return strings.Join(words, " ")
}

func TestContactFormWordCountBoundary(t *testing.T) {
	cases := []struct {
		words int
		ok    bool
	}{
		{4, false},
		{5, true},
		{100, true},
		{101, false},
	}
	for _, tc := range cases {
		values := validContactValues()
		values.Set("message", messageOfWords(tc.words, "John"))
		_, errs := forms.ParseContactForm(values, today)
		if tc.ok {
			assert.Nil(t, errs, "%d words should pass", tc.words)
		} else {
			require.NotNil(t, errs, "%d words should fail", tc.words)
			assert.True(t, errs.Has("message"))
		}
	}
}

func TestContactFormLinkScan(t *testing.T) {
	values := validContactValues()
	values.Set("message", "Please visit https://spam.example.com right away John")
	_, errs := forms.ParseContactForm(values, today)
	require.NotNil(t, errs)
	assert.Contains(t, errs["message"], "The message cannot contain links.")

	// Case-sensitive prefix match: an upper-case scheme is not flagged
	values.Set("message", "Please visit HTTPS://spam.example.com right away John")
	_, errs = forms.ParseContactForm(values, today)
	assert.Nil(t, errs)
}

func TestContactFormSignature(t *testing.T) {
	t.Run("case-insensitive trailing match", func(t *testing.T) {
		values := validContactValues()
		values.Set("first_name", "John")
		values.Set("message", "Hello there my good friend john")
		_, errs := forms.ParseContactForm(values, today)
		assert.Nil(t, errs)
	})

	t.Run("name mismatch fails", func(t *testing.T) {
		values := validContactValues()
		values.Set("first_name", "Jon")
		values.Set("message", "Hello there my good friend John")
		_, errs := forms.ParseContactForm(values, today)
		require.NotNil(t, errs)
		assert.True(t, errs.Has("message"))
	})

	t.Run("skipped when first_name failed its own checks", func(t *testing.T) {
		values := validContactValues()
		values.Set("first_name", "john2")
		_, errs := forms.ParseContactForm(values, today)
		require.NotNil(t, errs)
		assert.True(t, errs.Has("first_name"))
		assert.False(t, errs.Has("message"))
	})
}

func TestContactFormNormalizesMessage(t *testing.T) {
	values := validContactValues()
	values.Set("message", "  Hello\n\nthere my\t good   friend John ")
	sub, errs := forms.ParseContactForm(values, today)
	require.Nil(t, errs)
	assert.Equal(t, "Hello there my good friend John", sub.Message)
}

func TestNormalizeWhitespaceIdempotent(t *testing.T) {
	raw := "  Hello\n\nthere my\t good   friend John "
	once := forms.NormalizeWhitespace(raw)
	assert.Equal(t, once, forms.NormalizeWhitespace(once))
}

func TestAgeMonths(t *testing.T) {
	birth := time.Date(1990, time.November, 20, 0, 0, 0, 0, time.UTC)
	// (8 - 11) mod 12 = 9; the day-of-month never enters the formula
	assert.Equal(t, 9, forms.AgeMonths(today, birth))

	sameMonth := time.Date(1990, time.August, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, forms.AgeMonths(today, sameMonth))
}

func validProductValues() url.Values {
	return url.Values{
		"name":                {"Mac Book"},
		"price":               {"100"},
		"discount_percentage": {"20"},
		"extra_stock":         {"5"},
	}
}

func TestProductFormValid(t *testing.T) {
	draft, errs := forms.ParseProductForm(validProductValues())
	require.Nil(t, errs)
	assert.Equal(t, "Mac Book", draft.Name)
	assert.Equal(t, 100.0, draft.Price)
	assert.Equal(t, 20.0, draft.DiscountPercentage)
	assert.Equal(t, 5, draft.ExtraStock)
}

func TestProductFormOptionalDefaults(t *testing.T) {
	values := validProductValues()
	values.Del("discount_percentage")
	values.Del("extra_stock")
	draft, errs := forms.ParseProductForm(values)
	require.Nil(t, errs)
	assert.Zero(t, draft.DiscountPercentage)
	assert.Zero(t, draft.ExtraStock)
}

func TestProductFormNameRules(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"Mac Book", true},
		{"MacBook", false},     // no interior space
		{"macBook Air", false}, // lower-case first letter
		{"Ip 4", true},
		{"Ip", false}, // too short
	}
	for _, tc := range cases {
		values := validProductValues()
		values.Set("name", tc.name)
		_, errs := forms.ParseProductForm(values)
		if tc.ok {
			assert.Nil(t, errs, "%q should pass", tc.name)
		} else {
			require.NotNil(t, errs, "%q should fail", tc.name)
			assert.True(t, errs.Has("name"))
		}
	}
}

func TestProductFormPriceRules(t *testing.T) {
	values := validProductValues()
	values.Set("price", "9.99")
	_, errs := forms.ParseProductForm(values)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"The price must be at least 10."}, errs["price"])

	values.Set("price", "ten")
	_, errs = forms.ParseProductForm(values)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("price"))
}

func TestProductFormRangeRules(t *testing.T) {
	values := validProductValues()
	values.Set("discount_percentage", "120")
	values.Set("extra_stock", "-1")
	_, errs := forms.ParseProductForm(values)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("discount_percentage"))
	assert.True(t, errs.Has("extra_stock"))
}
