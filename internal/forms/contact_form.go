package forms

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"go-ishop-backend/internal/domain"
	"go-ishop-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired       = "This field is required."
	msgStartsUpper    = "The text must start with an upper-case letter."
	msgLettersSpaces  = "The text may contain only letters and spaces."
	msgInvalidEmail   = "Enter a valid e-mail address."
	msgEmailMismatch  = "The e-mail addresses do not match."
	msgUnderage       = "You must be of legal age to send a message."
	msgWordCount      = "The message must contain between 5 and 100 words."
	msgNoLinks        = "The message cannot contain links."
	msgSignature      = "The last word of the message must be your first name (signature)."
	msgInvalidDate    = "Enter a valid date (YYYY-MM-DD)."
	msgInvalidChoice  = "Select a valid message type."
	msgInvalidInteger = "Enter a whole number."
	msgMinWaitDays    = "The waiting period must be at least 1 day."
)

// birthDateLayout is the wire format of the birth_date field.
const birthDateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

// checkNameField runs the field-level battery for name-like text fields
// (first_name, last_name, subject): required-ness, capitalization and
// character class. The character rules are skipped when an optional field is
// empty. Returns whether the value passed every check, which cross-field
// rules use to decide if the value is available to them.
func checkNameField(errs Errors, field, value string, required bool) bool {
	if value == "" {
		if required {
			errs.Add(field, msgRequired)
			return false
		}
		return true
	}

	ok := true
	if !validation.StartsWithUpper(value) {
		errs.Add(field, msgStartsUpper)
		ok = false
	}
	if !validation.IsLettersAndSpaces(value) {
		errs.Add(field, msgLettersSpaces)
		ok = false
	}
	return ok
}

// ParseContactForm validates a raw contact submission and either returns the
// normalized record or the full set of violated rules keyed by field. Every
// field-level and cross-field check runs; nothing short-circuits except
// where a dependent value did not parse. The reference time is injected so
// the age rules are testable.
func ParseContactForm(values url.Values, today time.Time) (*domain.ContactSubmission, Errors) {
	errs := Errors{}

	firstName := strings.TrimSpace(values.Get("first_name"))
	lastName := strings.TrimSpace(values.Get("last_name"))
	email := strings.TrimSpace(values.Get("email"))
	confirmEmail := strings.TrimSpace(values.Get("confirm_email"))
	messageType := strings.TrimSpace(values.Get("message_type"))
	subject := strings.TrimSpace(values.Get("subject"))
	rawMinWait := strings.TrimSpace(values.Get("min_wait_days"))
	rawBirthDate := strings.TrimSpace(values.Get("birth_date"))
	message := values.Get("message")

	firstNameOK := checkNameField(errs, "first_name", firstName, true)
	checkNameField(errs, "last_name", lastName, false)
	checkNameField(errs, "subject", subject, true)

	checkEmailField(errs, "email", email)
	checkEmailField(errs, "confirm_email", confirmEmail)

	if messageType == "" {
		errs.Add("message_type", msgRequired)
	} else if !slices.Contains(domain.MessageTypes, messageType) {
		errs.Add("message_type", msgInvalidChoice)
	}

	minWaitDays := 0
	if rawMinWait == "" {
		errs.Add("min_wait_days", msgRequired)
	} else if n, err := strconv.Atoi(rawMinWait); err != nil {
		errs.Add("min_wait_days", msgInvalidInteger)
	} else if n < 1 {
		errs.Add("min_wait_days", msgMinWaitDays)
	} else {
		minWaitDays = n
	}

	var birthDate *time.Time
	if rawBirthDate != "" {
		t, err := time.Parse(birthDateLayout, rawBirthDate)
		if err != nil {
			errs.Add("birth_date", msgInvalidDate)
		} else {
			birthDate = &t
		}
	}

	if strings.TrimSpace(message) == "" {
		errs.Add("message", msgRequired)
	}

	// Cross-field checks. Each runs independently of the field-level
	// outcomes above, on whatever values did parse.
	if email != "" && confirmEmail != "" && email != confirmEmail {
		errs.Add("confirm_email", msgEmailMismatch)
	}

	if birthDate != nil && AgeYears(today, *birthDate) < 18 {
		errs.Add("birth_date", msgUnderage)
	}

	normalized := NormalizeWhitespace(message)
	if normalized != "" {
		words := Words(normalized)
		if len(words) < 5 || len(words) > 100 {
			errs.Add("message", msgWordCount)
		}

		tokens := strings.Fields(normalized)
		for _, tok := range tokens {
			if strings.HasPrefix(tok, "http://") || strings.HasPrefix(tok, "https://") {
				errs.Add("message", msgNoLinks)
				break
			}
		}

		// Signature check runs only when first_name itself is available.
		if firstNameOK && firstName != "" && len(tokens) > 0 &&
			!strings.EqualFold(tokens[len(tokens)-1], firstName) {
			errs.Add("message", msgSignature)
		}
	}

	if !errs.Empty() {
		return nil, errs
	}

	return &domain.ContactSubmission{
		FirstName:   firstName,
		LastName:    lastName,
		BirthDate:   birthDate,
		Email:       email,
		MessageType: messageType,
		Subject:     subject,
		MinWaitDays: minWaitDays,
		Message:     normalized,
	}, nil
}

func checkEmailField(errs Errors, field, value string) {
	if value == "" {
		errs.Add(field, msgRequired)
		return
	}
	if err := validate.Var(value, "email"); err != nil {
		errs.Add(field, msgInvalidEmail)
	}
}
