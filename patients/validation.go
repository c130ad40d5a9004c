package patients

import (
	"fmt"
	"regexp"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/hospital-mgmt/frontdesk/errors"
)

const (
	MessageRequiredFields  = "Please fill in all required fields"
	MessageFutureBirthDate = "Date of birth cannot be in the future"
	MessageInvalidBirth    = "Please enter a valid date of birth"
	MessageInvalidEmail    = "Please enter a valid email address"
)

// Rules are heuristics rather than hard invariants (they reject centenarians past the
// limit and some unusual addresses), so both are configurable.
type Rules struct {
	MaxAgeYears  int    `envconfig:"FRONTDESK_PATIENT_MAX_AGE_YEARS" default:"150"`
	EmailPattern string `envconfig:"FRONTDESK_PATIENT_EMAIL_PATTERN" default:"^[^\\s\\p{Z}\\v\\x{FEFF}@]+@[^\\s\\p{Z}\\v\\x{FEFF}@]+\\.[^\\s\\p{Z}\\v\\x{FEFF}@]+$"`
}

// DefaultEmailPattern rejects Unicode space separators, vertical tab and the byte order
// mark as well as ASCII whitespace.
const DefaultEmailPattern = `^[^\s\p{Z}\v\x{FEFF}@]+@[^\s\p{Z}\v\x{FEFF}@]+\.[^\s\p{Z}\v\x{FEFF}@]+$`

func DefaultRules() Rules {
	return Rules{
		MaxAgeYears:  150,
		EmailPattern: DefaultEmailPattern,
	}
}

func LoadRules() (Rules, error) {
	rules := Rules{}
	if err := envconfig.Process("", &rules); err != nil {
		return rules, err
	}
	return rules, nil
}

type Validator struct {
	maxAgeYears int
	email       *regexp.Regexp
}

func NewValidator(rules Rules) (*Validator, error) {
	email, err := regexp.Compile(rules.EmailPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid email pattern: %w", err)
	}
	return &Validator{
		maxAgeYears: rules.MaxAgeYears,
		email:       email,
	}, nil
}

func (v *Validator) IsValidEmail(email string) bool {
	return v.email.MatchString(email)
}

// Validate checks a trimmed draft and stops at the first failing rule.
func (v *Validator) Validate(d Draft, now time.Time) error {
	if d.FirstName == "" || d.LastName == "" || d.DateOfBirth == "" || d.Gender == "" {
		return errors.NewValidationError(MessageRequiredFields)
	}

	dob, err := ParseDate(d.DateOfBirth)
	if err != nil {
		return errors.NewValidationError(MessageInvalidBirth)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dob.After(today) {
		return errors.NewValidationError(MessageFutureBirthDate)
	}
	if AgeAt(dob, now) > v.maxAgeYears {
		return errors.NewValidationError(MessageInvalidBirth)
	}

	if d.Email != "" && !v.IsValidEmail(d.Email) {
		return errors.NewValidationError(MessageInvalidEmail)
	}

	return nil
}
