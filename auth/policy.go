package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/kelseyhightower/envconfig"

	"github.com/hospital-mgmt/frontdesk/errors"
)

const (
	MessageFillAllFields    = "Please fill in all fields"
	MessageUsernameTooShort = "Username must be at least 3 characters long"
	MessagePasswordTooShort = "Password must be at least 8 characters long"
	MessagePasswordStrength = "Password must contain uppercase, lowercase, number and special character"
	MessagePasswordMismatch = "Passwords do not match"

	DefaultSpecialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

type Policy struct {
	MinUsernameLength int    `envconfig:"FRONTDESK_MIN_USERNAME_LENGTH" default:"3"`
	MinPasswordLength int    `envconfig:"FRONTDESK_MIN_PASSWORD_LENGTH" default:"8"`
	SpecialCharacters string `envconfig:"FRONTDESK_PASSWORD_SPECIAL_CHARACTERS" default:"!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"`
}

func DefaultPolicy() Policy {
	return Policy{
		MinUsernameLength: 3,
		MinPasswordLength: 8,
		SpecialCharacters: DefaultSpecialCharacters,
	}
}

func LoadPolicy() (Policy, error) {
	policy := Policy{}
	if err := envconfig.Process("", &policy); err != nil {
		return policy, err
	}
	return policy, nil
}

type LoginForm struct {
	Username string
	Password string
}

type RegistrationForm struct {
	Username string
	Password string
	Role     string
}

// ValidatePassword requires the minimum length and at least one upper case letter, lower
// case letter, digit and special character.
func (p Policy) ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < p.MinPasswordLength {
		return errors.NewValidationError(MessagePasswordTooShort)
	}

	var hasUpper, hasLower, hasNumber bool
	for _, r := range password {
		switch {
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case 'a' <= r && r <= 'z':
			hasLower = true
		case '0' <= r && r <= '9':
			hasNumber = true
		}
	}
	hasSpecial := strings.ContainsAny(password, p.SpecialCharacters)

	if !hasUpper || !hasLower || !hasNumber || !hasSpecial {
		return errors.NewValidationError(MessagePasswordStrength)
	}
	return nil
}

// ValidateRegistration applies the rules in order and reports only the first failure. The
// username is expected to be trimmed already.
func (p Policy) ValidateRegistration(form RegistrationForm, confirmPassword string) error {
	if form.Username == "" || form.Password == "" || form.Role == "" || confirmPassword == "" {
		return errors.NewValidationError(MessageFillAllFields)
	}
	if utf8.RuneCountInString(form.Username) < p.MinUsernameLength {
		return errors.NewValidationError(MessageUsernameTooShort)
	}
	if err := p.ValidatePassword(form.Password); err != nil {
		return err
	}
	if form.Password != confirmPassword {
		return errors.NewValidationError(MessagePasswordMismatch)
	}
	return nil
}
