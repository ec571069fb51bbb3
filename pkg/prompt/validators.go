package prompt

import (
	"strings"
	"unicode"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
)

// Validator checks a (possibly defaulted) prompt response.
// A nil return accepts the response.
type Validator func(string) error

// truthy and falsy answers accepted by Boolean, lower-cased
var booleanAnswers = map[string]bool{
	"yes": true, "y": true, "true": true, "t": true, "1": true,
	"no": false, "n": false, "false": false, "f": false, "0": false,
}

// Boolean accepts yes/y/true/t/1 and no/n/false/f/0, case-insensitive
func Boolean(s string) error {
	if _, ok := booleanAnswers[strings.ToLower(s)]; !ok {
		return errors.Newf(errors.ErrInvalidInput, "%q is not a yes/no answer", s)
	}
	return nil
}

// ParseBool converts a response accepted by Boolean into its value
func ParseBool(s string) (bool, error) {
	v, ok := booleanAnswers[strings.ToLower(s)]
	if !ok {
		return false, errors.Newf(errors.ErrInvalidInput, "%q is not a yes/no answer", s)
	}
	return v, nil
}

// Identifier accepts legal identifiers: a letter or underscore followed by
// letters, digits or underscores
func Identifier(s string) error {
	if s == "" {
		return errors.New(errors.ErrInvalidInput, "an identifier must not be empty")
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if unicode.IsDigit(r) {
			if i == 0 {
				return errors.Newf(errors.ErrInvalidInput, "%q is not a valid identifier: it may not start with a digit", s)
			}
			continue
		}
		return errors.Newf(errors.ErrInvalidInput, "%q is not a valid identifier: invalid character %q", s, r)
	}
	return nil
}

// Lowercase accepts input that contains no uppercase letters
func Lowercase(s string) error {
	if strings.ToLower(s) != s {
		return errors.Newf(errors.ErrInvalidInput, "%q must be all lowercase", s)
	}
	return nil
}

// NonEmpty accepts any input of length > 0
func NonEmpty(s string) error {
	if len(s) == 0 {
		return errors.New(errors.ErrInvalidInput, "a value is required")
	}
	return nil
}

// ModuleName accepts all-lowercase identifiers of at most 20 characters
// that contain no underscore
func ModuleName(s string) error {
	if err := Identifier(s); err != nil {
		return err
	}
	if err := Lowercase(s); err != nil {
		return err
	}
	if strings.ContainsRune(s, '_') {
		return errors.Newf(errors.ErrInvalidInput, "%q may not contain an underscore", s)
	}
	if len(s) > 20 {
		return errors.Newf(errors.ErrInvalidInput, "%q is longer than 20 characters", s)
	}
	return nil
}

// ClassName accepts identifiers whose first character is uppercase
func ClassName(s string) error {
	if err := Identifier(s); err != nil {
		return err
	}
	first := []rune(s)[0]
	if !unicode.IsUpper(first) {
		return errors.Newf(errors.ErrInvalidInput, "%q must start with an uppercase letter", s)
	}
	return nil
}
