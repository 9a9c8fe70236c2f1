package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/simonhull/firebird-suite/wren/input"
)

var (
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	numberPattern  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// MinLength rejects values shorter than n characters.
func MinLength(n int) input.Validator {
	return func(value string) string {
		if utf8.RuneCountInString(value) < n {
			return fmt.Sprintf("Must be at least %d characters", n)
		}
		return ""
	}
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int) input.Validator {
	return func(value string) string {
		if utf8.RuneCountInString(value) > n {
			return fmt.Sprintf("Must be at most %d characters", n)
		}
		return ""
	}
}

// Matches rejects values that do not match re, with message msg.
func Matches(re *regexp.Regexp, msg string) input.Validator {
	return func(value string) string {
		if !re.MatchString(value) {
			return msg
		}
		return ""
	}
}

// Email accepts values shaped like user@host.tld.
func Email() input.Validator {
	return Matches(emailPattern, "Invalid email format")
}

// Integer accepts optionally signed whole numbers.
func Integer() input.Validator {
	return Matches(integerPattern, "Must be a valid integer")
}

// Number accepts optionally signed integers and decimals.
func Number() input.Validator {
	return Matches(numberPattern, "Must be a valid number")
}

// IntBetween accepts integers in the closed range [lo, hi].
func IntBetween(lo, hi int) input.Validator {
	return func(value string) string {
		n, err := strconv.Atoi(value)
		if err != nil || n < lo || n > hi {
			return fmt.Sprintf("Must be between %d and %d", lo, hi)
		}
		return ""
	}
}

// Positive accepts decimal numbers greater than zero.
func Positive() input.Validator {
	return func(value string) string {
		if !numberPattern.MatchString(value) {
			return "Must be a positive number"
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return "Must be a positive number"
		}
		return ""
	}
}

// OneOf accepts one of choices, ignoring case.
func OneOf(choices ...string) input.Validator {
	return func(value string) string {
		for _, c := range choices {
			if strings.EqualFold(value, c) {
				return ""
			}
		}
		return "Must be one of: " + strings.Join(choices, ", ")
	}
}

// Alpha accepts letters only.
func Alpha() input.Validator {
	return every(unicode.IsLetter, "Must contain only letters")
}

// Alphanumeric accepts letters and digits only.
func Alphanumeric() input.Validator {
	return every(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}, "Must contain only letters and digits")
}

// HasUpper requires at least one upper-case letter.
func HasUpper() input.Validator {
	return some(unicode.IsUpper, "Must contain at least one uppercase letter")
}

// HasDigit requires at least one digit.
func HasDigit() input.Validator {
	return some(unicode.IsDigit, "Must contain at least one number")
}

// Chain combines validators; the first rejection wins.
func Chain(validators ...input.Validator) input.Validator {
	return func(value string) string {
		for _, v := range validators {
			if msg := v(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

func every(pred func(rune) bool, msg string) input.Validator {
	return func(value string) string {
		for _, r := range value {
			if !pred(r) {
				return msg
			}
		}
		return ""
	}
}

func some(pred func(rune) bool, msg string) input.Validator {
	return func(value string) string {
		if strings.IndexFunc(value, pred) < 0 {
			return msg
		}
		return ""
	}
}

// WithMessage replaces the rejection message of v with msg.
func WithMessage(v input.Validator, msg string) input.Validator {
	return func(value string) string {
		if v(value) != "" {
			return msg
		}
		return ""
	}
}
