// Package validpkg provides the pure validation predicates of the ledger
// and the validator instance built on top of them.
package validpkg

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/dmunera/cajero/internal/domain"
)

// Local part restricted to lowercase letters/digits/._%+-, domain to
// lowercase letters/digits/.-, literal .com suffix required.
var emailComRE = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.com$`)

// ParseAmount parses raw as a strict base-10 integer after trimming.
func ParseAmount(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidAmount
	}

	return n, nil
}

// IsValidMultiple reports whether raw parses as a positive integer
// divisible by domain.AmountStep.
func IsValidMultiple(raw string) bool {
	n, err := ParseAmount(raw)

	return err == nil && n > 0 && n%domain.AmountStep == 0
}

// IsValidPersonName reports whether text is non-empty after trimming and,
// once interior spaces are removed, consists solely of letters.
func IsValidPersonName(text string) bool {
	t := strings.ReplaceAll(strings.TrimSpace(text), " ", "")
	if t == "" {
		return false
	}

	for _, r := range t {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

// IsValidComEmail reports whether text, trimmed and lowercased, matches the
// accepted local-part@domain.com shape.
func IsValidComEmail(text string) bool {
	return emailComRE.MatchString(strings.ToLower(strings.TrimSpace(text)))
}

// IsDigits reports whether text is non-empty and contains only ASCII digits.
func IsDigits(text string) bool {
	if text == "" {
		return false
	}

	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// New returns a validator with the ledger's custom tags registered.
func New() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("cedula", func(fl validator.FieldLevel) bool {
		return IsDigits(fl.Field().String())
	})

	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return IsValidPersonName(fl.Field().String())
	})

	_ = v.RegisterValidation("comemail", func(fl validator.FieldLevel) bool {
		return IsValidComEmail(fl.Field().String())
	})

	return v
}
