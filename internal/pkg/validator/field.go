package validator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Messages returned by the field validators.
const (
	MsgNameRequired        = "Name is required."
	MsgNameTooShort        = "Name must be at least 2 characters long."
	MsgDateOfBirthRequired = "Date of birth is required."
	MsgDateOfBirthFuture   = "Date of birth cannot be in the future."
	MsgEmailRequired       = "Email is required."
	MsgEmailInvalid        = "Invalid email format."
	MsgPhoneRequired       = "Phone number is required."
	MsgPhoneInvalid        = "Invalid phone number format."
)

const nameMinLength = 2

// formSpace is the browser whitespace set: ASCII \s plus VT, the Zs
// category, the line/paragraph separators and the BOM.
const formSpace = `\s\v\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	reEmail = regexp.MustCompile(`^[^` + formSpace + `@]+@[^` + formSpace + `@]+\.[^` + formSpace + `@]+$`)
	rePhone = regexp.MustCompile(`^\+?\d{10,15}$`)
)

// ValidateName returns an empty string when name is acceptable.
//
// The required check trims whitespace, the length check does not: " A" passes
// while "A" does not.
func ValidateName(name string) string {
	if strings.TrimFunc(name, isFormSpace) == "" {
		return MsgNameRequired
	}

	if utf16Len(name) < nameMinLength {
		return MsgNameTooShort
	}

	return ""
}

// ValidateDateOfBirth returns an empty string when dateOfBirth is not after today.
//
// Text that cannot be parsed as a date on either side never compares as
// "after", so it passes.
func ValidateDateOfBirth(dateOfBirth, today string) string {
	if dateOfBirth == "" {
		return MsgDateOfBirthRequired
	}

	if DateAfter(dateOfBirth, today) {
		return MsgDateOfBirthFuture
	}

	return ""
}

// ValidateEmail returns an empty string when email looks like local@domain.tld.
func ValidateEmail(email string) string {
	if email == "" {
		return MsgEmailRequired
	}

	if !reEmail.MatchString(email) {
		return MsgEmailInvalid
	}

	return ""
}

// ValidatePhoneNumber returns an empty string for an optional "+" followed by
// 10 to 15 digits.
func ValidatePhoneNumber(phoneNumber string) string {
	if phoneNumber == "" {
		return MsgPhoneRequired
	}

	if !rePhone.MatchString(phoneNumber) {
		return MsgPhoneInvalid
	}

	return ""
}

func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
