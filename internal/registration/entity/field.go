package entity

import (
	"errors"
	"strings"
)

// ErrFieldUnknown is reported when a caller names a field the form does not have.
var ErrFieldUnknown = errors.New("registration: form field is unknown")

// Field identifies one input of the registration form.
type Field int8

const (
	// FieldUnknown is mean the field is not known / not set.
	FieldUnknown Field = 0

	// FieldName is the person's name.
	FieldName Field = 1

	// FieldDateOfBirth is the person's date of birth.
	FieldDateOfBirth Field = 2

	// FieldEmail is the contact email address.
	FieldEmail Field = 3

	// FieldPhoneNumber is the contact phone number.
	FieldPhoneNumber Field = 4
)

// Fields lists the form fields in display order.
func Fields() []Field {
	return []Field{FieldName, FieldDateOfBirth, FieldEmail, FieldPhoneNumber}
}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDateOfBirth:
		return "date_of_birth"
	case FieldEmail:
		return "email"
	case FieldPhoneNumber:
		return "phone_number"
	default:
		return "unknown"
	}
}

func (f Field) IsUnknown() bool {
	switch f {
	case FieldName, FieldDateOfBirth, FieldEmail, FieldPhoneNumber:
		return false
	default:
		return true
	}
}

// FieldFromString accepts the snake_case wire names and the camelCase names
// front-end forms tend to use.
func FieldFromString(s string) Field {
	switch strings.TrimSpace(s) {
	case "name":
		return FieldName
	case "date_of_birth", "dateOfBirth":
		return FieldDateOfBirth
	case "email":
		return FieldEmail
	case "phone_number", "phoneNumber":
		return FieldPhoneNumber
	default:
		return FieldUnknown
	}
}
