// Package validator holds the registration form rules and the struct
// validation used by handlers and module wiring.
//
// The field functions (ValidateName, ValidateDateOfBirth, ValidateEmail,
// ValidatePhoneNumber) are pure: they return an empty string when the input is
// acceptable and a user-facing English message otherwise. They keep no state
// and are safe to call from any goroutine.
//
// Business code that validates whole structs should depend on the Validator
// interface. V10Validator (go-playground/validator v10) exposes the field rules
// as the person_name, birth_date, contact_email and phone_number tags and
// reports failures with the same messages.
package validator
