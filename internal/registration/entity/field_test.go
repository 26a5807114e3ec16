package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldFromString(t *testing.T) {
	tests := map[string]Field{
		"name":          FieldName,
		" email ":       FieldEmail,
		"date_of_birth": FieldDateOfBirth,
		"dateOfBirth":   FieldDateOfBirth,
		"phone_number":  FieldPhoneNumber,
		"phoneNumber":   FieldPhoneNumber,
		"":              FieldUnknown,
		"password":      FieldUnknown,
	}

	for in, want := range tests {
		assert.Equal(t, want, FieldFromString(in), in)
	}
}

func TestField_StringRoundTrip(t *testing.T) {
	for _, f := range Fields() {
		assert.False(t, f.IsUnknown())
		assert.Equal(t, f, FieldFromString(f.String()))
	}

	assert.True(t, FieldUnknown.IsUnknown())
	assert.True(t, Field(42).IsUnknown())
	assert.Equal(t, "unknown", Field(42).String())
}
