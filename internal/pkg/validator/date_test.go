package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateIn(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "ISODate", input: "2000-01-31", want: time.Date(2000, time.January, 31, 0, 0, 0, 0, time.UTC)},
		{name: "ISOMonth", input: "2000-02", want: time.Date(2000, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{name: "ISOYear", input: "1999", want: time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Padded", input: "  2000-01-31 ", want: time.Date(2000, time.January, 31, 0, 0, 0, 0, time.UTC)},
		{name: "Zulu", input: "2024-01-01T10:00:00Z", want: time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)},
		{name: "Offset", input: "2024-01-01T10:00:00+07:00", want: time.Date(2024, time.January, 1, 3, 0, 0, 0, time.UTC)},
		{name: "OffsetNoSeconds", input: "2024-01-01T10:00-05:00", want: time.Date(2024, time.January, 1, 15, 0, 0, 0, time.UTC)},
		{name: "LocalDateTime", input: "2024-01-01T10:00", want: time.Date(2024, time.January, 1, 10, 0, 0, 0, loc)},
		{name: "LocalDateTimeSeconds", input: "2024-01-01T10:00:30.5", want: time.Date(2024, time.January, 1, 10, 0, 30, 500000000, loc)},
		{name: "LocalSpaceSeparator", input: "2024-01-01 10:00", want: time.Date(2024, time.January, 1, 10, 0, 0, 0, loc)},
		{name: "UnpaddedISO", input: "2024-1-2", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, loc)},
		{name: "Slashes", input: "2024/01/02", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, loc)},
		{name: "US", input: "01/02/2024", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, loc)},
		{name: "LongMonth", input: "January 2, 2024", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, loc)},
		{name: "ShortMonth", input: "Jan 2 2024", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, loc)},
		{name: "DayFirst", input: "2 January 2024", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, loc)},
		{name: "DateString", input: "Tue Jan 02 2024", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, loc)},
		{name: "RFC1123", input: "Tue, 02 Jan 2024 08:00:00 GMT", want: time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC)},
		{name: "DateToString", input: "Tue Jan 02 2024 10:00:00 GMT+0700", want: time.Date(2024, time.January, 2, 3, 0, 0, 0, time.UTC)},
		{name: "DateToStringZoneName", input: "Tue Jan 02 2024 10:00:00 GMT+0700 (Western Indonesia Time)", want: time.Date(2024, time.January, 2, 3, 0, 0, 0, time.UTC)},
		{name: "DateToStringZoneNameNegative", input: "Mon Jan 01 2024 22:00:00 GMT-0500 (Eastern Standard Time) ", want: time.Date(2024, time.January, 2, 3, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDateIn(tt.input, loc)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseDateIn_Invalid(t *testing.T) {
	inputs := []string{"", "   ", "hello", "2024-13-01", "2024-02-30", "2024-01-01T25:00", "31/12/2024", "2024-01-01T", "(UTC)", "hello (World)"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, ok := parseDateIn(in, time.UTC)
			assert.False(t, ok)
		})
	}
}

func TestDateAfter(t *testing.T) {
	assert.True(t, DateAfter("2024-01-02", "2024-01-01"))
	assert.True(t, DateAfter("2024-01-01T00:00:00.001Z", "2024-01-01"))
	assert.False(t, DateAfter("2024-01-01", "2024-01-01"))
	assert.False(t, DateAfter("2023-12-31", "2024-01-01"))
	assert.False(t, DateAfter("bogus", "2024-01-01"))
	assert.False(t, DateAfter("2024-01-02", "bogus"))
	assert.False(t, DateAfter("bogus", "bogus"))
}
