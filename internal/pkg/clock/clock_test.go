package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeClocker_Now(t *testing.T) {
	before := time.Now()
	got := New().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestToday(t *testing.T) {
	c := NewFixed(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, "2024-02-29", Today(c))
	assert.Equal(t, c.Now(), c.Now())
}
