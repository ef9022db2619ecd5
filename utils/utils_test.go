package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"01012345678", true},
		{"+201012345678", true},
		{"010-1234-5678", true},
		{"(010) 1234 5678", true},
		{"12345", false},
		{"not-a-number", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidatePhone(tc.phone), "phone %q", tc.phone)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 20, 1, 0, 0, 0, time.UTC)
	night := time.Date(2024, 3, 20, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}
