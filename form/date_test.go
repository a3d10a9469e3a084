package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckDOB(t *testing.T) {
	now := time.Date(2026, time.August, 26, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty is valid", "", true},
		{"yesterday", "2026-08-25", true},
		{"today rejects", "2026-08-26", false},
		{"tomorrow rejects", "2026-08-27", false},
		{"120 years ago exactly", "1906-08-26", true},
		{"121 years ago", "1905-08-26", false},
		{"just inside range", "1906-08-27", true},
		{"garbage", "not-a-date", false},
		{"wrong layout", "26/08/2026", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CheckDOB(tc.value, now).Valid)
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		dob  string
		want int
	}{
		{"1990-08-26", 36}, // birthday today
		{"1990-08-27", 35}, // birthday tomorrow
		{"1990-08-25", 36}, // birthday yesterday
		{"2026-08-25", 0},
	}
	for _, tc := range tests {
		dob, err := ParseDOB(tc.dob)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, Age(dob, now), "dob %s", tc.dob)
	}
}
