package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToDay(t *testing.T) {
	fallback := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain date", "2026-01-15", "2026-01-15"},
		{"iso timestamp", "2026-01-15T10:30:00.000Z", "2026-01-15"},
		{"space separated timestamp", "2026-01-15 10:30:00", "2026-01-15"},
		{"surrounding whitespace", "  2026-01-15  ", "2026-01-15"},
		{"empty input", "", "2026-08-31"},
		{"too short", "2026-01", "2026-08-31"},
		{"garbage", "not-a-date-at-all", "2026-08-31"},
		{"invalid month", "2026-13-01", "2026-08-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDay(tt.input, fallback))
		})
	}
}
