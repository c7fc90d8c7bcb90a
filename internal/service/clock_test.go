package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderCreatedAt(t *testing.T) {
	kathmandu := time.FixedZone("NPT", 5*3600+45*60)
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		loc       *time.Location
		want      string
	}{
		{"same day", time.Date(2026, 3, 5, 8, 30, 0, 0, time.UTC), time.UTC, "8:30 AM"},
		{"yesterday", time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC), time.UTC, "March 4, 2026"},
		{"same year other month", time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), time.UTC, "January 15, 2026"},
		// UTC 前一天 20:00 在 +05:45 时区已是当天凌晨
		{"day boundary in reference zone", time.Date(2026, 3, 4, 20, 0, 0, 0, time.UTC), kathmandu, "1:45 AM"},
		{"nil location falls back to UTC", time.Date(2026, 3, 5, 15, 4, 0, 0, time.UTC), nil, "3:04 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderCreatedAt(tt.createdAt, now, tt.loc))
		})
	}
}
