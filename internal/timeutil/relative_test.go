package timeutil

import (
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "seconds ago", t: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes ago", t: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours ago", t: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days ago", t: now.Add(-2 * 24 * time.Hour), want: "2d ago"},
		{name: "older than a week", t: now.Add(-30 * 24 * time.Hour), want: "Aug 1, 2026"},
		{name: "zero time", t: time.Time{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relative(tt.t, now)
			if got != tt.want {
				t.Errorf("Relative() = %v, want %v", got, tt.want)
			}
		})
	}
}
