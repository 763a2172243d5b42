package cache

import (
	"testing"
	"time"

	"arthasutra_backend/internal/platform/markettime"
)

func TestTimeUntilNextRollover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "early morning IST",
			now:  time.Date(2026, 3, 9, 7, 30, 0, 0, markettime.IST),
			want: 90 * time.Minute,
		},
		{
			name: "exactly at rollover waits a full day",
			now:  time.Date(2026, 3, 9, 9, 0, 0, 0, markettime.IST),
			want: 24 * time.Hour,
		},
		{
			name: "after market close",
			now:  time.Date(2026, 3, 9, 15, 30, 0, 0, markettime.IST),
			want: 17*time.Hour + 30*time.Minute,
		},
		{
			name: "UTC input is converted",
			now:  time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC), // 08:30 IST
			want: 30 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TimeUntilNextRollover(tt.now)
			if got != tt.want {
				t.Errorf("TimeUntilNextRollover(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestTimeUntilNextRollover_AlwaysPositive(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 48; i++ {
		d := TimeUntilNextRollover(start.Add(time.Duration(i) * 37 * time.Minute))
		if d <= 0 || d > 24*time.Hour {
			t.Errorf("iteration %d: duration %v out of range", i, d)
		}
	}
}
