package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arthasutra_backend/internal/feature/candles/domain/entity"
)

func TestParseInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		want     entity.Interval
		wantDur  time.Duration
		wantFail bool
	}{
		{in: "1min", want: entity.Interval1Min, wantDur: time.Minute},
		{in: "5min", want: entity.Interval5Min, wantDur: 5 * time.Minute},
		{in: "15min", want: entity.Interval15Min, wantDur: 15 * time.Minute},
		{in: "30min", want: entity.Interval30Min, wantDur: 30 * time.Minute},
		{in: "1day", wantFail: true},
		{in: "5MIN", wantFail: true},
		{in: "", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := entity.ParseInterval(tt.in)
			if tt.wantFail {
				assert.ErrorIs(t, err, entity.ErrInvalidInterval)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDur, got.Duration())
		})
	}
}
