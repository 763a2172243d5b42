package cache

import (
	"time"

	"arthasutra_backend/internal/platform/markettime"
)

// RolloverHour はキャッシュを切り替えるインド時間の時刻です（寄り付き前セッション開始の直前）。
const RolloverHour = 9

// TimeUntilNextRollover はnowから次の午前9時（インド時間）までの期間を返します。
// ちょうど9時の場合は翌日の9時までです。
func TimeUntilNextRollover(now time.Time) time.Duration {
	now = now.In(markettime.IST)
	next := time.Date(now.Year(), now.Month(), now.Day(), RolloverHour, 0, 0, 0, markettime.IST)
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
