// Package markettime はキャッシュと分足系列で共有するNSEの取引時間定数を提供します。
package markettime

import "time"

// IST はインド標準時です。ホストのtzdataに依存しないよう固定オフセットを使います。
var IST = time.FixedZone("IST", 5*60*60+30*60)

// ISTでの通常取引時間です。
const (
	OpenHour    = 9
	OpenMinute  = 15
	CloseHour   = 15
	CloseMinute = 30
)

// Session は t のIST日付における通常取引の開始・終了時刻を返します。
func Session(t time.Time) (start, end time.Time) {
	d := t.In(IST)
	start = time.Date(d.Year(), d.Month(), d.Day(), OpenHour, OpenMinute, 0, 0, IST)
	end = time.Date(d.Year(), d.Month(), d.Day(), CloseHour, CloseMinute, 0, 0, IST)
	return start, end
}
