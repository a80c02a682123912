package date

import (
	"time"

	"github.com/sobadon/radiarc/internal/timeutil"
)

// 年月日
type Date time.Time

func New(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, timeutil.LocationJST()))
}

// 時刻つきの time.Time から時刻部分を落とした Date をつくる
func NewFromTime(t time.Time) Date {
	t = t.In(timeutil.LocationJST())
	return Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, timeutil.LocationJST()))
}

// 前日
func (d Date) Prev() Date {
	return Date(time.Time(d).AddDate(0, 0, -1))
}

func (d Date) Format(layout string) string {
	return time.Time(d).Format(layout)
}
