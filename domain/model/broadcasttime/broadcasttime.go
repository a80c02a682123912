package broadcasttime

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/radiarc/internal/errutil"
	"github.com/sobadon/radiarc/internal/timeutil"
)

// radiko の番組表で使われる YYYYMMDDHHMMSS 形式の日時
// 深夜番組は前日の日付のまま 24 時以降の時で表現される（25:30 など）ため、
// 時は 00〜47 まで許容する

// 14 ケタの radiko 日時文字列を JST の time.Time にパースする
// time.Parse は 24 時以降を扱えないが、time.Date は時のあふれを翌日へ正規化してくれる
func Parse(raw string) (time.Time, error) {
	if len(raw) != 14 {
		return time.Time{}, errors.Wrapf(errutil.ErrTimeParse, "length must be 14 (raw = %q)", raw)
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return time.Time{}, errors.Wrapf(errutil.ErrTimeParse, "must be all digits (raw = %q)", raw)
		}
	}

	year, _ := strconv.Atoi(raw[0:4])
	month, _ := strconv.Atoi(raw[4:6])
	day, _ := strconv.Atoi(raw[6:8])
	hour, _ := strconv.Atoi(raw[8:10])
	minute, _ := strconv.Atoi(raw[10:12])
	second, _ := strconv.Atoi(raw[12:14])

	if month < 1 || month > 12 {
		return time.Time{}, errors.Wrapf(errutil.ErrTimeParse, "invalid month (raw = %q)", raw)
	}
	if hour > 47 {
		return time.Time{}, errors.Wrapf(errutil.ErrTimeParse, "hour must be 00-47 (raw = %q)", raw)
	}
	if minute > 59 || second > 59 {
		return time.Time{}, errors.Wrapf(errutil.ErrTimeParse, "invalid minute or second (raw = %q)", raw)
	}

	// 0231 のような存在しない日付は time.Date が 0303 へ正規化してしまうので、
	// 日付部分だけ組み立て直して一致を確認する
	datePart := time.Date(year, time.Month(month), day, 0, 0, 0, 0, timeutil.LocationJST())
	if datePart.Format("20060102") != raw[0:8] {
		return time.Time{}, errors.Wrapf(errutil.ErrTimeParse, "invalid date (raw = %q)", raw)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, timeutil.LocationJST()), nil
}

// 暦日どおりのキー（新規書き込みはこちらのみ）
func CanonicalKey(t time.Time) string {
	return t.In(timeutil.LocationJST()).Format("20060102150405")
}

// 前日の日付 + 24 時間足した時で表したキー
// 過去に書き込まれたドキュメントとの互換のため読み取り時にだけ使う
func OverflowKey(t time.Time) string {
	t = t.In(timeutil.LocationJST())
	prev := t.AddDate(0, 0, -1)
	return fmt.Sprintf("%s%02d%s", prev.Format("20060102"), t.Hour()+24, t.Format("0405"))
}
