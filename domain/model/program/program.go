package program

import "time"

// 番組表から特定できた 1 番組ぶんのメタデータ
// 分類（403 / pending / ダウンロード可）の判断にだけ使い、これ自体は永続化しない
type Program struct {
	// ラジオ局 ID（TBS など）
	Station string

	// 番組タイトル
	Title string

	// 番組表に書かれていた生の開始・終了日時（YYYYMMDDHHMMSS、24 時超え表記あり）
	StartRaw string
	EndRaw   string

	// StartRaw, EndRaw をパースしたもの（JST）
	Start time.Time
	End   time.Time

	// タイムフリー・エリアフリーの NG フラグ
	// 2 が NG
	TsInNG      int
	TsOutNG     int
	TsPlusInNG  int
	TsPlusOutNG int
}

// 放送が終わっているか
func (p Program) Aired(now time.Time) bool {
	return !now.Before(p.End)
}
