package archive

// 1 番組の解決結果
// Cache Store に永続化され、そのまま HTTP レスポンスのボディにもなる
type Outcome struct {
	Status Status `json:"status"`
	Code   int    `json:"code"`
	Reason string `json:"reason,omitempty"`
	URL    string `json:"url,omitempty"`
}

func NewSuccess(url string) Outcome {
	return Outcome{Status: StatusSuccess, Code: 200, URL: url}
}

func NewPending(reason string) Outcome {
	return Outcome{Status: StatusPending, Code: 404, Reason: reason}
}

func NewError(code int, reason string) Outcome {
	return Outcome{Status: StatusError, Code: code, Reason: reason}
}

// 確定した結果か
// 確定していれば以降の同一リクエストはキャッシュだけで返してよい
// 404 エラーと pending は番組表の変化や放送終了で結果が変わりうるため確定ではない
func (o Outcome) Final() bool {
	if o.Status == StatusSuccess {
		return true
	}
	return o.Status == StatusError && o.Code != 404
}

// Cache Store 上の 1 ドキュメント（キーつきの Outcome）
type Entry struct {
	Station string
	Key     string
	Outcome Outcome
}
