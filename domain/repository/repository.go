//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import (
	"context"

	"github.com/sobadon/radiarc/domain/model/archive"
	"github.com/sobadon/radiarc/domain/model/date"
	"github.com/sobadon/radiarc/domain/model/program"
)

type Schedule interface {
	// 全地域の局 ID 一覧を取得
	// 返されるエラー
	// - errutil.UpstreamStatusError（上流が非 200）
	GetStations(ctx context.Context) ([]string, error)

	// station の day 1 日ぶんの番組表を取得
	// 開始・終了日時をパースできないエントリは除外される
	// 返されるエラー
	// - errutil.UpstreamStatusError（上流が非 200）
	GetPrograms(ctx context.Context, station string, day date.Date) ([]program.Program, error)
}

type ArchiveStore interface {
	// 返されるエラー
	// - errutil.ErrDatabaseNotFoundArchive
	Load(ctx context.Context, station string, key string) (*archive.Outcome, error)

	// 同一キーのドキュメントがあれば上書き
	Save(ctx context.Context, station string, key string, outcome archive.Outcome) error

	// 未確定（pending と 404 エラー）なドキュメントを limit 件まで取得
	LoadProvisional(ctx context.Context, limit int) ([]archive.Entry, error)
}

type Downloader interface {
	// station と番組表の生の開始日時で特定される番組の音声を destPath に保存する
	Download(ctx context.Context, station string, startRaw string, destPath string) error
}

type Publisher interface {
	// localPath のファイルを key でオブジェクトストレージに置き、公開 URL を返す
	Publish(ctx context.Context, localPath string, key string) (string, error)
}
