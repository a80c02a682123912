package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/domain/model/archive"
	"github.com/sobadon/radiarc/domain/model/broadcasttime"
	"github.com/sobadon/radiarc/domain/model/date"
	"github.com/sobadon/radiarc/domain/model/program"
	"github.com/sobadon/radiarc/domain/repository"
	"github.com/sobadon/radiarc/internal/errutil"
	"github.com/sobadon/radiarc/internal/timeutil"
)

type ucArchiver struct {
	store      repository.ArchiveStore
	schedule   repository.Schedule
	downloader repository.Downloader
	publisher  repository.Publisher
	policy     program.RestrictionPolicy

	// テストで時刻を固定するためのもの
	now func() time.Time
}

func NewArchiver(
	store repository.ArchiveStore,
	schedule repository.Schedule,
	downloader repository.Downloader,
	publisher repository.Publisher,
	policy program.RestrictionPolicy,
) *ucArchiver {
	return &ucArchiver{
		store:      store,
		schedule:   schedule,
		downloader: downloader,
		publisher:  publisher,
		policy:     policy,
		now:        timeutil.NowJST,
	}
}

// station と番組開始日時 ft から 1 番組を解決し、結果の Outcome を返す
// 返す Outcome はそのまま HTTP レスポンスにできる
// error を返すのはインフラ（DB など）が壊れているときだけで、その場合 Outcome は使えない
//
// 同じ番組への並行呼び出しは排他していない
// 両方ともキャッシュミスして二重にダウンロードすることがありうるが、
// 結果は同値なので後勝ちの上書きで問題ない
func (a *ucArchiver) Archive(ctx context.Context, station string, ft time.Time) (archive.Outcome, error) {
	// 過去に書かれたドキュメントは 24 時超え表記のキーのことがあるので両方引く
	cached, err := a.loadCached(ctx, station, ft)
	if err != nil {
		return archive.Outcome{}, err
	}
	if cached != nil && cached.Final() {
		log.Ctx(ctx).Info().Msgf("cache hit, short-circuit (station = %s, key = %s)", station, broadcasttime.CanonicalKey(ft))
		return *cached, nil
	}

	stationIDs, err := a.schedule.GetStations(ctx)
	if err != nil {
		if outcome, ok := upstreamOutcome(err, "https://radiko.jp/v3/station/region/full.xml が取得できません。"); ok {
			return outcome, nil
		}
		return archive.Outcome{}, err
	}
	if !contains(stationIDs, station) {
		// 局が存在しないことは番組表を引かずに確定するが、
		// 局一覧の変化で結果が変わりうるのでキャッシュには書かない
		return archive.NewError(404, "存在しない局IDが指定されました。"), nil
	}

	targetDay := date.NewFromTime(ft)
	pgrams, err := a.schedule.GetPrograms(ctx, station, targetDay)
	if err != nil {
		if outcome, ok := upstreamOutcome(err, "番組表が取得できません。"); ok {
			return outcome, nil
		}
		return archive.Outcome{}, err
	}

	// 24 時超え表記の深夜番組は前日の番組表に載っているため前日ぶんもなめる
	priorPgrams, err := a.schedule.GetPrograms(ctx, station, targetDay.Prev())
	if err != nil {
		if outcome, ok := upstreamOutcome(err, "番組表が取得できません。"); ok {
			return outcome, nil
		}
		return archive.Outcome{}, err
	}
	pgrams = append(pgrams, priorPgrams...)

	targetPgram := locate(ft, pgrams)
	if targetPgram == nil {
		outcome := archive.NewError(404, "指定された番組が存在しません。")
		// 見つからなかった場合は番組表側のキーがないのでリクエスト由来のキーで書く
		err = a.store.Save(ctx, station, broadcasttime.CanonicalKey(ft), outcome)
		if err != nil {
			return archive.Outcome{}, err
		}
		return outcome, nil
	}

	outcome, err := a.resolve(ctx, *targetPgram)
	if err != nil {
		return archive.Outcome{}, err
	}

	// 24 時超え表記でリクエストされていても、書き込み先は番組の開始日時から導いた
	// 暦日どおりのキーに一本化する
	err = a.store.Save(ctx, station, broadcasttime.CanonicalKey(targetPgram.Start), outcome)
	if err != nil {
		return archive.Outcome{}, err
	}
	return outcome, nil
}

// キャッシュを暦日キー → 24 時超えキーの順で引く
// 見つからなければ nil
func (a *ucArchiver) loadCached(ctx context.Context, station string, ft time.Time) (*archive.Outcome, error) {
	for _, key := range []string{broadcasttime.CanonicalKey(ft), broadcasttime.OverflowKey(ft)} {
		outcome, err := a.store.Load(ctx, station, key)
		if stderrors.Is(err, errutil.ErrDatabaseNotFoundArchive) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return outcome, nil
	}
	return nil, nil
}

// 特定できた番組を分類し、ダウンロード可能ならアップロードまで行う
// ダウンロード失敗は 500 の Outcome として返す（記録には残るが、再試行は妨げない）
// アップロード失敗はキャッシュに書いてはいけないので error で返す
func (a *ucArchiver) resolve(ctx context.Context, targetPgram program.Program) (archive.Outcome, error) {
	if a.policy.Blocked(targetPgram) {
		return archive.NewError(403, "指定された番組はタイムフリーでアクセスできません。"), nil
	}

	if !targetPgram.Aired(a.now()) {
		return archive.NewPending("まだ番組が終了していません。"), nil
	}

	tempDir, err := os.MkdirTemp("", "radiarc-")
	if err != nil {
		return archive.Outcome{}, errors.Wrap(errutil.ErrInternal, err.Error())
	}
	defer os.RemoveAll(tempDir)

	destPath := filepath.Join(tempDir, "program.m4a")
	err = a.downloader.Download(ctx, targetPgram.Station, targetPgram.StartRaw, destPath)
	if err != nil {
		return archive.NewError(500, fmt.Sprintf("yt-dlp が失敗しました。\n%s", err.Error())), nil
	}

	if info, err := os.Stat(destPath); err == nil {
		log.Ctx(ctx).Info().Msgf("downloaded (size = %s)", humanize.Bytes(uint64(info.Size())))
	}

	key := fmt.Sprintf("%s/%s.m4a", targetPgram.Station, targetPgram.StartRaw)
	url, err := a.publisher.Publish(ctx, destPath, key)
	if err != nil {
		return archive.Outcome{}, err
	}

	return archive.NewSuccess(url), nil
}

// 対象日・前日の順に並んだ番組列から、開始日時が ft に一致する最初の番組を返す
func locate(ft time.Time, pgrams []program.Program) *program.Program {
	for i := range pgrams {
		if pgrams[i].Start.Equal(ft) {
			return &pgrams[i]
		}
	}
	return nil
}

// 上流の HTTP ステータスを持っているエラーなら、それを流用した Outcome に変換する
// この手のエラーはキャッシュに書かない
func upstreamOutcome(err error, reason string) (archive.Outcome, bool) {
	var upstreamErr *errutil.UpstreamStatusError
	if stderrors.As(err, &upstreamErr) {
		return archive.NewError(upstreamErr.StatusCode, reason), true
	}
	return archive.Outcome{}, false
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
