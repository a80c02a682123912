package usecase

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/domain/model/broadcasttime"
)

// 一度の掃除で再解決する件数の上限
// あまり多いと 1 ジョブが長引くのでほどほどに
const sweepLimit = 20

// 未確定（pending / 404 エラー）のままになっているドキュメントを拾い直して再解決する
// 放送が終わった番組はこれで success に化ける
// 1 件ごとの失敗はログを出して次へ進む
func (a *ucArchiver) SweepProvisional(ctx context.Context) error {
	entries, err := a.store.LoadProvisional(ctx, sweepLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		log.Ctx(ctx).Debug().Msg("no provisional archives")
		return nil
	}

	for _, entry := range entries {
		ft, err := broadcasttime.Parse(entry.Key)
		if err != nil {
			log.Ctx(ctx).Warn().Msgf("skip unparsable archive key (station = %s, key = %s)", entry.Station, entry.Key)
			continue
		}

		outcome, err := a.Archive(ctx, entry.Station, ft)
		if err != nil {
			log.Ctx(ctx).Error().Msgf("failed to re-resolve (station = %s, key = %s): %+v", entry.Station, entry.Key, err)
			continue
		}
		log.Ctx(ctx).Info().Msgf("re-resolved (station = %s, key = %s, status = %s, code = %d)", entry.Station, entry.Key, outcome.Status, outcome.Code)
	}

	return nil
}
