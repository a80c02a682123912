package ytdlp

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/domain/repository"
	"github.com/sobadon/radiarc/internal/errutil"
)

// radiko のタイムフリー再生ページを yt-dlp に食わせて音声を落とす
// 認証トークンのやりとりや m3u8 の解決は yt-dlp 側がすべてやってくれる
type client struct {
	binPath string
}

func New() repository.Downloader {
	return &client{binPath: "yt-dlp"}
}

func (c *client) Download(ctx context.Context, station string, startRaw string, destPath string) error {
	streamURL := fmt.Sprintf("https://radiko.jp/#!/ts/%s/%s", station, startRaw)

	cmd := exec.CommandContext(ctx, c.binPath,
		"--format", "bestaudio",
		"--output", destPath,
		streamURL,
	)

	// https://github.com/rs/zerolog/issues/398
	// log.Level(zerolog.InfoLevel).With().Logger() などとしても
	// 出力されるログに loglevel が含まれない
	cmd.Stdout = log.Ctx(ctx).With().Str("level", zerolog.LevelInfoValue).Logger()
	cmd.Stderr = log.Ctx(ctx).With().Str("level", zerolog.LevelWarnValue).Logger()

	log.Ctx(ctx).Debug().Msgf("yt-dlp start ... (station = %s, startRaw = %s)", station, startRaw)
	log.Ctx(ctx).Debug().Msg(cmd.String())
	err := cmd.Start()
	if err != nil {
		return errors.Wrap(errutil.ErrYtdlp, err.Error())
	}

	err = cmd.Wait()
	if err != nil {
		return errors.Wrap(errutil.ErrYtdlp, err.Error())
	}

	return nil
}
