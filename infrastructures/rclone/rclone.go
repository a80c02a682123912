package rclone

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/domain/repository"
	"github.com/sobadon/radiarc/internal/errutil"
)

// rclone copyto でオブジェクトストレージにアップロードする
// remote は rclone.conf に定義済みのリモート名
type client struct {
	remote        string
	bucket        string
	publicBaseURL *url.URL
}

func New(remote string, bucket string, publicBaseURL string) (repository.Publisher, error) {
	baseURL, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}

	return &client{
		remote:        remote,
		bucket:        bucket,
		publicBaseURL: baseURL,
	}, nil
}

func (c *client) Publish(ctx context.Context, localPath string, key string) (string, error) {
	dest := buildRemotePath(c.remote, c.bucket, key)

	cmd := exec.CommandContext(ctx, "rclone", "copyto", localPath, dest)

	cmd.Stdout = log.Ctx(ctx).With().Str("level", zerolog.LevelInfoValue).Logger()
	cmd.Stderr = log.Ctx(ctx).With().Str("level", zerolog.LevelWarnValue).Logger()

	log.Ctx(ctx).Debug().Msgf("rclone start ... (dest = %s)", dest)
	log.Ctx(ctx).Debug().Msg(cmd.String())
	err := cmd.Start()
	if err != nil {
		return "", errors.Wrap(errutil.ErrRclone, err.Error())
	}

	err = cmd.Wait()
	if err != nil {
		return "", errors.Wrap(errutil.ErrRclone, err.Error())
	}

	return buildPublicURL(c.publicBaseURL, key), nil
}

func buildRemotePath(remote string, bucket string, key string) string {
	return fmt.Sprintf("%s:%s/%s", remote, bucket, key)
}

func buildPublicURL(baseURL *url.URL, key string) string {
	return baseURL.JoinPath(key).String()
}
