package serve

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/domain/model/program"
	"github.com/sobadon/radiarc/infrastructures/httpserver"
	"github.com/sobadon/radiarc/infrastructures/radiko"
	"github.com/sobadon/radiarc/infrastructures/rclone"
	"github.com/sobadon/radiarc/infrastructures/sqlite"
	"github.com/sobadon/radiarc/infrastructures/ytdlp"
	"github.com/sobadon/radiarc/internal/errutil"
	"github.com/sobadon/radiarc/internal/fileutil"
	"github.com/sobadon/radiarc/internal/logutil"
	"github.com/sobadon/radiarc/internal/timeutil"
	"github.com/sobadon/radiarc/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "serve",
		Short: "run http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	return rootCmd
}

func run() error {
	log.Info().Msg("start")

	var config config
	err := env.Parse(&config, env.Options{
		Prefix: "RADIARC_",
		OnSet: func(tag string, value interface{}, isDefault bool) {
			log.Info().Msgf("Set %s to %v (default? %v)\n", tag, value, isDefault)
		},
	})
	if err != nil {
		return err
	}

	policy, err := program.ParseRestrictionPolicy(config.RestrictionFlags)
	if err != nil {
		return err
	}

	err = fileutil.MkdirAllIfNotExist(filepath.Dir(config.SqlitePath))
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(config.SqlitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	err = sqlite.Setup(db)
	if err != nil {
		return err
	}
	log.Info().Msg("setup done")

	infraArchiveStore := sqlite.New(db)
	infraSchedule := radiko.New()
	infraDownloader := ytdlp.New()
	infraPublisher, err := rclone.New(config.RcloneRemote, config.RcloneBucket, config.PublicBaseURL)
	if err != nil {
		return err
	}

	ucArchiver := usecase.NewArchiver(infraArchiveStore, infraSchedule, infraDownloader, infraPublisher, policy)

	ctx := context.Background()
	scheduler := gocron.NewScheduler(timeutil.LocationJST())

	jobSweep := func(ctx context.Context, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "sweep").
			Logger().WithContext(ctx)
		zlog.Ctx(ctx).Info().Msg("job start")
		err := ucArchiver.SweepProvisional(ctx)
		if err != nil {
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(config.SweepInterval).DoWithJobDetails(jobSweep, ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	scheduler.StartAsync()

	server := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           httpserver.New(ucArchiver),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Msgf("listen on %s", config.ListenAddr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Msgf("%+v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Interrupt")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}

	return nil
}
