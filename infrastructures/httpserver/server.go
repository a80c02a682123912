package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/domain/model/archive"
	"github.com/sobadon/radiarc/internal/logutil"
)

// usecase 側の実体（*ucArchiver）がこれを満たす
type Archiver interface {
	Archive(ctx context.Context, station string, ft time.Time) (archive.Outcome, error)
}

func New(archiver Archiver) http.Handler {
	router := chi.NewRouter()
	router.Use(requestLogger)
	router.Get("/healthz", handleHealthz)
	router.Get("/timefree", handleTimefree(archiver))
	return router
}

// リクエストごとに request_id つきの logger を context に入れる
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logutil.NewLogger().With().
			Str("request_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		ctx := logger.WithContext(r.Context())
		logger.Info().Msg("request start")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("ok"))
	if err != nil {
		log.Ctx(r.Context()).Error().Msgf("failed to write response: %v", err)
	}
}
