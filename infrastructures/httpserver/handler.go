package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/domain/model/archive"
	"github.com/sobadon/radiarc/internal/timeutil"
)

func handleTimefree(archiver Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		station := r.URL.Query().Get("channel")
		ftRaw := r.URL.Query().Get("ft")
		if station == "" || ftRaw == "" {
			writeOutcome(w, r, archive.NewError(400, "ラジオ局のID(channel)と番組の開始時刻(RFC3339による):(ft)が必要です。"))
			return
		}

		ft, err := time.Parse(time.RFC3339, ftRaw)
		if err != nil {
			writeOutcome(w, r, archive.NewError(400, "ftのフォーマットが違います。RFC3339が必要です。"))
			return
		}

		outcome, err := archiver.Archive(ctx, station, ft.In(timeutil.LocationJST()))
		if err != nil {
			log.Ctx(ctx).Error().Msgf("%+v", err)
			writeOutcome(w, r, archive.NewError(500, "内部エラーが発生しました。"))
			return
		}

		writeOutcome(w, r, outcome)
	}
}

// Outcome をボディに、Outcome.Code を HTTP ステータスにして返す
func writeOutcome(w http.ResponseWriter, r *http.Request, outcome archive.Outcome) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(outcome.Code)
	err := json.NewEncoder(w).Encode(outcome)
	if err != nil {
		log.Ctx(r.Context()).Error().Msgf("failed to write response: %v", err)
	}
}
