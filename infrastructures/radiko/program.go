package radiko

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/domain/model/broadcasttime"
	"github.com/sobadon/radiarc/domain/model/date"
	"github.com/sobadon/radiarc/domain/model/program"
	"github.com/sobadon/radiarc/internal/errutil"
)

type programDateJSON struct {
	Stations []struct {
		// "TBS"
		StationID string `json:"station_id"`

		Programs struct {
			Program []radikoProgram `json:"program"`
		} `json:"programs"`
	} `json:"stations"`
}

type radikoProgram struct {
	// "20240805253000"
	// 24 時超え表記のことがある
	Ft string `json:"ft"`

	// "20240805263000"
	To string `json:"to"`

	// "こねくと"
	Title string `json:"title"`

	// タイムフリー・エリアフリーの NG フラグ
	// 2 が NG
	TsInNG      int `json:"ts_in_ng"`
	TsOutNG     int `json:"ts_out_ng"`
	TsPlusInNG  int `json:"tsplus_in_ng"`
	TsPlusOutNG int `json:"tsplus_out_ng"`
}

func (c *client) GetPrograms(ctx context.Context, station string, day date.Date) ([]program.Program, error) {
	programURL := buildProgramURL(c.programBaseURL, station, day)
	log.Ctx(ctx).Debug().Msgf("fetch program .... (url = %s)", programURL.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, programURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrHTTPRequest, err.Error())
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return nil, errors.Wrap(errutil.NewUpstreamStatusError(res.StatusCode), errutil.ErrGetProgramNotOK.Error())
	}

	radikoPgrams, err := decodeToRadikoPrograms(res.Body)
	if err != nil {
		return nil, err
	}

	var pgrams []program.Program
	for _, radikoPgram := range radikoPgrams {
		pgram, err := radikoProgramToProgram(station, radikoPgram)
		if err != nil {
			// 日時が壊れているエントリは番組表全体を道連れにせず読み飛ばす
			log.Ctx(ctx).Warn().Msgf("skip broken program entry (ft = %q, to = %q): %v", radikoPgram.Ft, radikoPgram.To, err)
			continue
		}
		pgrams = append(pgrams, pgram)
	}

	log.Ctx(ctx).Debug().Msgf("fetched program len: %d (day = %s)", len(pgrams), day.Format("2006-01-02"))
	return pgrams, nil
}

func buildProgramURL(baseURL *url.URL, station string, day date.Date) *url.URL {
	return baseURL.JoinPath(day.Format("20060102"), "station", station+".json")
}

func decodeToRadikoPrograms(input io.Reader) ([]radikoProgram, error) {
	var dateJSON programDateJSON
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&dateJSON)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrJSONDecode, err.Error())
	}

	if len(dateJSON.Stations) == 0 {
		return nil, nil
	}
	return dateJSON.Stations[0].Programs.Program, nil
}

func radikoProgramToProgram(station string, radikoPgram radikoProgram) (program.Program, error) {
	start, err := broadcasttime.Parse(radikoPgram.Ft)
	if err != nil {
		return program.Program{}, err
	}

	end, err := broadcasttime.Parse(radikoPgram.To)
	if err != nil {
		return program.Program{}, err
	}

	return program.Program{
		Station:     station,
		Title:       radikoPgram.Title,
		StartRaw:    radikoPgram.Ft,
		EndRaw:      radikoPgram.To,
		Start:       start,
		End:         end,
		TsInNG:      radikoPgram.TsInNG,
		TsOutNG:     radikoPgram.TsOutNG,
		TsPlusInNG:  radikoPgram.TsPlusInNG,
		TsPlusOutNG: radikoPgram.TsPlusOutNG,
	}, nil
}
