package radiko

import (
	"net/http"
	"net/url"

	"github.com/sobadon/radiarc/domain/repository"
)

type client struct {
	httpClient     *http.Client
	stationListURL *url.URL
	programBaseURL *url.URL
}

func New() repository.Schedule {
	stationListURL, err := url.Parse("https://radiko.jp/v3/station/region/full.xml")
	if err != nil {
		panic(err)
	}

	programBaseURL, err := url.Parse("https://api.radiko.jp/program/v4/date")
	if err != nil {
		panic(err)
	}

	return &client{
		httpClient:     &http.Client{},
		stationListURL: stationListURL,
		programBaseURL: programBaseURL,
	}
}
