package radiko

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/radiarc/internal/errutil"
)

// 局一覧 XML（region > stations > station）のうち必要なところだけ
type stationRegionXML struct {
	XMLName  xml.Name `xml:"region"`
	Stations []struct {
		RegionName string `xml:"region_name,attr"`
		Station    []struct {
			ID   string `xml:"id"`
			Name string `xml:"name"`
		} `xml:"station"`
	} `xml:"stations"`
}

func (c *client) GetStations(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.stationListURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}

	log.Ctx(ctx).Debug().Msgf("fetch station list .... (url = %s)", c.stationListURL.String())
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrHTTPRequest, err.Error())
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return nil, errors.Wrap(errutil.NewUpstreamStatusError(res.StatusCode), errutil.ErrGetStationNotOK.Error())
	}

	stationIDs, err := decodeToStationIDs(res.Body)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().Msgf("fetched station len: %d", len(stationIDs))
	return stationIDs, nil
}

func decodeToStationIDs(input io.Reader) ([]string, error) {
	var region stationRegionXML
	decoder := xml.NewDecoder(input)
	err := decoder.Decode(&region)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrXMLDecode, err.Error())
	}

	var stationIDs []string
	for _, stations := range region.Stations {
		for _, station := range stations.Station {
			stationIDs = append(stationIDs, station.ID)
		}
	}
	return stationIDs, nil
}
