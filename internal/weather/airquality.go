package weather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// aqiScale maps the upstream ordinal AQI (1-5) to a label/color pair. The
// table is partial; anything outside 1-5 is rejected as an upstream fault.
var aqiScale = map[int]struct {
	Label string
	Color string
}{
	1: {Label: "Bom", Color: "good"},
	2: {Label: "Razoável", Color: "fair"},
	3: {Label: "Moderado", Color: "moderate"},
	4: {Label: "Ruim", Color: "poor"},
	5: {Label: "Muito Ruim", Color: "very_poor"},
}

// AirQuality fetches the current air-pollution sample for a coordinate pair.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (*AirQuality, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var raw airPayload
	if err := c.get(ctx, "/data/2.5/air_pollution", query, &raw); err != nil {
		return nil, err
	}

	if len(raw.List) == 0 {
		return nil, &UpstreamError{Message: genericUpstreamMessage}
	}
	item := raw.List[0]

	scale, ok := aqiScale[item.Main.AQI]
	if !ok {
		return nil, &UpstreamError{Message: fmt.Sprintf("índice de qualidade do ar inválido: %d", item.Main.AQI)}
	}

	return &AirQuality{
		AQI:   item.Main.AQI,
		Label: scale.Label,
		Color: scale.Color,
		Components: AirComponents{
			CO:   round1(item.Components.CO),
			NO:   round1(item.Components.NO),
			NO2:  round1(item.Components.NO2),
			O3:   round1(item.Components.O3),
			SO2:  round1(item.Components.SO2),
			PM25: round1(item.Components.PM25),
			PM10: round1(item.Components.PM10),
			NH3:  round1(item.Components.NH3),
		},
		Dt: item.Dt,
	}, nil
}
