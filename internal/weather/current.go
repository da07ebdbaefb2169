package weather

import (
	"context"
	"net/url"
)

// CurrentWeather fetches and normalizes the current conditions for a city.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*Snapshot, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("units", "metric")
	query.Set("lang", "pt_br")

	var raw currentPayload
	if err := c.get(ctx, "/data/2.5/weather", query, &raw); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		City:    raw.Name,
		Country: raw.Sys.Country,
		Coord: Coordinates{
			Lat: raw.Coord.Lat,
			Lon: raw.Coord.Lon,
		},
		Temperature: roundInt(raw.Main.Temp),
		FeelsLike:   roundInt(raw.Main.FeelsLike),
		TempMin:     roundInt(raw.Main.TempMin),
		TempMax:     roundInt(raw.Main.TempMax),
		Humidity:    raw.Main.Humidity,
		Pressure:    raw.Main.Pressure,
		Wind: Wind{
			Speed:     kmh(raw.Wind.Speed),
			Deg:       windDeg(raw.Wind.Deg),
			Direction: windDirection(windDeg(raw.Wind.Deg)),
		},
		Clouds:   raw.Clouds.All,
		Weather:  firstCondition(raw.Weather),
		Sunrise:  raw.Sys.Sunrise,
		Sunset:   raw.Sys.Sunset,
		Timezone: raw.Timezone,
		Dt:       raw.Dt,
	}

	// meters to km, absent when upstream omits it
	if raw.Visibility != nil {
		v := *raw.Visibility / 1000
		snap.Visibility = &v
	}

	return snap, nil
}
