package weather

import (
	"context"
	"net/url"
	"time"
)

const (
	hourlyEntries      = 8 // next ~24h of 3-hour samples
	dailyEntries       = 5
	forecastDateLayout = "2006-01-02"
)

// Forecast fetches the 5-day/3-hour forecast and derives the hourly and daily
// views in a single pass over the upstream list. Dates are bucketed in UTC.
func (c *Client) Forecast(ctx context.Context, city string) (*Forecast, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("units", "metric")
	query.Set("lang", "pt_br")

	var raw forecastPayload
	if err := c.get(ctx, "/data/2.5/forecast", query, &raw); err != nil {
		return nil, err
	}

	hourly := []HourlyEntry{}
	daily := []DailyEntry{}
	currentDate := ""

	for _, item := range raw.List {
		ts := time.Unix(item.Dt, 0).UTC()
		date := ts.Format(forecastDateLayout)

		if len(hourly) < hourlyEntries {
			hourly = append(hourly, HourlyEntry{
				Dt:          item.Dt,
				Time:        ts.Format("15:04"),
				Temperature: roundInt(item.Main.Temp),
				FeelsLike:   roundInt(item.Main.FeelsLike),
				Humidity:    item.Main.Humidity,
				Weather:     firstCondition(item.Weather),
				Wind: HourlyWind{
					Speed:     kmh(item.Wind.Speed),
					Direction: windDirection(windDeg(item.Wind.Deg)),
				},
				Pop:    popPercent(item.Pop),
				Rain:   rainVolume(item.Rain),
				Clouds: item.Clouds.All,
			})
		}

		// one entry per distinct calendar date, represented by its first sample
		if date != currentDate {
			currentDate = date
			if len(daily) < dailyEntries {
				daily = append(daily, DailyEntry{
					Dt:        item.Dt,
					Date:      date,
					DayName:   dayName(ts),
					TempMin:   roundInt(item.Main.TempMin),
					TempMax:   roundInt(item.Main.TempMax),
					Humidity:  item.Main.Humidity,
					Weather:   firstCondition(item.Weather),
					Pop:       popPercent(item.Pop),
					WindSpeed: kmh(item.Wind.Speed),
				})
			}
		}
	}

	return &Forecast{
		City:    raw.City.Name,
		Country: raw.City.Country,
		Coord: Coordinates{
			Lat: raw.City.Coord.Lat,
			Lon: raw.City.Coord.Lon,
		},
		Timezone: raw.City.Timezone,
		Hourly:   hourly,
		Daily:    daily,
	}, nil
}

func rainVolume(rain *struct {
	ThreeHours float64 `json:"3h"`
}) float64 {
	if rain == nil {
		return 0
	}
	return rain.ThreeHours
}
