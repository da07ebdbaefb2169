package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const currentBody = `{
	"name": "São Paulo",
	"sys": {"country": "BR", "sunrise": 1735891200, "sunset": 1735938000},
	"coord": {"lat": -23.55, "lon": -46.63},
	"main": {"temp": 24.6, "feels_like": 25.2, "temp_min": 21.4, "temp_max": 26.8, "humidity": 65, "pressure": 1017},
	"visibility": 8500,
	"wind": {"speed": 5.5, "deg": 90},
	"clouds": {"all": 40},
	"weather": [{"main": "Clouds", "description": "nuvens dispersas", "icon": "03d"}],
	"timezone": -10800,
	"dt": 1735912800
}`

func TestCurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/2.5/weather", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "São Paulo", q.Get("q"))
		require.Equal(t, "metric", q.Get("units"))
		require.Equal(t, "pt_br", q.Get("lang"))
		require.Equal(t, "test-key", q.Get("appid"))
		w.Write([]byte(currentBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", nil)
	snap, err := c.CurrentWeather(context.Background(), "São Paulo")
	require.NoError(t, err)

	require.Equal(t, "São Paulo", snap.City)
	require.Equal(t, "BR", snap.Country)
	require.Equal(t, Coordinates{Lat: -23.55, Lon: -46.63}, snap.Coord)
	require.Equal(t, 25, snap.Temperature)
	require.Equal(t, 25, snap.FeelsLike)
	require.Equal(t, 21, snap.TempMin)
	require.Equal(t, 27, snap.TempMax)
	require.Equal(t, 65, snap.Humidity)
	require.Equal(t, 1017, snap.Pressure)
	require.NotNil(t, snap.Visibility)
	require.Equal(t, 8.5, *snap.Visibility)
	require.Equal(t, 20, snap.Wind.Speed) // 5.5 m/s -> 19.8 km/h
	require.Equal(t, float64(90), snap.Wind.Deg)
	require.Equal(t, "E", snap.Wind.Direction)
	require.Equal(t, 40, snap.Clouds)
	require.Equal(t, "nuvens dispersas", snap.Weather.Description)
	require.Equal(t, -10800, snap.Timezone)
}

func TestCurrentWeatherOptionalFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// no visibility, no wind bearing
		w.Write([]byte(`{
			"name": "Nowhere",
			"sys": {"country": "BR"},
			"main": {"temp": 20, "feels_like": 20, "temp_min": 20, "temp_max": 20, "humidity": 50, "pressure": 1000},
			"wind": {"speed": 0},
			"clouds": {"all": 0},
			"weather": [],
			"timezone": 0,
			"dt": 0
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", nil)
	snap, err := c.CurrentWeather(context.Background(), "Nowhere")
	require.NoError(t, err)
	require.Nil(t, snap.Visibility)
	require.Equal(t, float64(0), snap.Wind.Deg)
	require.Equal(t, "N", snap.Wind.Direction)
	require.Equal(t, Condition{}, snap.Weather)
}
