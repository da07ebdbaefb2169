package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWindDirection(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{11, "N"},    // below the 11.25° boundary
		{12, "NNE"},  // above it
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SO"},
		{270, "O"},
		{315, "NO"},
		{337, "NNO"},
		{350, "N"},   // wraps via mod 16
		{-30, "NNO"}, // negative bearings still land on a sector
		{-90, "O"},
		{720, "N"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, windDirection(tc.degrees), "degrees=%v", tc.degrees)
	}
}

func TestKmh(t *testing.T) {
	require.Equal(t, 0, kmh(0))
	require.Equal(t, 20, kmh(5.5))  // 19.8 rounds up
	require.Equal(t, 13, kmh(3.6))  // 12.96 rounds up
	require.Equal(t, 4, kmh(1))     // 3.6 rounds half away from zero
}

func TestPopPercent(t *testing.T) {
	require.Equal(t, 0, popPercent(nil))
	p := 0.34
	require.Equal(t, 34, popPercent(&p))
	p = 0.005
	require.Equal(t, 1, popPercent(&p))
}

func TestRound1(t *testing.T) {
	require.Equal(t, 3.1, round1(3.14))
	require.Equal(t, 3.3, round1(3.25))
	require.Equal(t, 200.3, round1(200.34))
}

func TestDayName(t *testing.T) {
	// 2025-01-05 is a Sunday
	sunday := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "Domingo", dayName(sunday))
	require.Equal(t, "Segunda", dayName(sunday.AddDate(0, 0, 1)))
	require.Equal(t, "Sábado", dayName(sunday.AddDate(0, 0, 6)))
}

func TestFirstCondition(t *testing.T) {
	require.Equal(t, Condition{}, firstCondition(nil))
	got := firstCondition([]conditionPayload{{Main: "Rain", Description: "chuva leve", Icon: "10d"}})
	require.Equal(t, "Rain", got.Main)
	require.Equal(t, "chuva leve", got.Description)
}
