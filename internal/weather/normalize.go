package weather

import (
	"math"
	"time"
)

// windDirections is the 16-point compass rose with Portuguese labels
// (O = oeste).
var windDirections = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSO", "SO", "OSO", "O", "ONO", "NO", "NNO",
}

// windDirection maps a bearing in degrees onto the compass rose. The index is
// normalized so out-of-range bearings, negative included, still land on a
// sector.
func windDirection(degrees float64) string {
	index := int(math.Round(degrees/22.5)) % 16
	return windDirections[(index+16)%16]
}

// dayNames indexes Portuguese day names by time.Weekday.
var dayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

func dayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

// roundInt rounds half away from zero, matching the provider conversions.
func roundInt(v float64) int {
	return int(math.Round(v))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// kmh converts a wind speed from m/s to a rounded km/h value.
func kmh(speed float64) int {
	return roundInt(speed * 3.6)
}

// windDeg unwraps an optional bearing, defaulting to 0 like the upstream
// payload contract.
func windDeg(deg *float64) float64 {
	if deg == nil {
		return 0
	}
	return *deg
}

// popPercent scales a 0..1 precipitation probability to a rounded percentage.
func popPercent(pop *float64) int {
	if pop == nil {
		return 0
	}
	return roundInt(*pop * 100)
}

// firstCondition returns the leading weather condition, zero-valued when the
// upstream list is empty.
func firstCondition(list []conditionPayload) Condition {
	if len(list) == 0 {
		return Condition{}
	}
	return Condition{
		Main:        list[0].Main,
		Description: list[0].Description,
		Icon:        list[0].Icon,
	}
}
