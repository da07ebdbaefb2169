package weather

// Normalized, unit-converted structures served to clients. These are derived
// per request and never persisted.

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind speed is km/h, Direction a 16-point compass label.
type Wind struct {
	Speed     int     `json:"speed"`
	Deg       float64 `json:"deg"`
	Direction string  `json:"direction"`
}

// Snapshot is the normalized current-weather view. Temperatures are whole
// degrees Celsius, Visibility is km and nil when upstream omits it.
type Snapshot struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Coord       Coordinates `json:"coord"`
	Temperature int         `json:"temperature"`
	FeelsLike   int         `json:"feels_like"`
	TempMin     int         `json:"temp_min"`
	TempMax     int         `json:"temp_max"`
	Humidity    int         `json:"humidity"`
	Pressure    int         `json:"pressure"`
	Visibility  *float64    `json:"visibility"`
	Wind        Wind        `json:"wind"`
	Clouds      int         `json:"clouds"`
	Weather     Condition   `json:"weather"`
	Sunrise     int64       `json:"sunrise"`
	Sunset      int64       `json:"sunset"`
	Timezone    int         `json:"timezone"`
	Dt          int64       `json:"dt"`
}

type HourlyWind struct {
	Speed     int    `json:"speed"`
	Direction string `json:"direction"`
}

// HourlyEntry is one 3-hour forecast sample. Pop is a percentage, Rain the
// 3-hour volume in mm (0 when upstream omits it).
type HourlyEntry struct {
	Dt          int64      `json:"dt"`
	Time        string     `json:"time"`
	Temperature int        `json:"temperature"`
	FeelsLike   int        `json:"feels_like"`
	Humidity    int        `json:"humidity"`
	Weather     Condition  `json:"weather"`
	Wind        HourlyWind `json:"wind"`
	Pop         int        `json:"pop"`
	Rain        float64    `json:"rain"`
	Clouds      int        `json:"clouds"`
}

// DailyEntry represents a calendar date through its first 3-hour sample; the
// min/max fields come from that single sample, not a whole-day aggregate.
type DailyEntry struct {
	Dt        int64     `json:"dt"`
	Date      string    `json:"date"`
	DayName   string    `json:"day_name"`
	TempMin   int       `json:"temp_min"`
	TempMax   int       `json:"temp_max"`
	Humidity  int       `json:"humidity"`
	Weather   Condition `json:"weather"`
	Pop       int       `json:"pop"`
	WindSpeed int       `json:"wind_speed"`
}

// Forecast bundles the hourly (next 24h) and daily (5 distinct dates) views
// plus the upstream envelope's city metadata.
type Forecast struct {
	City     string        `json:"city"`
	Country  string        `json:"country"`
	Coord    Coordinates   `json:"coord"`
	Timezone int           `json:"timezone"`
	Hourly   []HourlyEntry `json:"hourly"`
	Daily    []DailyEntry  `json:"daily"`
}

// AirComponents holds pollutant concentrations rounded to one decimal.
type AirComponents struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

// AirQuality is the current air-pollution sample with the AQI index mapped to
// a Portuguese label and a color tag.
type AirQuality struct {
	AQI        int           `json:"aqi"`
	Label      string        `json:"label"`
	Color      string        `json:"color"`
	Components AirComponents `json:"components"`
	Dt         int64         `json:"dt"`
}
