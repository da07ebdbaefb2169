package weather

// Raw OpenWeather payload shapes. Only the fields the normalizers read are
// declared; everything else in the upstream schema is ignored on decode.

type conditionPayload struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type coordPayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type mainPayload struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type windPayload struct {
	Speed float64  `json:"speed"`
	Deg   *float64 `json:"deg"`
}

type cloudsPayload struct {
	All int `json:"all"`
}

type currentPayload struct {
	Name  string       `json:"name"`
	Coord coordPayload `json:"coord"`
	Sys   struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main       mainPayload        `json:"main"`
	Visibility *float64           `json:"visibility"`
	Wind       windPayload        `json:"wind"`
	Clouds     cloudsPayload      `json:"clouds"`
	Weather    []conditionPayload `json:"weather"`
	Timezone   int                `json:"timezone"`
	Dt         int64              `json:"dt"`
}

type forecastItemPayload struct {
	Dt      int64              `json:"dt"`
	Main    mainPayload        `json:"main"`
	Weather []conditionPayload `json:"weather"`
	Wind    windPayload        `json:"wind"`
	Clouds  cloudsPayload      `json:"clouds"`
	Pop     *float64           `json:"pop"`
	Rain    *struct {
		ThreeHours float64 `json:"3h"`
	} `json:"rain"`
}

type forecastPayload struct {
	City struct {
		Name     string       `json:"name"`
		Country  string       `json:"country"`
		Coord    coordPayload `json:"coord"`
		Timezone int          `json:"timezone"`
	} `json:"city"`
	List []forecastItemPayload `json:"list"`
}

type airPayload struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			CO   float64 `json:"co"`
			NO   float64 `json:"no"`
			NO2  float64 `json:"no2"`
			O3   float64 `json:"o3"`
			SO2  float64 `json:"so2"`
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
			NH3  float64 `json:"nh3"`
		} `json:"components"`
	} `json:"list"`
}
