package weather

import "time"

// MaxForecastDays is the provider's forecast horizon.
const MaxForecastDays = 16

// Derived flag thresholds.
const (
	RainyPrecipitationMM = 5.0
	HotMeanTempC         = 30.0
	ColdMeanTempC        = 10.0
)

// FeatureRow is one forecast day reduced to the inputs of the price engine.
type FeatureRow struct {
	Date          time.Time  `json:"date"`
	MeanTemp      float64    `json:"avg_temp"`
	TempRange     float64    `json:"temp_range"`
	Precipitation float64    `json:"precipitation"`
	SunshineHours float64    `json:"sunshine_hours"`
	Rainy         bool       `json:"is_rainy"`
	Hot           bool       `json:"is_hot"`
	Cold          bool       `json:"is_cold"`
	DayOfYear     int        `json:"day_of_year"`
	Month         time.Month `json:"month"`
}

// ForecastResponse models the JSON payload returned by the Open-Meteo
// forecast endpoint. Hourly and daily variables arrive as parallel arrays.
type ForecastResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Elevation *float64       `json:"elevation"`
	Timezone  string         `json:"timezone"`
	Hourly    HourlyForecast `json:"hourly"`
	Daily     DailyForecast  `json:"daily"`
}

// HourlyForecast holds the hourly arrays. They are fetched but not used by
// the feature extraction.
type HourlyForecast struct {
	Time               []string   `json:"time"`
	Temperature2m      []*float64 `json:"temperature_2m"`
	RelativeHumidity2m []*float64 `json:"relative_humidity_2m"`
	Precipitation      []*float64 `json:"precipitation"`
	Rain               []*float64 `json:"rain"`
	Snowfall           []*float64 `json:"snowfall"`
	SoilTemperature6cm []*float64 `json:"soil_temperature_6cm"`
	SoilMoisture0To1cm []*float64 `json:"soil_moisture_0_to_1cm"`
	SunshineDuration   []*float64 `json:"sunshine_duration"`
}

// DailyForecast holds the daily arrays.
type DailyForecast struct {
	Time              []string   `json:"time"`
	Temperature2mMax  []*float64 `json:"temperature_2m_max"`
	Temperature2mMin  []*float64 `json:"temperature_2m_min"`
	Temperature2mMean []*float64 `json:"temperature_2m_mean"`
	PrecipitationSum  []*float64 `json:"precipitation_sum"`
	RainSum           []*float64 `json:"rain_sum"`
	SunshineDuration  []*float64 `json:"sunshine_duration"`
}

var hourlyVariables = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"precipitation",
	"rain",
	"snowfall",
	"soil_temperature_6cm",
	"soil_moisture_0_to_1cm",
	"sunshine_duration",
}

var dailyVariables = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"temperature_2m_mean",
	"precipitation_sum",
	"rain_sum",
	"sunshine_duration",
}
