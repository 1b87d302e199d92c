package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Source supplies daily feature rows for a coordinate.
type Source interface {
	Features(ctx context.Context, latitude, longitude float64, days int) ([]FeatureRow, error)
}

// Client fetches forecasts from Open-Meteo.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for baseURL using an http.Client with timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// ClampDays bounds days to the provider's horizon.
func ClampDays(days int) int {
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	if days < 1 {
		return 1
	}
	return days
}

// FetchForecast retrieves the raw forecast payload.
func (c *Client) FetchForecast(ctx context.Context, latitude, longitude float64, days int) (ForecastResponse, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ForecastResponse{}, fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("forecast_days", strconv.Itoa(ClampDays(days)))
	q.Set("hourly", strings.Join(hourlyVariables, ","))
	q.Set("daily", strings.Join(dailyVariables, ","))
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return ForecastResponse{}, err
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return ForecastResponse{}, fmt.Errorf("request forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ForecastResponse{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ForecastResponse{}, fmt.Errorf("decode payload: %w", err)
	}

	return payload, nil
}

// Features fetches the forecast and reduces it to feature rows, one per day
// in ascending date order.
func (c *Client) Features(ctx context.Context, latitude, longitude float64, days int) ([]FeatureRow, error) {
	payload, err := c.FetchForecast(ctx, latitude, longitude, days)
	if err != nil {
		return nil, err
	}
	return BuildFeatureRows(payload.Daily)
}

// BuildFeatureRows converts the daily arrays into feature rows. Missing
// values count as zero and never raise the hot or cold flags.
func BuildFeatureRows(daily DailyForecast) ([]FeatureRow, error) {
	n := len(daily.Time)
	if n == 0 {
		return nil, errors.New("forecast has no daily data")
	}
	for name, col := range map[string][]*float64{
		"temperature_2m_max":  daily.Temperature2mMax,
		"temperature_2m_min":  daily.Temperature2mMin,
		"temperature_2m_mean": daily.Temperature2mMean,
		"precipitation_sum":   daily.PrecipitationSum,
		"sunshine_duration":   daily.SunshineDuration,
	} {
		if len(col) != n {
			return nil, fmt.Errorf("daily %s has %d values, expected %d", name, len(col), n)
		}
	}

	rows := make([]FeatureRow, 0, n)
	for i, day := range daily.Time {
		date, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return nil, fmt.Errorf("parse daily time %q: %w", day, err)
		}

		mean := valueAt(daily.Temperature2mMean, i)
		hasMean := daily.Temperature2mMean[i] != nil
		precip := valueAt(daily.PrecipitationSum, i)
		rows = append(rows, FeatureRow{
			Date:          date,
			MeanTemp:      mean,
			TempRange:     valueAt(daily.Temperature2mMax, i) - valueAt(daily.Temperature2mMin, i),
			Precipitation: precip,
			SunshineHours: valueAt(daily.SunshineDuration, i) / 3600,
			Rainy:         precip > RainyPrecipitationMM,
			Hot:           hasMean && mean > HotMeanTempC,
			Cold:          hasMean && mean < ColdMeanTempC,
			DayOfYear:     date.YearDay(),
			Month:         date.Month(),
		})
	}
	return rows, nil
}

func valueAt(col []*float64, i int) float64 {
	if i >= len(col) || col[i] == nil {
		return 0
	}
	return *col[i]
}
