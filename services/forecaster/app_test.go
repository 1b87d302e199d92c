package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/predictor"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
)

type stubSource struct {
	err     error
	gotLat  float64
	gotLon  float64
	gotDays int
}

func (s *stubSource) Features(_ context.Context, lat, lon float64, days int) ([]weather.FeatureRow, error) {
	s.gotLat, s.gotLon, s.gotDays = lat, lon, days
	if s.err != nil {
		return nil, s.err
	}
	start := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	rows := make([]weather.FeatureRow, weather.ClampDays(days))
	for i := range rows {
		d := start.AddDate(0, 0, i)
		rows[i] = weather.FeatureRow{Date: d, Month: d.Month(), DayOfYear: d.YearDay(), MeanTemp: 22, Precipitation: 8, Rainy: true}
	}
	return rows, nil
}

func newTestApp(t *testing.T, source weather.Source) (*app, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &app{
		source:         source,
		predictionsDir: t.TempDir(),
		out:            out,
		opts: []predictor.Option{
			predictor.WithClock(func() time.Time { return time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC) }),
		},
	}, out
}

func TestRunInfoFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"list india fruits", []string{"-list-fruits"}, []string{"mango", "pomegranate", "SHELF LIFE"}},
		{"list global fruits", []string{"-market", "global", "-list-fruits"}, []string{"strawberry", "apple"}},
		{"list regions", []string{"-list-regions"}, []string{"north", "northeast", "STATES"}},
		{"fruit info", []string{"-fruit-info", "Guava"}, []string{`"name": "guava"`, `"shelf_life_days"`}},
		{"region info", []string{"-region-info", "south"}, []string{`"code": "south"`, `"transportation_cost"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &stubSource{}
			a, out := newTestApp(t, src)
			if err := a.run(context.Background(), tt.args); err != nil {
				t.Fatalf("run: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
			if src.gotDays != 0 {
				t.Error("info flags must not fetch weather")
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		source  *stubSource
		wantErr string
	}{
		{"unknown market", []string{"-market", "mars", "-fruit", "mango", "-price", "10"}, nil, "unknown market"},
		{"missing fruit", []string{"-price", "10", "-region", "north"}, nil, "-fruit is required"},
		{"blank fruit", []string{"-fruit", " ", "-price", "10"}, nil, "-fruit is required"},
		{"missing price", []string{"-fruit", "mango"}, nil, "-price is required"},
		{"unknown region", []string{"-fruit", "mango", "-price", "10", "-region", "midwest"}, nil, "Invalid region: midwest"},
		{"global without coordinates", []string{"-market", "global", "-fruit", "apple", "-price", "2"}, nil, "latitude and longitude are required"},
		{"global has no regions", []string{"-market", "global", "-list-regions"}, nil, "has no regions"},
		{"unknown fruit info", []string{"-fruit-info", "durian"}, nil, "not found"},
		{"bad currency", []string{"-fruit", "mango", "-price", "10", "-currency", "EUR"}, nil, "unsupported currency"},
		{"weather failure", []string{"-fruit", "mango", "-price", "10"}, &stubSource{err: errors.New("timeout")}, "failed to fetch weather data"},
		{"stray argument", []string{"-price", "10", "mango"}, nil, "unexpected arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.source
			if src == nil {
				src = &stubSource{}
			}
			a, _ := newTestApp(t, src)
			err := a.run(context.Background(), tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunDailyForecast(t *testing.T) {
	src := &stubSource{}
	a, out := newTestApp(t, src)

	err := a.run(context.Background(), []string{"-fruit", "mango", "-price", "100", "-region", "west", "-days", "5", "-seed", "42"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Price forecast for mango (west, INR, 5days)") {
		t.Errorf("missing header:\n%s", text)
	}
	if !strings.Contains(text, "2026-10-17  ₹100.00") {
		t.Errorf("missing anchored first row:\n%s", text)
	}
	if src.gotDays != 5 {
		t.Errorf("weather days = %d, want 5", src.gotDays)
	}
	if src.gotLat != 19.0760 || src.gotLon != 72.8777 {
		t.Errorf("weather latitude not taken from region: %v", src.gotLat)
	}
}

func TestRunDailyIsReproducibleWithSeed(t *testing.T) {
	args := []string{"-fruit", "banana", "-price", "40", "-days", "7", "-seed", "9"}

	a1, out1 := newTestApp(t, &stubSource{})
	a2, out2 := newTestApp(t, &stubSource{})
	if err := a1.run(context.Background(), args); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := a2.run(context.Background(), args); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out1.String() != out2.String() {
		t.Errorf("seeded runs differ:\n%s\n---\n%s", out1.String(), out2.String())
	}
}

func TestRunCoordinatesOverrideRegion(t *testing.T) {
	src := &stubSource{}
	a, _ := newTestApp(t, src)

	err := a.run(context.Background(), []string{"-market", "global", "-fruit", "apple", "-price", "2.5", "-latitude", "40.71", "-longitude", "-74.01", "-days", "3"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if src.gotLat != 40.71 || src.gotLon != -74.01 {
		t.Errorf("coordinates = (%v, %v), want (40.71, -74.01)", src.gotLat, src.gotLon)
	}
}

func TestRunYearlySaves(t *testing.T) {
	src := &stubSource{}
	a, out := newTestApp(t, src)

	err := a.run(context.Background(), []string{"-fruit", "orange", "-price", "60", "-region", "east", "-yearly", "-currency", "USD", "-save", "-seed", "3"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if src.gotDays != 0 {
		t.Error("yearly forecast must not fetch weather")
	}

	text := out.String()
	for _, want := range []string{"(east, USD, yearly)", "January 2026", "December 2026", "Saved predictions to"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	path := filepath.Join(a.predictionsDir, "indian", "orange_east_yearly_USD.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file: %v", err)
	}
	points, err := predictor.LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if len(points) != 12 {
		t.Errorf("saved %d points, want 12", len(points))
	}
}

func TestRunHelp(t *testing.T) {
	a, out := newTestApp(t, &stubSource{})
	if err := a.run(context.Background(), []string{"-h"}); err != nil {
		t.Fatalf("run -h: %v", err)
	}
	if !strings.Contains(out.String(), "-list-fruits") {
		t.Errorf("usage missing flags:\n%s", out.String())
	}
}
