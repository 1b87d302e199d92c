// Package engine walks a day- or month-indexed timeline and applies the
// compounding price adjustments derived from weather, seasonality, harvest
// and festival calendars and regional cost factors.
package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/reference"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
)

// Daily adjustment coefficients, as fractions of the previous price.
const (
	noiseScale        = 0.01
	weatherTempScale  = 0.02
	weatherRainScale  = 0.015
	harvestGlut       = 0.03
	offSeasonScarcity = 0.02
	seasonalScale     = 0.01
	festivalScale     = 0.01
	transportScale    = 0.005
	storageScale      = 0.005
	demandScale       = 0.01

	sensitivityThreshold = 0.5
	floorRatio           = 0.5
)

// Yearly multipliers for the region-free market.
const (
	harvestMultiplier   = 0.8
	offSeasonMultiplier = 1.3
	globalJitter        = 0.1
	regionalJitter      = 0.05
)

// PricePoint is one predicted price. Its JSON form carries the date as
// YYYY-MM-DD.
type PricePoint struct {
	Date  time.Time
	Price float64
}

type pricePointJSON struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// MarshalJSON implements json.Marshaler.
func (p PricePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(pricePointJSON{Date: p.Date.Format(time.DateOnly), Price: p.Price})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PricePoint) UnmarshalJSON(data []byte) error {
	var raw pricePointJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := time.Parse(time.DateOnly, raw.Date)
	if err != nil {
		return fmt.Errorf("parse price point date %q: %w", raw.Date, err)
	}
	p.Date, p.Price = date, raw.Price
	return nil
}

// Market is the regional context of a prediction. A nil *Market selects the
// region-free rules.
type Market struct {
	Region   reference.Region
	Festival map[time.Month]float64
}

func (m *Market) festival(month time.Month) float64 {
	if f, ok := m.Festival[month]; ok {
		return f
	}
	return 1.0
}

// Engine applies the adjustment rules. It is not safe for concurrent use
// because it owns its random source.
type Engine struct {
	rng *rand.Rand
}

// New returns an engine drawing from rng.
func New(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// NewSeeded returns an engine with a deterministic PCG source.
func NewSeeded(seed uint64) *Engine {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Daily produces one price per feature row. The first point is start
// unchanged; every later point compounds on the previous one and never
// drops below half of start.
func (e *Engine) Daily(rows []weather.FeatureRow, product reference.Product, start float64, market *Market) []PricePoint {
	points := make([]PricePoint, 0, len(rows))
	floor := floorRatio * start

	prev := start
	for i, row := range rows {
		if i == 0 {
			points = append(points, PricePoint{Date: row.Date, Price: start})
			continue
		}

		change := e.rng.NormFloat64() * noiseScale * product.PriceVolatility * prev
		change += weatherDelta(row, product, prev)
		change += seasonDelta(row.Month, product, prev)
		if market != nil {
			change += market.delta(row.Month, product, prev)
		}

		prev = math.Max(prev+change, floor)
		points = append(points, PricePoint{Date: row.Date, Price: prev})
	}
	return points
}

func weatherDelta(row weather.FeatureRow, product reference.Product, prev float64) float64 {
	var delta float64
	if (row.Hot || row.Cold) && product.TempSensitivity > sensitivityThreshold {
		delta += weatherTempScale * product.TempSensitivity * prev
	}
	if row.Rainy && product.RainSensitivity > sensitivityThreshold {
		delta += weatherRainScale * product.RainSensitivity * prev
	}
	return delta
}

func seasonDelta(month time.Month, product reference.Product, prev float64) float64 {
	switch {
	case product.IsHarvestMonth(month):
		return -harvestGlut * prev
	case !product.GrowingSeason.Contains(month):
		return offSeasonScarcity * prev
	default:
		return 0
	}
}

func (m *Market) delta(month time.Month, product reference.Product, prev float64) float64 {
	delta := (seasonalFactor(product, month) - 1.0) * seasonalScale * prev
	delta += (m.festival(month) - 1.0) * festivalScale * prev
	delta += (m.Region.TransportationCost - 1.0) * transportScale * prev
	delta += (m.Region.StorageCost - 1.0) * storageScale * prev
	delta += (m.Region.DemandFactor - 1.0) * demandScale * prev
	return delta
}

// Yearly produces twelve first-of-month prices for year. Each month is
// derived from start independently; there is no anchor.
func (e *Engine) Yearly(product reference.Product, start float64, year int, market *Market) []PricePoint {
	points := make([]PricePoint, 0, 12)
	for m := time.January; m <= time.December; m++ {
		var price, jitter float64
		if market == nil {
			price = start * GlobalMultiplier(product, m)
			jitter = globalJitter
		} else {
			price = start * seasonalFactor(product, m) * market.festival(m)
			price *= market.Region.TransportationCost
			price *= market.Region.StorageCost
			price *= market.Region.DemandFactor
			jitter = regionalJitter
		}

		spread := jitter * product.PriceVolatility
		price *= 1 - spread + 2*spread*e.rng.Float64()

		points = append(points, PricePoint{
			Date:  time.Date(year, m, 1, 0, 0, 0, 0, time.UTC),
			Price: price,
		})
	}
	return points
}

// GlobalMultiplier is the region-free seasonal multiplier for month.
func GlobalMultiplier(product reference.Product, month time.Month) float64 {
	switch {
	case product.IsHarvestMonth(month):
		return harvestMultiplier
	case !product.GrowingSeason.Contains(month):
		return offSeasonMultiplier
	default:
		return 1.0
	}
}

func seasonalFactor(product reference.Product, month time.Month) float64 {
	if f, ok := product.SeasonalFactor[month]; ok {
		return f
	}
	return 1.0
}
