// Package predictor binds a market catalog, an optional region and a weather
// source to the price engine, and handles currency and output conversion.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/currency"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/engine"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/errx"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/logx"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/reference"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
)

// DefaultDays is the short-term horizon used when a request leaves it unset.
const DefaultDays = 14

// PeriodYearly labels month-indexed forecasts.
const PeriodYearly = "yearly"

var (
	ErrUnknownRegion       = errors.New("unknown region")
	ErrInvalidPrice        = errors.New("current price must be positive")
	ErrInvalidDays         = errors.New("days must be positive")
	ErrMissingCoordinates  = errors.New("latitude and longitude are required")
	ErrWeatherUnavailable  = errors.New("failed to fetch weather data")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// Request carries the caller's inputs for one prediction.
type Request struct {
	Product      string
	CurrentPrice float64
	Currency     string
	Days         int
	Latitude     *float64
	Longitude    *float64
}

// Forecast is a complete prediction result.
type Forecast struct {
	Product         string              `json:"product"`
	ResolvedProduct string              `json:"resolved_product"`
	Fallback        bool                `json:"fallback"`
	Market          string              `json:"market"`
	Region          string              `json:"region,omitempty"`
	Currency        currency.Code       `json:"currency"`
	Period          string              `json:"period"`
	Latitude        float64             `json:"latitude"`
	Longitude       float64             `json:"longitude"`
	CurrentPrice    float64             `json:"current_price"`
	Points          []engine.PricePoint `json:"points"`
}

// Predictor produces forecasts for one market and, for regional markets,
// one region. It holds no mutable state and is safe for concurrent use.
type Predictor struct {
	catalog *reference.Catalog
	region  *reference.Region
	source  weather.Source
	newRand func() *rand.Rand
	now     func() time.Time
}

// Option customises a Predictor.
type Option func(*Predictor)

// WithRandSource sets the factory for the per-call random source.
func WithRandSource(fn func() *rand.Rand) Option {
	return func(p *Predictor) { p.newRand = fn }
}

// WithSeed makes every call draw from the same deterministic sequence.
func WithSeed(seed uint64) Option {
	return WithRandSource(func() *rand.Rand {
		return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	})
}

// WithClock overrides the clock used for the yearly calendar.
func WithClock(now func() time.Time) Option {
	return func(p *Predictor) { p.now = now }
}

// New builds a predictor. regionCode is required for regional catalogs and
// ignored otherwise; an empty code selects the catalog default.
func New(catalog *reference.Catalog, regionCode string, source weather.Source, opts ...Option) (*Predictor, error) {
	p := &Predictor{
		catalog: catalog,
		source:  source,
		newRand: func() *rand.Rand { return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) },
		now:     time.Now,
	}

	if catalog.Regional() {
		if regionCode == "" {
			regionCode = catalog.DefaultRegion
		}
		region, ok := catalog.Region(regionCode)
		if !ok {
			return nil, errx.Validation(ErrUnknownRegion,
				fmt.Sprintf("Invalid region: %s. Must be one of %v", regionCode, catalog.RegionCodes()))
		}
		p.region = &region
	}

	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Catalog returns the bound catalog.
func (p *Predictor) Catalog() *reference.Catalog {
	return p.catalog
}

// Region returns the bound region, if any.
func (p *Predictor) Region() (reference.Region, bool) {
	if p.region == nil {
		return reference.Region{}, false
	}
	return *p.region, true
}

func (p *Predictor) market() *engine.Market {
	if p.region == nil {
		return nil
	}
	return &engine.Market{Region: *p.region, Festival: p.catalog.FestivalFactor}
}

func (p *Predictor) regionCode() string {
	if p.region == nil {
		return ""
	}
	return p.region.Code
}

// PredictPrices produces a day-indexed forecast from the weather source.
func (p *Predictor) PredictPrices(ctx context.Context, req Request) (Forecast, error) {
	if req.Days == 0 {
		req.Days = DefaultDays
	}
	if req.Days < 0 {
		return Forecast{}, errx.Validation(ErrInvalidDays, ErrInvalidDays.Error())
	}

	fc, product, base, err := p.prepare(req)
	if err != nil {
		return Forecast{}, err
	}

	rows, err := p.source.Features(ctx, fc.Latitude, fc.Longitude, req.Days)
	if err != nil {
		logx.Error().Err(err).
			Float64("latitude", fc.Latitude).
			Float64("longitude", fc.Longitude).
			Msg("weather source failed")
		return Forecast{}, errx.Upstream(err, ErrWeatherUnavailable.Error())
	}
	if len(rows) == 0 {
		return Forecast{}, errx.Upstream(ErrWeatherUnavailable, ErrWeatherUnavailable.Error())
	}

	eng := engine.New(p.newRand())
	points := eng.Daily(rows, product, base, p.market())
	fc.Points = p.convert(points, fc.Currency)
	// Restore the anchor exactly; the base-currency round trip can drift by an ulp.
	fc.Points[0].Price = req.CurrentPrice
	fc.Period = fmt.Sprintf("%ddays", len(rows))
	return fc, nil
}

// PredictYearly produces one first-of-month price per month of the current
// year. It makes no weather call.
func (p *Predictor) PredictYearly(_ context.Context, req Request) (Forecast, error) {
	fc, product, base, err := p.prepare(req)
	if err != nil {
		return Forecast{}, err
	}

	eng := engine.New(p.newRand())
	points := eng.Yearly(product, base, p.now().Year(), p.market())
	fc.Points = p.convert(points, fc.Currency)
	fc.Period = PeriodYearly
	return fc, nil
}

func (p *Predictor) prepare(req Request) (Forecast, reference.Product, float64, error) {
	if req.CurrentPrice <= 0 {
		return Forecast{}, reference.Product{}, 0, errx.Validation(ErrInvalidPrice, ErrInvalidPrice.Error())
	}

	code, err := currency.Parse(req.Currency, p.catalog.Currency)
	if err != nil {
		return Forecast{}, reference.Product{}, 0, errx.Validation(ErrUnsupportedCurrency, err.Error())
	}

	lat, lon, err := p.coordinates(req)
	if err != nil {
		return Forecast{}, reference.Product{}, 0, err
	}

	product, found := p.catalog.ProductOrDefault(req.Product)
	if !found {
		logx.Warn().
			Str("product", req.Product).
			Str("default", product.Name).
			Str("market", p.catalog.Market).
			Msg("product not found in reference tables, using default")
	}

	fc := Forecast{
		Product:         req.Product,
		ResolvedProduct: product.Name,
		Fallback:        !found,
		Market:          p.catalog.Market,
		Region:          p.regionCode(),
		Currency:        code,
		Latitude:        lat,
		Longitude:       lon,
		CurrentPrice:    req.CurrentPrice,
	}
	return fc, product, currency.Convert(req.CurrentPrice, code, p.catalog.Currency), nil
}

func (p *Predictor) coordinates(req Request) (float64, float64, error) {
	if req.Latitude != nil && req.Longitude != nil {
		return *req.Latitude, *req.Longitude, nil
	}
	if p.region != nil {
		return p.region.Latitude, p.region.Longitude, nil
	}
	return 0, 0, errx.Validation(ErrMissingCoordinates, ErrMissingCoordinates.Error())
}

// convert expresses the base-currency series in code with one scalar.
func (p *Predictor) convert(points []engine.PricePoint, code currency.Code) []engine.PricePoint {
	rate := currency.Rate(p.catalog.Currency, code)
	out := make([]engine.PricePoint, len(points))
	for i, pt := range points {
		out[i] = engine.PricePoint{Date: pt.Date, Price: pt.Price * rate}
	}
	return out
}
