// Package reference holds the static seasonal and regional tables the price
// engine reads. Catalogs are built once at init and never mutated.
package reference

import (
	"sort"
	"strings"
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/currency"
)

// Season is an inclusive month range. Start after End wraps the year
// boundary, so {June, February} covers June through February.
type Season struct {
	Start time.Month `json:"start"`
	End   time.Month `json:"end"`
}

// Contains reports whether m falls inside the season.
func (s Season) Contains(m time.Month) bool {
	if s.Start <= s.End {
		return m >= s.Start && m <= s.End
	}
	return m >= s.Start || m <= s.End
}

// Product is the reference record for one fruit.
type Product struct {
	Name            string                 `json:"name"`
	LocalName       string                 `json:"local_name,omitempty"`
	Category        string                 `json:"category"`
	Varieties       []string               `json:"varieties,omitempty"`
	TempSensitivity float64                `json:"temp_sensitivity"`
	RainSensitivity float64                `json:"rain_sensitivity"`
	GrowingSeason   Season                 `json:"growing_season"`
	HarvestMonths   []time.Month           `json:"harvest_months"`
	ShelfLifeDays   int                    `json:"shelf_life_days"`
	PriceVolatility float64                `json:"price_volatility"`
	BasePrice       float64                `json:"base_price,omitempty"`
	SeasonalFactor  map[time.Month]float64 `json:"seasonal_price_factor,omitempty"`
	PrimaryRegions  []string               `json:"primary_regions,omitempty"`
}

// IsHarvestMonth reports whether m is one of the product's harvest months.
func (p Product) IsHarvestMonth(m time.Month) bool {
	for _, h := range p.HarvestMonths {
		if h == m {
			return true
		}
	}
	return false
}

// Region is a market region with its cost multipliers.
type Region struct {
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	States             []string `json:"states"`
	TransportationCost float64  `json:"transportation_cost"`
	StorageCost        float64  `json:"storage_cost"`
	DemandFactor       float64  `json:"demand_factor"`
}

// Catalog groups the products, regions and festival table of one market.
type Catalog struct {
	Market         string
	Currency       currency.Code
	DefaultProduct string
	DefaultRegion  string
	FestivalFactor map[time.Month]float64

	products []Product
	regions  []Region
}

// Regional reports whether the catalog carries region cost tables.
func (c *Catalog) Regional() bool {
	return len(c.regions) > 0
}

// Product looks up a product by case-insensitive name.
func (c *Catalog) Product(name string) (Product, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range c.products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// ProductOrDefault returns the named product, or the catalog default when
// the name is unknown. The boolean is false when the default was used.
func (c *Catalog) ProductOrDefault(name string) (Product, bool) {
	if p, ok := c.Product(name); ok {
		return p, true
	}
	p, _ := c.Product(c.DefaultProduct)
	return p, false
}

// Products returns the products in declaration order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductNames returns the product identifiers in declaration order.
func (c *Catalog) ProductNames() []string {
	names := make([]string, 0, len(c.products))
	for _, p := range c.products {
		names = append(names, p.Name)
	}
	return names
}

// Region looks up a region by case-insensitive code.
func (c *Catalog) Region(code string) (Region, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, r := range c.regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// Regions returns the regions in declaration order.
func (c *Catalog) Regions() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// RegionCodes returns the region codes in declaration order.
func (c *Catalog) RegionCodes() []string {
	codes := make([]string, 0, len(c.regions))
	for _, r := range c.regions {
		codes = append(codes, r.Code)
	}
	return codes
}

// Festival returns the festival multiplier for m, 1.0 when absent.
func (c *Catalog) Festival(m time.Month) float64 {
	if f, ok := c.FestivalFactor[m]; ok {
		return f
	}
	return 1.0
}

var catalogs = map[string]*Catalog{
	India.Market:  India,
	Global.Market: Global,
}

// Lookup returns the catalog for a market name.
func Lookup(market string) (*Catalog, bool) {
	c, ok := catalogs[strings.ToLower(strings.TrimSpace(market))]
	return c, ok
}

// Markets returns the known market names, sorted.
func Markets() []string {
	out := make([]string, 0, len(catalogs))
	for name := range catalogs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func months(ms ...int) []time.Month {
	out := make([]time.Month, 0, len(ms))
	for _, m := range ms {
		out = append(out, time.Month(m))
	}
	return out
}

func monthTable(factors [12]float64) map[time.Month]float64 {
	out := make(map[time.Month]float64, 12)
	for i, f := range factors {
		out[time.Month(i+1)] = f
	}
	return out
}
