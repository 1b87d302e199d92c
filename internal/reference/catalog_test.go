package reference

import (
	"testing"
	"time"
)

func TestSeasonContains(t *testing.T) {
	tests := []struct {
		name   string
		season Season
		month  time.Month
		want   bool
	}{
		{"inside plain range", Season{time.February, time.May}, time.March, true},
		{"range start inclusive", Season{time.February, time.May}, time.February, true},
		{"range end inclusive", Season{time.February, time.May}, time.May, true},
		{"outside plain range", Season{time.February, time.May}, time.October, false},
		{"year round", Season{time.January, time.December}, time.July, true},
		{"wrapped december", Season{time.June, time.February}, time.December, true},
		{"wrapped january", Season{time.June, time.February}, time.January, true},
		{"wrapped gap", Season{time.June, time.February}, time.April, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.season.Contains(tt.month); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.month, got, tt.want)
			}
		})
	}
}

func TestCatalogTablesAreComplete(t *testing.T) {
	for _, p := range India.Products() {
		if len(p.SeasonalFactor) != 12 {
			t.Errorf("%s: expected 12 seasonal factors, got %d", p.Name, len(p.SeasonalFactor))
		}
		for _, r := range p.PrimaryRegions {
			if _, ok := India.Region(r); !ok {
				t.Errorf("%s: primary region %q is not a known region", p.Name, r)
			}
		}
	}
	if len(India.FestivalFactor) != 12 {
		t.Errorf("expected 12 festival factors, got %d", len(India.FestivalFactor))
	}
	if len(India.Regions()) != 6 {
		t.Errorf("expected 6 regions, got %d", len(India.Regions()))
	}
	if Global.Regional() {
		t.Errorf("global catalog must not be regional")
	}
	if !India.Regional() {
		t.Errorf("india catalog must be regional")
	}
}

func TestProductOrDefault(t *testing.T) {
	p, found := India.ProductOrDefault("  MANGO ")
	if !found || p.Name != "mango" {
		t.Fatalf("expected case-insensitive hit on mango, got %q found=%v", p.Name, found)
	}

	p, found = India.ProductOrDefault("durian")
	if found {
		t.Fatalf("durian should not be found")
	}
	if p.Name != India.DefaultProduct {
		t.Errorf("expected default %q, got %q", India.DefaultProduct, p.Name)
	}

	p, _ = Global.ProductOrDefault("durian")
	if p.Name != "apple" {
		t.Errorf("expected global default apple, got %q", p.Name)
	}
}

func TestLookupAndFestival(t *testing.T) {
	c, ok := Lookup("India")
	if !ok || c != India {
		t.Fatalf("expected India catalog")
	}
	if _, ok := Lookup("mars"); ok {
		t.Fatalf("unexpected catalog for mars")
	}
	if got := India.Festival(time.November); got != 1.4 {
		t.Errorf("expected Diwali factor 1.4, got %v", got)
	}
	if got := Global.Festival(time.November); got != 1.0 {
		t.Errorf("expected neutral factor without a table, got %v", got)
	}
	if got := India.ProductNames()[0]; got != "mango" {
		t.Errorf("expected declaration order to start with mango, got %q", got)
	}
}
