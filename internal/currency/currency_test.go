package currency

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Code
		wantErr bool
	}{
		{"", INR, false},
		{"inr", INR, false},
		{" USD ", USD, false},
		{"EUR", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, INR)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRateComposition(t *testing.T) {
	if got := INRToUSD * USDToINR; math.Abs(got-1) > tolerance {
		t.Fatalf("expected INRToUSD*USDToINR == 1, got %v", got)
	}
	if got := Rate(INR, USD) * Rate(USD, INR); math.Abs(got-1) > tolerance {
		t.Fatalf("expected round-trip rate 1, got %v", got)
	}
	if Rate(USD, USD) != 1 || Rate(INR, INR) != 1 {
		t.Fatalf("identity rates must be 1")
	}
}

func TestConvertIsScalar(t *testing.T) {
	series := []float64{100, 97.5, 130.25, 50}

	for _, p := range series {
		usd := Convert(p, INR, USD)
		if math.Abs(usd-p*INRToUSD) > tolerance {
			t.Errorf("expected %v, got %v", p*INRToUSD, usd)
		}
		back := Convert(usd, USD, INR)
		if math.Abs(back-p) > 1e-9*p {
			t.Errorf("round trip drifted: %v -> %v", p, back)
		}
	}

	if got := Convert(1, USD, INR); got != 83 {
		t.Errorf("one dollar should be 83 rupees, got %v", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		price float64
		code  Code
		want  string
	}{
		{100, INR, "₹100.00"},
		{1.999, USD, "$2.00"},
		{83.125, INR, "₹83.13"},
	}

	for _, tt := range tests {
		if got := Format(tt.price, tt.code); got != tt.want {
			t.Errorf("Format(%v, %s): expected %q, got %q", tt.price, tt.code, tt.want, got)
		}
	}
	if got := Round(12.345); got != 12.35 {
		t.Errorf("expected 12.35, got %v", got)
	}
}
