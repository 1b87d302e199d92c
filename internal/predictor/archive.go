package predictor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/engine"
)

// SavedPoint is the on-disk shape of one predicted price.
type SavedPoint struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predicted_price"`
}

// FileName returns the base name (without extension) for a forecast:
// <product>[_<region>]_<period>_<currency>.
func FileName(fc Forecast) string {
	parts := []string{safeName(fc.Product)}
	if fc.Region != "" {
		parts = append(parts, fc.Region)
	}
	parts = append(parts, fc.Period, string(fc.Currency))
	return strings.Join(parts, "_")
}

// safeName lowercases name and replaces anything outside [a-z0-9_] with an
// underscore so the result is a single path element.
func safeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if out == "" {
		return "unknown"
	}
	return out
}

// Dir returns the directory forecasts of market are written to under root.
func Dir(root, market string) string {
	if market == "india" {
		return filepath.Join(root, "indian")
	}
	return root
}

// SaveJSON writes the forecast points as a JSON array under root and returns
// the file path.
func SaveJSON(root string, fc Forecast) (string, error) {
	dir := Dir(root, fc.Market)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create predictions dir: %w", err)
	}

	data, err := json.MarshalIndent(savedPoints(fc.Points), "", "    ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(fc)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write predictions: %w", err)
	}
	return path, nil
}

// LoadJSON reads a file written by SaveJSON.
func LoadJSON(path string) ([]engine.PricePoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var saved []SavedPoint
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	points := make([]engine.PricePoint, 0, len(saved))
	for _, s := range saved {
		d, err := time.Parse(time.DateOnly, s.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", s.Date, err)
		}
		points = append(points, engine.PricePoint{Date: d, Price: s.PredictedPrice})
	}
	return points, nil
}

func savedPoints(points []engine.PricePoint) []SavedPoint {
	out := make([]SavedPoint, 0, len(points))
	for _, p := range points {
		out = append(out, SavedPoint{Date: p.Date.Format(time.DateOnly), PredictedPrice: p.Price})
	}
	return out
}
