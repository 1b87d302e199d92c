package reference

import (
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/currency"
)

// Global is the region-free catalog. It has no seasonal tables; the engine
// derives multipliers from the growing season and harvest months instead.
var Global = &Catalog{
	Market:         "global",
	Currency:       currency.USD,
	DefaultProduct: "apple",
	products: []Product{
		{
			Name:            "apple",
			Category:        "fruit",
			TempSensitivity: 0.7,
			RainSensitivity: 0.5,
			GrowingSeason:   Season{Start: time.March, End: time.October},
			HarvestMonths:   months(9, 10, 11),
			ShelfLifeDays:   90,
			PriceVolatility: 0.3,
		},
		{
			Name:            "banana",
			Category:        "fruit",
			TempSensitivity: 0.9,
			RainSensitivity: 0.8,
			GrowingSeason:   Season{Start: time.January, End: time.December},
			HarvestMonths:   months(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12),
			ShelfLifeDays:   14,
			PriceVolatility: 0.2,
		},
		{
			Name:            "orange",
			Category:        "fruit",
			TempSensitivity: 0.6,
			RainSensitivity: 0.4,
			GrowingSeason:   Season{Start: time.February, End: time.October},
			HarvestMonths:   months(11, 12, 1, 2),
			ShelfLifeDays:   30,
			PriceVolatility: 0.4,
		},
		{
			Name:            "mango",
			Category:        "fruit",
			TempSensitivity: 0.8,
			RainSensitivity: 0.6,
			GrowingSeason:   Season{Start: time.February, End: time.August},
			HarvestMonths:   months(5, 6, 7, 8),
			ShelfLifeDays:   21,
			PriceVolatility: 0.5,
		},
		{
			Name:            "strawberry",
			Category:        "fruit",
			TempSensitivity: 0.8,
			RainSensitivity: 0.7,
			GrowingSeason:   Season{Start: time.March, End: time.June},
			HarvestMonths:   months(5, 6, 7),
			ShelfLifeDays:   7,
			PriceVolatility: 0.6,
		},
	},
}
