package reference

import (
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/currency"
)

// India is the regional catalog for Indian markets. Prices are in INR per kg
// (per dozen for banana).
var India = &Catalog{
	Market:         "india",
	Currency:       currency.INR,
	DefaultProduct: "mango",
	DefaultRegion:  "north",
	FestivalFactor: map[time.Month]float64{
		time.January:   1.1, // Lohri, Makar Sankranti
		time.February:  1.0,
		time.March:     1.05, // Holi
		time.April:     1.0,
		time.May:       1.0,
		time.June:      1.0,
		time.July:      1.0,
		time.August:    1.15, // Raksha Bandhan, Independence Day
		time.September: 1.1,  // Ganesh Chaturthi
		time.October:   1.3,  // Dussehra, Durga Puja
		time.November:  1.4,  // Diwali
		time.December:  1.1,  // Christmas
	},
	products: []Product{
		{
			Name:            "mango",
			LocalName:       "आम (Aam)",
			Category:        "fruit",
			Varieties:       []string{"Alphonso", "Dasheri", "Langra", "Chausa", "Kesar", "Banganapalli"},
			TempSensitivity: 0.8,
			RainSensitivity: 0.7,
			GrowingSeason:   Season{Start: time.February, End: time.May},
			HarvestMonths:   months(4, 5, 6, 7),
			ShelfLifeDays:   10,
			PriceVolatility: 0.6,
			BasePrice:       100,
			SeasonalFactor:  monthTable([12]float64{2.0, 1.8, 1.5, 1.0, 0.7, 0.8, 1.0, 1.5, 1.8, 2.0, 2.0, 2.0}),
			PrimaryRegions:  []string{"north", "south", "west"},
		},
		{
			Name:            "banana",
			LocalName:       "केला (Kela)",
			Category:        "fruit",
			Varieties:       []string{"Robusta", "Poovan", "Nendran", "Red Banana", "Monthan"},
			TempSensitivity: 0.7,
			RainSensitivity: 0.8,
			GrowingSeason:   Season{Start: time.January, End: time.December},
			HarvestMonths:   months(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12),
			ShelfLifeDays:   7,
			PriceVolatility: 0.3,
			BasePrice:       40,
			SeasonalFactor:  monthTable([12]float64{1.0, 1.0, 1.0, 1.0, 1.0, 1.1, 1.2, 1.2, 1.1, 1.0, 1.0, 1.0}),
			PrimaryRegions:  []string{"south", "west", "east"},
		},
		{
			Name:            "apple",
			LocalName:       "सेब (Seb)",
			Category:        "fruit",
			Varieties:       []string{"Shimla", "Kinnaur", "Kashmir", "Royal Delicious", "Golden Delicious"},
			TempSensitivity: 0.6,
			RainSensitivity: 0.5,
			GrowingSeason:   Season{Start: time.March, End: time.August},
			HarvestMonths:   months(8, 9, 10, 11),
			ShelfLifeDays:   30,
			PriceVolatility: 0.4,
			BasePrice:       150,
			SeasonalFactor:  monthTable([12]float64{1.3, 1.4, 1.5, 1.6, 1.7, 1.8, 1.5, 1.0, 0.8, 0.9, 1.0, 1.2}),
			PrimaryRegions:  []string{"north", "northeast"},
		},
		{
			Name:            "orange",
			LocalName:       "संतरा (Santra)",
			Category:        "fruit",
			Varieties:       []string{"Nagpur", "Darjeeling", "Khasi", "Coorg"},
			TempSensitivity: 0.5,
			RainSensitivity: 0.6,
			GrowingSeason:   Season{Start: time.June, End: time.November},
			HarvestMonths:   months(11, 12, 1, 2),
			ShelfLifeDays:   14,
			PriceVolatility: 0.5,
			BasePrice:       80,
			SeasonalFactor:  monthTable([12]float64{0.9, 1.0, 1.3, 1.5, 1.7, 1.8, 1.9, 2.0, 1.8, 1.5, 0.8, 0.8}),
			PrimaryRegions:  []string{"central", "south", "northeast"},
		},
		{
			Name:            "guava",
			LocalName:       "अमरूद (Amrood)",
			Category:        "fruit",
			Varieties:       []string{"Allahabad Safeda", "Lucknow 49", "Lalit", "Shweta"},
			TempSensitivity: 0.4,
			RainSensitivity: 0.5,
			GrowingSeason:   Season{Start: time.June, End: time.February},
			HarvestMonths:   months(8, 9, 10, 11, 12, 1),
			ShelfLifeDays:   5,
			PriceVolatility: 0.4,
			BasePrice:       60,
			SeasonalFactor:  monthTable([12]float64{1.0, 1.2, 1.5, 1.7, 1.8, 1.7, 1.5, 1.0, 0.8, 0.7, 0.8, 0.9}),
			PrimaryRegions:  []string{"north", "central", "east"},
		},
		{
			Name:            "pomegranate",
			LocalName:       "अनार (Anar)",
			Category:        "fruit",
			Varieties:       []string{"Bhagwa", "Ganesh", "Ruby", "Mridula"},
			TempSensitivity: 0.5,
			RainSensitivity: 0.4,
			GrowingSeason:   Season{Start: time.June, End: time.September},
			HarvestMonths:   months(9, 10, 11, 12, 1, 2),
			ShelfLifeDays:   20,
			PriceVolatility: 0.5,
			BasePrice:       120,
			SeasonalFactor:  monthTable([12]float64{0.9, 1.0, 1.3, 1.5, 1.7, 1.8, 1.6, 1.4, 0.8, 0.7, 0.8, 0.8}),
			PrimaryRegions:  []string{"west", "south", "central"},
		},
		{
			Name:            "papaya",
			LocalName:       "पपीता (Papita)",
			Category:        "fruit",
			Varieties:       []string{"Red Lady", "Taiwan", "Pusa Delicious", "Pusa Dwarf"},
			TempSensitivity: 0.7,
			RainSensitivity: 0.6,
			GrowingSeason:   Season{Start: time.January, End: time.December},
			HarvestMonths:   months(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12),
			ShelfLifeDays:   7,
			PriceVolatility: 0.3,
			BasePrice:       50,
			SeasonalFactor:  monthTable([12]float64{1.0, 1.0, 1.0, 1.0, 1.0, 1.1, 1.2, 1.2, 1.1, 1.0, 1.0, 1.0}),
			PrimaryRegions:  []string{"south", "west", "east"},
		},
	},
	regions: []Region{
		{
			Code: "north", Name: "North India", Latitude: 28.6139, Longitude: 77.2090,
			States:             []string{"Delhi", "Haryana", "Punjab", "Uttar Pradesh", "Uttarakhand", "Himachal Pradesh", "Jammu & Kashmir"},
			TransportationCost: 1.0, StorageCost: 1.0, DemandFactor: 1.1,
		},
		{
			Code: "south", Name: "South India", Latitude: 13.0827, Longitude: 77.5877,
			States:             []string{"Karnataka", "Tamil Nadu", "Kerala", "Andhra Pradesh", "Telangana"},
			TransportationCost: 1.1, StorageCost: 0.95, DemandFactor: 1.0,
		},
		{
			Code: "east", Name: "East India", Latitude: 22.5726, Longitude: 88.3639,
			States:             []string{"West Bengal", "Bihar", "Jharkhand", "Odisha", "Assam"},
			TransportationCost: 1.05, StorageCost: 1.05, DemandFactor: 0.95,
		},
		{
			Code: "west", Name: "West India", Latitude: 19.0760, Longitude: 72.8777,
			States:             []string{"Maharashtra", "Gujarat", "Rajasthan", "Goa"},
			TransportationCost: 1.0, StorageCost: 0.9, DemandFactor: 1.05,
		},
		{
			Code: "central", Name: "Central India", Latitude: 23.2599, Longitude: 77.4126,
			States:             []string{"Madhya Pradesh", "Chhattisgarh"},
			TransportationCost: 1.15, StorageCost: 1.0, DemandFactor: 0.9,
		},
		{
			Code: "northeast", Name: "Northeast India", Latitude: 25.5788, Longitude: 91.8933,
			States:             []string{"Assam", "Meghalaya", "Tripura", "Manipur", "Mizoram", "Nagaland", "Arunachal Pradesh", "Sikkim"},
			TransportationCost: 1.2, StorageCost: 1.1, DemandFactor: 0.85,
		},
	},
}
