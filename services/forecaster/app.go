package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/currency"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/logx"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/predictor"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/reference"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
)

// app runs one forecaster invocation.
type app struct {
	source         weather.Source
	predictionsDir string
	out            io.Writer
	opts           []predictor.Option
}

// optionalFloat is a float flag that remembers whether it was set.
type optionalFloat struct {
	value *float64
}

func (f *optionalFloat) String() string {
	if f.value == nil {
		return ""
	}
	return strconv.FormatFloat(*f.value, 'f', -1, 64)
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.value = &v
	return nil
}

type options struct {
	market      string
	fruit       string
	price       float64
	region      string
	latitude    optionalFloat
	longitude   optionalFloat
	days        int
	yearly      bool
	currency    string
	save        bool
	outputDir   string
	seed        uint64
	listFruits  bool
	listRegions bool
	fruitInfo   string
	regionInfo  string
}

func (a *app) parse(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("forecaster", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&opts.market, "market", "india", "market: india or global")
	fs.StringVar(&opts.fruit, "fruit", "", "fruit to forecast (required unless an info flag is set)")
	fs.Float64Var(&opts.price, "price", 0, "current price in -currency units")
	fs.StringVar(&opts.region, "region", "", "region code (india only)")
	fs.Var(&opts.latitude, "latitude", "latitude, overrides the region center")
	fs.Var(&opts.longitude, "longitude", "longitude, overrides the region center")
	fs.IntVar(&opts.days, "days", predictor.DefaultDays, "forecast horizon in days (max 16)")
	fs.BoolVar(&opts.yearly, "yearly", false, "forecast one price per month of the current year")
	fs.StringVar(&opts.currency, "currency", "", "INR or USD (market default when empty)")
	fs.BoolVar(&opts.save, "save", false, "write the forecast as JSON")
	fs.StringVar(&opts.outputDir, "output", a.predictionsDir, "directory for -save")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible forecasts (0 = random)")
	fs.BoolVar(&opts.listFruits, "list-fruits", false, "list fruits and exit")
	fs.BoolVar(&opts.listRegions, "list-regions", false, "list regions and exit")
	fs.StringVar(&opts.fruitInfo, "fruit-info", "", "print a fruit's reference data and exit")
	fs.StringVar(&opts.regionInfo, "region-info", "", "print a region's reference data and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	opts, err := a.parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	catalog, ok := reference.Lookup(opts.market)
	if !ok {
		return fmt.Errorf("unknown market %q: must be one of %v", opts.market, reference.Markets())
	}

	switch {
	case opts.listFruits:
		return a.listFruits(catalog)
	case opts.listRegions:
		return a.listRegions(catalog)
	case opts.fruitInfo != "":
		product, ok := catalog.Product(opts.fruitInfo)
		if !ok {
			return fmt.Errorf("fruit %q not found, available: %v", opts.fruitInfo, catalog.ProductNames())
		}
		return a.printJSON(product)
	case opts.regionInfo != "":
		if !catalog.Regional() {
			return fmt.Errorf("market %s has no regions", catalog.Market)
		}
		region, ok := catalog.Region(opts.regionInfo)
		if !ok {
			return fmt.Errorf("region %q not found, available: %v", opts.regionInfo, catalog.RegionCodes())
		}
		return a.printJSON(region)
	}

	return a.forecast(ctx, catalog, opts)
}

func (a *app) forecast(ctx context.Context, catalog *reference.Catalog, opts options) error {
	if strings.TrimSpace(opts.fruit) == "" {
		return errors.New("-fruit is required")
	}
	if opts.price <= 0 {
		return errors.New("-price is required and must be positive")
	}

	popts := append([]predictor.Option{}, a.opts...)
	if opts.seed != 0 {
		popts = append(popts, predictor.WithSeed(opts.seed))
	}
	p, err := predictor.New(catalog, opts.region, a.source, popts...)
	if err != nil {
		return err
	}

	req := predictor.Request{
		Product:      opts.fruit,
		CurrentPrice: opts.price,
		Currency:     opts.currency,
		Days:         opts.days,
		Latitude:     opts.latitude.value,
		Longitude:    opts.longitude.value,
	}

	var fc predictor.Forecast
	if opts.yearly {
		fc, err = p.PredictYearly(ctx, req)
	} else {
		fc, err = p.PredictPrices(ctx, req)
	}
	if err != nil {
		return err
	}

	a.printForecast(fc)

	if opts.save {
		path, err := predictor.SaveJSON(opts.outputDir, fc)
		if err != nil {
			return fmt.Errorf("save predictions: %w", err)
		}
		logx.Info().Str("path", path).Int("points", len(fc.Points)).Msg("predictions saved")
		fmt.Fprintf(a.out, "Saved predictions to %s\n", path)
	}
	return nil
}

func (a *app) printForecast(fc predictor.Forecast) {
	scope := fc.Market
	if fc.Region != "" {
		scope = fc.Region
	}
	fmt.Fprintf(a.out, "Price forecast for %s (%s, %s, %s)\n", fc.ResolvedProduct, scope, fc.Currency, fc.Period)
	if fc.Fallback {
		fmt.Fprintf(a.out, "Fruit %q not found, using %s\n", fc.Product, fc.ResolvedProduct)
	}

	layout := time.DateOnly
	if fc.Period == predictor.PeriodYearly {
		layout = "January 2006"
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tPRICE")
	for _, pt := range fc.Points {
		fmt.Fprintf(tw, "%s\t%s\n", pt.Date.Format(layout), currency.Format(pt.Price, fc.Currency))
	}
	_ = tw.Flush()
}

func (a *app) listFruits(catalog *reference.Catalog) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRUIT\tCATEGORY\tHARVEST\tSHELF LIFE")
	for _, p := range catalog.Products() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dd\n", p.Name, p.Category, monthList(p.HarvestMonths), p.ShelfLifeDays)
	}
	return tw.Flush()
}

func (a *app) listRegions(catalog *reference.Catalog) error {
	if !catalog.Regional() {
		return fmt.Errorf("market %s has no regions", catalog.Market)
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tSTATES")
	for _, r := range catalog.Regions() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Code, r.Name, strings.Join(r.States, ", "))
	}
	return tw.Flush()
}

func (a *app) printJSON(v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(raw))
	return err
}

func monthList(ms []time.Month) string {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.String()[:3])
	}
	return strings.Join(names, " ")
}
