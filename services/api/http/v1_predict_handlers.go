package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/currency"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/logx"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/predictor"
)

const defaultRequestTimeout = 20 * time.Second

// predictRequest is the JSON body accepted by the predict endpoints.
// fruit_name and product_name are aliases.
type predictRequest struct {
	FruitName    string   `json:"fruit_name"`
	ProductName  string   `json:"product_name"`
	CurrentPrice *float64 `json:"current_price" binding:"required,gt=0"`
	Region       string   `json:"region"`
	Days         *int     `json:"days" binding:"omitempty,min=1"`
	Currency     string   `json:"currency"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

func (r predictRequest) product() string {
	if name := strings.TrimSpace(r.FruitName); name != "" {
		return name
	}
	return strings.TrimSpace(r.ProductName)
}

func (r predictRequest) hasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

func (s *Server) requestTimeout() time.Duration {
	if s.cfg.RequestTimeout > 0 {
		return s.cfg.RequestTimeout
	}
	return defaultRequestTimeout
}

// handleV1Predict returns a day-indexed weather-driven forecast
// POST /api/v1/{market}/predict
func (s *Server) handleV1Predict(marketName string) gin.HandlerFunc {
	return s.predictHandler(marketName, func(ctx context.Context, p *predictor.Predictor, req predictor.Request) (predictor.Forecast, error) {
		return p.PredictPrices(ctx, req)
	})
}

// handleV1PredictYearly returns one price per month of the current year
// POST /api/v1/{market}/predict/yearly
func (s *Server) handleV1PredictYearly(marketName string) gin.HandlerFunc {
	return s.predictHandler(marketName, func(ctx context.Context, p *predictor.Predictor, req predictor.Request) (predictor.Forecast, error) {
		return p.PredictYearly(ctx, req)
	})
}

type predictFunc func(ctx context.Context, p *predictor.Predictor, req predictor.Request) (predictor.Forecast, error)

func (s *Server) predictHandler(marketName string, predict predictFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		m := s.markets[marketName]

		var body predictRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		if body.product() == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: fruit_name"})
			return
		}
		if m.catalog.Regional() && strings.TrimSpace(body.Region) == "" && !body.hasCoordinates() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: region (or latitude and longitude)"})
			return
		}

		p, err := m.predictor(body.Region)
		if err != nil {
			respondError(c, err)
			return
		}

		req := predictor.Request{
			Product:      body.product(),
			CurrentPrice: *body.CurrentPrice,
			Currency:     body.Currency,
			Days:         s.cfg.DefaultDays,
			Latitude:     body.Latitude,
			Longitude:    body.Longitude,
		}
		if body.Days != nil {
			req.Days = *body.Days
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), s.requestTimeout())
		defer cancel()

		fc, err := predict(ctx, p, req)
		if err != nil {
			respondError(c, err)
			return
		}

		meta := forecastMeta(fc)
		if fc.Market == "india" && !fc.Fallback {
			if info, ok := m.catalog.Product(fc.ResolvedProduct); ok {
				meta["fruit_info"] = info
			}
		}
		if runID := s.archive(ctx, fc); runID != "" {
			meta["run_id"] = runID
		}

		c.JSON(http.StatusOK, gin.H{
			"data": fc.Points,
			"meta": meta,
		})
	}
}

// archive stores fc when a RunStore is configured. Failures are logged and
// never fail the request.
func (s *Server) archive(ctx context.Context, fc predictor.Forecast) string {
	if s.store == nil {
		return ""
	}
	run, err := s.store.SaveRun(ctx, fc)
	if err != nil {
		logx.Warn().Err(err).Str("product", fc.ResolvedProduct).Msg("failed to archive prediction run")
		return ""
	}
	return run.ID
}

func forecastMeta(fc predictor.Forecast) gin.H {
	meta := gin.H{
		"market":           fc.Market,
		"product":          fc.Product,
		"resolved_product": fc.ResolvedProduct,
		"fallback":         fc.Fallback,
		"currency":         fc.Currency,
		"currency_symbol":  currency.Symbol(fc.Currency),
		"current_price":    fc.CurrentPrice,
		"display_price":    currency.Format(fc.CurrentPrice, fc.Currency),
		"period":           fc.Period,
		"latitude":         fc.Latitude,
		"longitude":        fc.Longitude,
		"count":            len(fc.Points),
		"generated_at":     time.Now().UTC().Format(time.RFC3339),
	}
	if fc.Region != "" {
		meta["region"] = fc.Region
	}
	return meta
}
