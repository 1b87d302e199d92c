package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/errx"
)

// handleV1ListFruits returns the market's fruit reference records
// GET /api/v1/{market}/fruits
func (s *Server) handleV1ListFruits(marketName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog := s.markets[marketName].catalog
		products := catalog.Products()

		c.JSON(http.StatusOK, gin.H{
			"data": products,
			"meta": gin.H{
				"market":   catalog.Market,
				"currency": catalog.Currency,
				"default":  catalog.DefaultProduct,
				"count":    len(products),
			},
		})
	}
}

// handleV1GetFruit returns one fruit reference record
// GET /api/v1/{market}/fruits/:name
func (s *Server) handleV1GetFruit(marketName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		catalog := s.markets[marketName].catalog

		product, ok := catalog.Product(name)
		if !ok {
			respondError(c, errx.NotFound(nil, "fruit not found: "+name))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": product,
		})
	}
}

// handleV1ListRegions returns the market's regions with cost factors
// GET /api/v1/india/regions
func (s *Server) handleV1ListRegions(marketName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog := s.markets[marketName].catalog
		regions := catalog.Regions()

		c.JSON(http.StatusOK, gin.H{
			"data": regions,
			"meta": gin.H{
				"market":  catalog.Market,
				"default": catalog.DefaultRegion,
				"count":   len(regions),
			},
		})
	}
}

// handleV1GetRegion returns one region
// GET /api/v1/india/regions/:code
func (s *Server) handleV1GetRegion(marketName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		catalog := s.markets[marketName].catalog

		region, ok := catalog.Region(code)
		if !ok {
			respondError(c, errx.NotFound(nil, "region not found: "+code))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": region,
		})
	}
}
