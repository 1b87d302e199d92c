package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/harvest-price-forecaster/services/api/db"
)

// maxHistoryPage keeps (page-1)*limit well inside int range.
const maxHistoryPage = 100000

// handleV1ListRuns returns a paginated list of archived prediction runs
// GET /api/v1/history?page=1&limit=20&market=india&product=mango&region=north
func (s *Server) handleV1ListRuns(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if val, err := strconv.Atoi(p); err == nil && val > 0 {
			page = val
		}
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 && val <= 100 {
			limit = val
		}
	}

	if page > maxHistoryPage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be at most " + strconv.Itoa(maxHistoryPage)})
		return
	}

	q := db.RunQuery{
		Market:  c.Query("market"),
		Product: c.Query("product"),
		Region:  c.Query("region"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	runs, err := s.store.ListRuns(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": runs,
		"meta": gin.H{
			"page":  page,
			"limit": limit,
			"count": len(runs),
		},
	})
}

// handleV1GetRun returns one archived run
// GET /api/v1/history/:id
func (s *Server) handleV1GetRun(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run id is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	run, err := s.store.GetRun(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": run,
	})
}
