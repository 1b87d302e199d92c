package http

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/india, /api/v1/global, /api/v1/history
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Regional market with fruit, region and festival tables
	india := v1.Group("/india")
	{
		india.POST("/predict", s.handleV1Predict("india"))
		india.POST("/predict/yearly", s.handleV1PredictYearly("india"))
		india.GET("/fruits", s.handleV1ListFruits("india"))
		india.GET("/fruits/:name", s.handleV1GetFruit("india"))
		india.GET("/regions", s.handleV1ListRegions("india"))
		india.GET("/regions/:code", s.handleV1GetRegion("india"))
	}

	// Region-free market; callers supply coordinates
	global := v1.Group("/global")
	{
		global.POST("/predict", s.handleV1Predict("global"))
		global.POST("/predict/yearly", s.handleV1PredictYearly("global"))
		global.GET("/fruits", s.handleV1ListFruits("global"))
		global.GET("/fruits/:name", s.handleV1GetFruit("global"))
	}

	// Archived runs, only when a database is configured
	if s.store != nil {
		history := v1.Group("/history")
		{
			history.GET("", s.handleV1ListRuns)
			history.GET("/:id", s.handleV1GetRun)
		}
	}
}
