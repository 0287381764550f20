package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/whoamihappyhacking/tgstat/internal/errors"
)

func (s *Service) initRouter() {
	s.initBaseRouter()
	s.initAPIRouter()
}

func (s *Service) initBaseRouter() {
	s.router.GET("/health", func(ctx *gin.Context) { ctx.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

func (s *Service) initAPIRouter() {
	api := s.router.Group("/api/v1")
	{
		chats := api.Group("/chats/:id")
		chats.POST("/analyze", s.handleAnalyze)
		chats.GET("/stats", s.handleStats)
		chats.GET("/stats/year/:year", s.handleStatsYear)
		chats.GET("/stats/month/:month", s.handleStatsMonth)
		chats.GET("/gallery/:month", s.handleGallery)
	}
}

func chatID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errors.Err(c, errors.InvalidArg("id"))
		return 0, false
	}
	return id, true
}

// POST /api/v1/chats/:id/analyze
func (s *Service) handleAnalyze(c *gin.Context) {
	id, ok := chatID(c)
	if !ok {
		return
	}
	analysis, err := s.db.Reanalyze(c.Request.Context(), id)
	if err != nil {
		errors.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GET /api/v1/chats/:id/stats
func (s *Service) handleStats(c *gin.Context) {
	id, ok := chatID(c)
	if !ok {
		return
	}
	analysis, err := s.db.GetAnalysis(c.Request.Context(), id)
	if err != nil {
		errors.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GET /api/v1/chats/:id/stats/year/:year
func (s *Service) handleStatsYear(c *gin.Context) {
	id, ok := chatID(c)
	if !ok {
		return
	}
	stats, err := s.db.StatsForYear(c.Request.Context(), id, c.Param("year"))
	if err != nil {
		errors.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": c.Param("year"), "months": stats})
}

// GET /api/v1/chats/:id/stats/month/:month
func (s *Service) handleStatsMonth(c *gin.Context) {
	id, ok := chatID(c)
	if !ok {
		return
	}
	stat, err := s.db.StatsForMonth(c.Request.Context(), id, c.Param("month"))
	if err != nil {
		errors.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, stat)
}

// GET /api/v1/chats/:id/gallery/:month
func (s *Service) handleGallery(c *gin.Context) {
	id, ok := chatID(c)
	if !ok {
		return
	}
	photos, err := s.db.Gallery(c.Request.Context(), id, c.Param("month"))
	if err != nil {
		errors.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"month": c.Param("month"), "photos": photos})
}
