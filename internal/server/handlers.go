package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"SwingScope/internal/collector"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Symbols": s.catalog.Entries(),
	})
}

// handleAnalysis runs the full pipeline for one symbol. An empty or
// too-short history is an explicit "no technical data" terminal state, not
// a server fault; provider failures map to 502.
func (s *Server) handleAnalysis(c *gin.Context) {
	symbol := c.Param("symbol")

	analysis, err := s.analyzer.Analyze(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, collector.ErrNoData) || errors.Is(err, collector.ErrInsufficientData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no technical data found"})
			return
		}
		log.Printf("[ERROR] analyze %s: %v", symbol, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "price history provider unavailable"})
		return
	}

	name := s.catalog.Lookup(analysis.Symbol)
	c.JSON(http.StatusOK, toAnalysisResponse(analysis, name))
}

// handleFundamentals scrapes the company page. An empty report is a normal
// 200 response; the page renders it as "no fundamental data found".
func (s *Server) handleFundamentals(c *gin.Context) {
	symbol := c.Param("symbol")

	report, err := s.scraper.Fetch(c.Request.Context(), symbol)
	if err != nil {
		log.Printf("[ERROR] fundamentals %s: %v", symbol, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "fundamentals provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, toFundamentalsResponse(report))
}

func (s *Server) handleSymbols(c *gin.Context) {
	entries := s.catalog.Entries()
	out := make([]gin.H, len(entries))
	for i, e := range entries {
		out[i] = gin.H{"symbol": e.Symbol, "name": e.Name}
	}
	c.JSON(http.StatusOK, out)
}
