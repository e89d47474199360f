package server

import (
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"SwingScope/internal/catalog"
	"SwingScope/internal/collector"
	"SwingScope/internal/fundamentals"
)

//go:embed dashboard.html
var templateFS embed.FS

// Server renders the swing-trading dashboard and its JSON API. All handlers
// are request-scoped; no state is shared across requests.
type Server struct {
	analyzer *collector.Analyzer
	scraper  *fundamentals.Scraper
	catalog  *catalog.Catalog
	httpSrv  *http.Server
}

// New wires the analysis pipeline into a gin router.
func New(listenAddr string, analyzer *collector.Analyzer, scraper *fundamentals.Scraper, cat *catalog.Catalog) *Server {
	s := &Server{
		analyzer: analyzer,
		scraper:  scraper,
		catalog:  cat,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	tmpl := template.Must(template.ParseFS(templateFS, "dashboard.html"))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", s.handleDashboard)
	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api/v1")
	api.GET("/analysis/:symbol", s.handleAnalysis)
	api.GET("/fundamentals/:symbol", s.handleFundamentals)
	api.GET("/symbols", s.handleSymbols)

	s.httpSrv = &http.Server{
		Addr:              listenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start begins serving in the background. Errors other than a clean close
// are fatal: the dashboard is the whole process.
func (s *Server) Start() {
	go func() {
		log.Printf("[INFO] dashboard listening on %s", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] shutting down http server")
	return s.httpSrv.Shutdown(ctx)
}
