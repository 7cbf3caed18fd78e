package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api")

type server struct {
	router            *gin.Engine
	httpServer        *http.Server
	engine            Engine
	serviceKey        string
	listenAddr        string
	staticDir         string
	defaultMaxRecords int
	maxRecordsPerArea int
	generalHandler    func(http.Handler) http.Handler
	wg                sync.WaitGroup
}

// SearchPayload represents the incoming JSON body on /api/search
type SearchPayload struct {
	Query         string   `json:"query"`
	Top           int      `json:"top"`
	Skip          int      `json:"skip"`
	OrderBy       string   `json:"orderBy"`
	Themes        []string `json:"themes"`
	Databases     []string `json:"databases"`
	Organizations []string `json:"organizations"`
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ServiceKeyApi     string
	ListenAddress     string
	StaticDir         string
	DefaultMaxRecords int
	MaxRecordsPerArea int
	Engine            Engine
	GeneralHandler    func(http.Handler) http.Handler
}

// NewServer initializes the Gin engine and mounts all routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Engine) {
		return nil, errors.New("engine is required")
	}
	if args.GeneralHandler == nil {
		return nil, errors.New("nil http handler")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())

	s := &server{
		router:            router,
		engine:            args.Engine,
		serviceKey:        args.ServiceKeyApi,
		listenAddr:        args.ListenAddress,
		staticDir:         args.StaticDir,
		defaultMaxRecords: args.DefaultMaxRecords,
		maxRecordsPerArea: args.MaxRecordsPerArea,
		generalHandler:    args.GeneralHandler,
	}

	s.setupRoutes()
	return s, nil
}

func (s *server) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/databases", s.handleGetDatabases)
	api.GET("/databases/discover", s.handleDiscoverDatabases)
	api.GET("/databases/:id/indicators", s.handleGetIndicators)
	api.POST("/search", s.handleSearch)
	api.GET("/data", s.handleGetData)
	api.GET("/history", s.handleGetHistory)

	// History deletion is an admin operation guarded by the service key
	api.DELETE("/history/:id", s.authAPIKey(), s.handleDeleteHistory)

	// Serve static files from the frontend build if configured
	if s.staticDir != "" {
		log.Info("serving static files", "dir", s.staticDir)
		s.router.Static("/static", path.Join(s.staticDir, "static"))
		s.router.StaticFile("/favicon.ico", path.Join(s.staticDir, "favicon.ico"))

		// NoRoute for SPA fallback
		s.router.NoRoute(func(c *gin.Context) {
			// If request is for an /api route that doesn't exist, return 404
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "api route not found"})
				return
			}
			// Otherwise serve index.html for CSR
			c.File(path.Join(s.staticDir, "index.html"))
		})
	}
}

// Start listens and serves connections
func (s *server) Start() {
	handler := s.generalHandler(s.router)

	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: handler,
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.Error("failed to listen", "error", err)
		return
	}
	s.listenAddr = ln.Addr().String()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", s.listenAddr)

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
		}
	}()
}

// Address returns the actual listen address
func (s *server) Address() string {
	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.wg.Wait()
	return nil
}

// --- Middlewares ---

func (s *server) authAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Api-Key")
		if key != s.serviceKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// --- Handlers ---

func (s *server) handleGetDatabases(c *gin.Context) {
	themes := c.QueryArray("theme")
	organizations := c.QueryArray("organization")

	c.JSON(http.StatusOK, gin.H{"databases": s.engine.Databases(themes, organizations)})
}

func (s *server) handleDiscoverDatabases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ids": s.engine.DiscoverDatabases(c.Request.Context())})
}

func (s *server) handleGetIndicators(c *gin.Context) {
	databaseID := c.Param("id")

	limit := 0
	limitStr := c.Query("limit")
	if limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	indicators, err := s.engine.IndicatorsWithMetadata(c.Request.Context(), databaseID, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"indicators": indicators})
}

func (s *server) handleSearch(c *gin.Context) {
	var payload SearchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result := s.engine.Search(c.Request.Context(), common.SearchQuery{
		Query:   payload.Query,
		Top:     payload.Top,
		Skip:    payload.Skip,
		Filter:  s.assembleSearchFilter(payload),
		OrderBy: payload.OrderBy,
	})

	c.JSON(http.StatusOK, result)
}

// assembleSearchFilter builds the OData filter string from the UI-level
// selections. Organizations take precedence over an explicit database list:
// they expand to the databases of those organizations.
func (s *server) assembleSearchFilter(payload SearchPayload) string {
	filters := make([]string, 0)

	databases := payload.Databases
	if len(payload.Organizations) > 0 {
		databases = make([]string, 0)
		for _, descriptor := range s.engine.Databases(nil, payload.Organizations) {
			databases = append(databases, descriptor.ID)
		}
	}
	if len(databases) > 0 {
		parts := make([]string, 0, len(databases))
		for _, databaseID := range databases {
			parts = append(parts, fmt.Sprintf("series_description/database_id eq '%s'", databaseID))
		}
		filters = append(filters, "("+strings.Join(parts, " or ")+")")
	}

	if len(payload.Themes) > 0 {
		parts := make([]string, 0, len(payload.Themes))
		for _, theme := range payload.Themes {
			parts = append(parts, fmt.Sprintf("series_description/topics/any(t: t/name eq '%s')", theme))
		}
		filters = append(filters, "("+strings.Join(parts, " or ")+")")
	}

	return strings.Join(filters, " and ")
}

func (s *server) handleGetData(c *gin.Context) {
	databaseID := c.Query("DATABASE_ID")
	if databaseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "DATABASE_ID is required"})
		return
	}

	maxRecords := s.defaultMaxRecords
	maxRecordsStr := c.Query("maxRecords")
	if maxRecordsStr != "" {
		parsed, err := strconv.Atoi(maxRecordsStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxRecords"})
			return
		}
		maxRecords = parsed
	}

	indicator := c.Query("INDICATOR")
	refAreas := c.QueryArray("REF_AREA")
	timePeriodFrom := c.Query("timePeriodFrom")
	timePeriodTo := c.Query("timePeriodTo")
	ctx := c.Request.Context()

	if len(refAreas) > 1 {
		// Fan-out mode: per-region failures degrade, never a 5xx
		perArea := s.maxRecordsPerArea
		if maxRecordsStr != "" {
			perArea = maxRecords
		}
		result := s.engine.FetchMany(ctx, databaseID, indicator, refAreas, timePeriodFrom, timePeriodTo, perArea)
		c.JSON(http.StatusOK, result)
		return
	}

	refArea := ""
	if len(refAreas) == 1 {
		refArea = refAreas[0]
	}

	result, err := s.engine.GetData(ctx, common.FetchRequest{
		DatabaseID:     databaseID,
		Indicator:      indicator,
		RefArea:        refArea,
		TimePeriodFrom: timePeriodFrom,
		TimePeriodTo:   timePeriodTo,
		MaxRecords:     maxRecords,
		AutoPaginate:   true,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *server) handleGetHistory(c *gin.Context) {
	entries, err := s.engine.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}

func (s *server) handleDeleteHistory(c *gin.Context) {
	id := c.Param("id")
	err := s.engine.DeleteHistoryEntry(c.Request.Context(), id)
	if err != nil {
		if err.Error() == "history entry not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "history entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
