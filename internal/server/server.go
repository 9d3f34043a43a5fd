package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gravadigital/turnier-api/internal/config"
	"github.com/gravadigital/turnier-api/internal/handlers"
	"github.com/gravadigital/turnier-api/internal/logger"
	"github.com/gravadigital/turnier-api/internal/metrics"
	"github.com/gravadigital/turnier-api/internal/middleware/requestlog"
	"github.com/gravadigital/turnier-api/internal/services"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	router     *gin.Engine
}

// New creates a server with all routes registered
func New(cfg *config.Config, ts *services.TournamentService, fs *services.FencerService, m *metrics.Metrics) *Server {
	s := &Server{config: cfg}
	s.router = s.setupRouter(ts, fs, m)
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Stop is called
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: s.router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

func (s *Server) corsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	origins := s.config.AllowOrigins()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	if methods := s.config.AllowMethods(); len(methods) > 0 {
		corsConfig.AllowMethods = methods
	}
	if headers := s.config.AllowHeaders(); len(headers) > 0 {
		corsConfig.AllowHeaders = headers
	}
	corsConfig.ExposeHeaders = []string{requestlog.HeaderRequestID, "Content-Disposition"}
	return corsConfig
}

func (s *Server) setupRouter(ts *services.TournamentService, fs *services.FencerService, m *metrics.Metrics) *gin.Engine {
	if s.config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if s.config.Server.GinMode != "" {
		gin.SetMode(s.config.Server.GinMode)
	}

	router := gin.New()
	router.Use(requestlog.New(logger.HTTP()))
	router.Use(gin.Recovery())
	router.Use(cors.New(s.corsConfig()))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Turnier API is running",
			"status":  "healthy",
		})
	})

	if s.config.Metrics.Enabled {
		router.GET(s.config.Metrics.Path, gin.WrapH(m.Handler()))
	}

	s.setupAPIRoutes(router,
		handlers.NewTournamentHandler(ts),
		handlers.NewDayHandler(ts),
		handlers.NewBewerbHandler(ts),
		handlers.NewAssignmentHandler(ts),
		handlers.NewFencerHandler(fs),
	)

	return router
}

func (s *Server) setupAPIRoutes(
	router *gin.Engine,
	tournamentHandler *handlers.TournamentHandler,
	dayHandler *handlers.DayHandler,
	bewerbHandler *handlers.BewerbHandler,
	assignmentHandler *handlers.AssignmentHandler,
	fencerHandler *handlers.FencerHandler,
) {
	api := router.Group("/api")
	{
		tournament := api.Group("/tournament")
		{
			tournament.GET("", tournamentHandler.GetTournament)
			tournament.POST("", tournamentHandler.CreateTournament)
			tournament.PUT("/name", tournamentHandler.ChangeName)
			tournament.POST("/load", tournamentHandler.LoadTournament)
			tournament.POST("/save", tournamentHandler.SaveTournament)
		}

		days := api.Group("/days")
		{
			days.GET("", dayHandler.GetDays)
			days.POST("", dayHandler.CreateDay)
			days.GET("/:id", dayHandler.GetDay)
			days.DELETE("/:id", dayHandler.DeleteDay)
			days.GET("/:id/export", dayHandler.ExportDay)
		}

		bewerbs := api.Group("/bewerbs")
		{
			bewerbs.GET("", bewerbHandler.GetBewerbs)
			bewerbs.POST("", bewerbHandler.CreateBewerb)
			bewerbs.DELETE("/:id", bewerbHandler.DeleteBewerb)
		}

		api.GET("/groups/free", bewerbHandler.GetFreeGroups)

		assignments := api.Group("/assignments")
		{
			assignments.POST("", assignmentHandler.Assign)
			assignments.POST("/free-group", assignmentHandler.FreeGroup)
			assignments.POST("/free-arena", assignmentHandler.FreeArena)
		}

		fencers := api.Group("/fencers")
		{
			fencers.GET("", fencerHandler.GetFencers)
			fencers.PUT("", fencerHandler.UpdateFencers)
			fencers.POST("/:id/groups", fencerHandler.AssignFencer)
			fencers.DELETE("/:id", fencerHandler.DeleteFencer)
		}
	}
}
