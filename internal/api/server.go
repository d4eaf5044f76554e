package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/features"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/predictor"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Server wires the prediction handlers to the immutable artifacts loaded at
// startup. The vocabulary set and model are shared read-only state;
// concurrent requests read them without locking.
type Server struct {
	config     *models.Config
	logger     *zap.Logger
	router     *chi.Mux
	httpServer *http.Server
	vocabs     *features.VocabularySet
	model      predictor.Predictor
	startTime  time.Time
}

func NewServer(cfg *models.Config, logger *zap.Logger, vocabs *features.VocabularySet, model predictor.Predictor) *Server {
	s := &Server{
		config:    cfg,
		logger:    logger,
		router:    chi.NewRouter(),
		vocabs:    vocabs,
		model:     model,
		startTime: time.Now(),
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/predict", s.handlePredict)
}

func (s *Server) Start() error {
	s.logger.Info("prediction service listening",
		zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
