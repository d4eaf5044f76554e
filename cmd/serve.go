package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/api"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/features"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/predictor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve waste-percentage predictions over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		logger, err := zap.NewProduction()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		runServe(cfg, logger)
	},
}

func init() {
	serveCmd.Flags().String("host", "0.0.0.0", "Listen host")
	serveCmd.Flags().Int("port", 5001, "Listen port")
	serveCmd.Flags().String("artifact-dir", "models", "Directory holding the persisted artifacts")

	bindFlag(serveCmd, "server.host", "host")
	bindFlag(serveCmd, "server.port", "port")
	bindFlag(serveCmd, "artifact_dir", "artifact-dir")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg *models.Config, logger *zap.Logger) {
	// The process must not serve traffic without both artifacts.
	vocabs, err := features.LoadVocabularySet(vocabularyPath(cfg))
	if err != nil {
		logger.Fatal("failed to load vocabulary artifact",
			zap.String("path", vocabularyPath(cfg)), zap.Error(err))
	}
	model, err := predictor.LoadModel(modelPath(cfg))
	if err != nil {
		logger.Fatal("failed to load model artifact",
			zap.String("path", modelPath(cfg)), zap.Error(err))
	}

	server := api.NewServer(cfg, logger, vocabs, model)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}
}
