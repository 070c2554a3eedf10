package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/kgraph/internal/config"
	"github.com/agenthands/kgraph/internal/core"
	"github.com/agenthands/kgraph/internal/core/chat"
	"github.com/agenthands/kgraph/internal/core/suggestion"
	"github.com/agenthands/kgraph/internal/llm"
	"github.com/agenthands/kgraph/internal/server"
	"github.com/agenthands/kgraph/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	st, err := store.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	analysisLLM, err := llm.NewClient(ctx, cfg.LLM, llm.Params{Model: cfg.LLM.AnalysisModel, JSON: true})
	if err != nil {
		return fmt.Errorf("failed to initialize analysis model: %w", err)
	}
	chatLLM, err := llm.NewClient(ctx, cfg.LLM, llm.Params{
		Model:       cfg.LLM.ChatModel,
		Temperature: cfg.LLM.Temperature,
		TopP:        cfg.LLM.TopP,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize chat model: %w", err)
	}

	coordinator, err := newCoordinator(cfg.Metrics, logger)
	if err != nil {
		return err
	}

	greeting := cfg.Prompts.Greeting
	if greeting == "" {
		greeting = chat.DefaultGreeting
	}
	session := core.NewSession(core.Options{
		Coordinator: coordinator,
		Suggester:   suggestion.NewSuggester(analysisLLM, cfg.Prompts.Analysis, logger),
		Responder:   chat.NewConversation(chatLLM, cfg.Prompts.Persona, cfg.Prompts.PersonaName, cfg.Prompts.HistoryLimit),
		Store:       st,
		Greeting:    greeting,
		Logger:      logger,
	})
	if err := session.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.NewServer(session, logger).SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", zap.String("addr", httpServer.Addr),
			zap.String("llm_provider", cfg.LLM.Provider),
			zap.String("store", cfg.Store.Backend))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down server")
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
