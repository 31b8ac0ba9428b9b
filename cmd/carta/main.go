package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cartasycatalogos/cartamuestraBR/internal/handlers"
	"github.com/cartasycatalogos/cartamuestraBR/internal/i18n"
	"github.com/cartasycatalogos/cartamuestraBR/internal/menu"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/config"
	pfirestore "github.com/cartasycatalogos/cartamuestraBR/internal/platform/firestore"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/observability"
	"github.com/cartasycatalogos/cartamuestraBR/internal/repositories"
	firestoreRepo "github.com/cartasycatalogos/cartamuestraBR/internal/repositories/firestore"
	"github.com/cartasycatalogos/cartamuestraBR/internal/repositories/jsonstore"
	"github.com/cartasycatalogos/cartamuestraBR/internal/services"
	"github.com/cartasycatalogos/cartamuestraBR/internal/view"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("carta")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		var validation *config.ValidationError
		if errors.As(err, &validation) {
			logger.Fatal("invalid configuration", zap.Strings("fields", validation.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	bundle, err := i18n.Load(cfg.Locale.Primary, cfg.Locale.Languages())
	if err != nil {
		logger.Fatal("failed to load locale bundle", zap.Error(err))
	}

	loader := newLoader(cfg.Menu)

	likeMeter, err := observability.NewLikeMeter()
	if err != nil {
		logger.Warn("like meter init failed", zap.Error(err))
	}

	likeRepo, readiness, cleanup, err := newLikeRepository(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialise like repository", zap.Error(err))
	}
	defer cleanup()

	menuService, err := services.NewMenuService(services.MenuServiceDeps{Loader: loader})
	if err != nil {
		logger.Fatal("failed to initialise menu service", zap.Error(err))
	}
	interactionService, err := services.NewInteractionService(services.InteractionServiceDeps{
		Repository: likeRepo,
		Meter:      likeMeter,
	})
	if err != nil {
		logger.Fatal("failed to initialise interaction service", zap.Error(err))
	}
	builder, err := view.NewBuilder(view.BuilderDeps{
		Bundle:      bundle,
		Currency:    cfg.Menu.Currency,
		PopularSize: cfg.Menu.PopularSize,
	})
	if err != nil {
		logger.Fatal("failed to initialise view builder", zap.Error(err))
	}

	readiness["menu"] = func(ctx context.Context) error {
		_, err := menuService.Document(ctx, cfg.Locale.Primary)
		return err
	}

	router, err := handlers.NewRouter(handlers.RouterDeps{
		Logger:       logger,
		Bundle:       bundle,
		Menu:         menuService,
		Interactions: interactionService,
		View:         builder,
		Readiness:    readiness,
	})
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("carta listening",
			zap.String("backend", cfg.Likes.Backend),
			zap.String("primary_lang", cfg.Locale.Primary),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newLoader picks the document source: a remote base URL wins over the local
// directory when both are set.
func newLoader(cfg config.MenuConfig) menu.Loader {
	if cfg.DataURL != "" {
		return menu.NewHTTPLoader(cfg.DataURL, nil)
	}
	return menu.NewDirLoader(cfg.DataDir)
}

func newLikeRepository(ctx context.Context, cfg config.Config) (repositories.LikeRepository, map[string]handlers.ReadinessCheck, func(), error) {
	readiness := map[string]handlers.ReadinessCheck{}

	switch cfg.Likes.Backend {
	case config.BackendFirestore:
		provider := pfirestore.NewProvider(cfg.Firestore)
		repo, err := firestoreRepo.NewLikeRepository(provider, cfg.Firestore.Collection)
		if err != nil {
			return nil, nil, func() {}, err
		}
		readiness["likes"] = func(ctx context.Context) error {
			_, err := provider.Client(ctx)
			return err
		}
		cleanup := func() {
			if err := provider.Close(); err != nil {
				observability.FromContext(ctx).Warn("firestore close error", zap.Error(err))
			}
		}
		return repo, readiness, cleanup, nil
	default:
		store, err := jsonstore.Open(cfg.Likes.LocalPath)
		if err != nil {
			return nil, nil, func() {}, err
		}
		return store, readiness, func() {}, nil
	}
}
