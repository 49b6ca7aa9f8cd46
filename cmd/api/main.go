package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tastebase/tastebase-go/internal/config"
	"github.com/tastebase/tastebase-go/internal/handler"
	"github.com/tastebase/tastebase-go/internal/logging"
	"github.com/tastebase/tastebase-go/internal/mealdb"
	"github.com/tastebase/tastebase-go/internal/middleware"
	"github.com/tastebase/tastebase-go/internal/repository"
	"github.com/tastebase/tastebase-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel, cfg.Env)

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	recipeClient := mealdb.NewClient(cfg.MealDBBaseURL, cfg.MealDBAPIKey, 10*time.Second)

	userRepo := repository.NewUserRepository(db)
	favouriteRepo := repository.NewFavouriteRepository(db)

	authService := service.NewAuthService(userRepo, cfg.SessionSecret, cfg.SessionExpiry)
	favouriteService := service.NewFavouriteService(favouriteRepo, recipeClient)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionExpiry, cfg.CookieDomain, cfg.Env == "production")
	recipeHandler := handler.NewRecipeHandler(recipeClient)
	favouriteHandler := handler.NewFavouriteHandler(favouriteService)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/signup", authHandler.HandleSignup)
			r.Post("/login", authHandler.HandleLogin)
		})

		r.Post("/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(authService))
			r.Get("/me", authHandler.HandleMe)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/search", recipeHandler.HandleSearch)
			r.Get("/categories", recipeHandler.HandleCategories)
			r.Get("/areas", recipeHandler.HandleAreas)
			r.Get("/ingredients", recipeHandler.HandleIngredients)
			r.Get("/advanced-search", recipeHandler.HandleAdvancedSearch)
			r.Get("/random", recipeHandler.HandleRandom)
			r.Get("/{recipeId}/information", recipeHandler.HandleInformation)

			r.Get("/favourite", favouriteHandler.HandleList)
			r.Post("/favourite", favouriteHandler.HandleAdd)
			r.Delete("/favourite", favouriteHandler.HandleRemove)
		})
	})

	// Unknown /api/* paths get a JSON 404; everything else falls through
	// to the SPA when a static build directory is configured.
	var spa http.Handler
	if cfg.StaticDir != "" {
		spa = handler.SPA(cfg.StaticDir)
	}
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if spa != nil && !strings.HasPrefix(req.URL.Path, "/api/") {
			spa.ServeHTTP(w, req)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
