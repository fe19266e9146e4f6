// ABOUTME: Main entry point for the Media Search API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediasearch-app-api/api"
	"mediasearch-app-api/api/handlers"
	"mediasearch-app-api/core/interfaces"
	"mediasearch-app-api/core/providers"
	"mediasearch-app-api/core/search"
	"mediasearch-app-api/core/upload"
	"mediasearch-app-api/infrastructure/cache/memory"
	"mediasearch-app-api/infrastructure/cache/redis"
	stdhttp "mediasearch-app-api/infrastructure/http/standard"
	logruslogger "mediasearch-app-api/infrastructure/logger/logrus"
	"mediasearch-app-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger()
	logger.Info("Starting Media Search API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"upload_dir": cfg.Upload.Directory,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		logger.Info("Using memory cache", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	if cfg.Providers.PixabayAPIKey == "" {
		logger.Warn("PIXABAY_API_KEY not set, Pixabay search will be skipped", nil)
	}
	if cfg.Providers.UnsplashAccessKey == "" {
		logger.Warn("UNSPLASH_ACCESS_KEY not set, Unsplash search will be skipped", nil)
	}

	searchProviders := search.Providers{
		OpenLibrary: providers.NewOpenLibrary(deps),
		Gutenberg:   providers.NewGutenberg(deps),
		Pixabay:     providers.NewPixabay(deps, cfg.Providers.PixabayAPIKey),
		Unsplash:    providers.NewUnsplash(deps, cfg.Providers.UnsplashAccessKey),
		Archive:     providers.NewInternetArchive(deps),
	}

	providerTimeout := time.Duration(cfg.Providers.TimeoutSeconds) * time.Second
	searchService := search.NewSearchService(deps, searchProviders, providerTimeout)
	uploadService := upload.NewUploadService(deps, cfg.Upload.Directory)

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	searchHandler := handlers.NewSearchHandler(searchService)
	searchHandler.RegisterRoutes(humaAPI)

	uploadHandler := handlers.NewUploadHandler(uploadService)
	uploadHandler.RegisterRoutes(humaAPI)

	// Stored files are advertised as /uploads/<name>
	api.MountUploadDir(router, cfg.Upload.Directory)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
