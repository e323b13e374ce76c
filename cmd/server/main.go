package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/dashboard"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/dataset"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/cache"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/config"
	firestoreclient "github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/firestore"
	apirouter "github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/http"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/logger"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/observability"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		exitf("config load: %v", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		exitf("logger init: %v", err)
	}
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	shutdownTracing, err := observability.Setup(ctx, log, observability.Tracing{
		Enabled:     cfg.TraceEnabled,
		Endpoint:    cfg.TraceEndpoint,
		SampleRatio: cfg.TraceSampleRatio,
		Environment: cfg.GinMode,
	})
	if err != nil {
		log.Warn("tracing disabled", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()


	var source dataset.Source
	switch cfg.DataSource {
	case config.SourceFirestore:
		client, credsSource, err := firestoreclient.New(ctx, cfg)
		if err != nil {
			log.Fatal("firestore init failed", "error", err)
		}
		defer client.Close()
		if err := firestoreclient.Ping(ctx, client, cfg.FirestoreCollection); err != nil {
			log.Fatal("firestore ping failed", "error", err)
		}
		log.Info("connected to firestore", "project", cfg.FirebaseProjectID, "creds", credsSource, "collection", cfg.FirestoreCollection)

		repo := repository.NewResponseRepository(client, cfg.FirestoreCollection)
		source = dataset.NewFirestoreSource(repo, cfg.FirebaseProjectID, cfg.FirestoreCollection, cfg.FirestoreRefresh)
	default:
		source = dataset.NewCSVSource(cfg.DatasetPath)
		log.Info("serving csv dataset", "path", cfg.DatasetPath)
	}

	store := dataset.NewStore(source, dataset.BuildOptions{Strict: cfg.StrictLoad}, log)
	if _, err := store.Current(ctx); err != nil {
		// The API still starts; requests report the failure until the source appears.
		log.Warn("initial dataset load failed", "error", err)
	}

	var viewCache cache.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Warn("redis unavailable, caching disabled", "redis_url", cfg.RedisURL, "error", err)
		} else {
			defer rc.Close()
			viewCache = rc
			log.Info("view cache enabled", "ttl", cfg.CacheTTL.String())
		}
	}

	svc := dashboard.NewService(store, viewCache, log)
	router := apirouter.NewRouter(svc, log, cfg.Origins())

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", "error", err)
		}
	}()
	log.Info("server listening", "port", cfg.Port, "source", cfg.DataSource)

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	log.Info("server exited")
}

func exitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
