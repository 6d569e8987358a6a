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

	bidding "marketplace-bidding/internal/biddingService"
	"marketplace-bidding/internal/config"
	"marketplace-bidding/internal/locker"
	"marketplace-bidding/internal/objectstore"
	"marketplace-bidding/internal/repository"
	"marketplace-bidding/internal/server"
	"marketplace-bidding/internal/session"
	"marketplace-bidding/utils"

	firebase "firebase.google.com/go/v4"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		utils.Fatal("Server stopped with error", map[string]any{"error": err.Error()})
	}
}

// run wires the backends selected by cfg and serves until ctx is cancelled
func run(ctx context.Context, cfg config.Config) error {
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var app *firebase.App
	if cfg.Store == config.StoreFirestore || cfg.Auth == config.AuthFirebase {
		a, err := config.NewFirebaseApp(ctx, cfg.Firebase)
		if err != nil {
			return err
		}
		app = a
	}

	repo, closeRepo, err := newRepository(ctx, cfg, app)
	if err != nil {
		return err
	}
	closers = append(closers, closeRepo)

	objects, err := newObjectStore(ctx, cfg)
	if err != nil {
		return err
	}

	locks, closeLocks, err := newLocker(ctx, cfg)
	if err != nil {
		return err
	}
	closers = append(closers, closeLocks)

	verifier, err := newVerifier(ctx, cfg, app)
	if err != nil {
		return err
	}

	biddingSvc := bidding.NewBiddingService(repo, objects, locks, bidding.WithMaxImageBytes(cfg.MaxImageBytes))
	prepopulateCategories(ctx, biddingSvc, cfg.Categories)

	opts := server.Options{
		BidRateLimit:  cfg.BidRateLimit,
		BidRateBurst:  cfg.BidRateBurst,
		MaxImageBytes: cfg.MaxImageBytes,
	}
	if mem, ok := objects.(*objectstore.MemoryStore); ok {
		opts.Objects = mem
	}
	router := server.SetupRouter(biddingSvc, verifier, opts)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Info("Starting marketplace bidding server", map[string]any{
			"addr":    cfg.ServerAddr,
			"store":   cfg.Store,
			"auth":    cfg.Auth,
			"objects": cfg.Objects,
			"lock":    cfg.Lock.Backend,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	utils.Info("Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRepository(ctx context.Context, cfg config.Config, app *firebase.App) (repository.MarketplaceDB, func(), error) {
	switch cfg.Store {
	case config.StoreMongo:
		repo, err := repository.NewMongoRepo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := repo.Close(closeCtx); err != nil {
				utils.Warn("Failed to close mongo client", map[string]any{"error": err.Error()})
			}
		}, nil
	case config.StoreFirestore:
		repo, err := repository.NewFirestoreRepo(ctx, app)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				utils.Warn("Failed to close firestore client", map[string]any{"error": err.Error()})
			}
		}, nil
	default:
		return repository.NewMemoryRepo(), func() {}, nil
	}
}

func newObjectStore(ctx context.Context, cfg config.Config) (objectstore.ObjectStore, error) {
	if cfg.Objects == config.ObjectsS3 {
		return objectstore.NewS3Store(ctx, objectstore.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			PublicBaseURL:   cfg.S3.PublicBaseURL,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
	}
	return objectstore.NewMemoryStore(cfg.S3.PublicBaseURL)
}

func newLocker(ctx context.Context, cfg config.Config) (locker.Locker, func(), error) {
	if cfg.Lock.Backend != config.LockRedis {
		return locker.NewMemoryLocker(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}

	l := locker.NewRedisLocker(client, locker.RedisOptions{
		Expiry: cfg.Lock.Expiry,
		Tries:  cfg.Lock.Tries,
	})
	return l, func() {
		if err := client.Close(); err != nil {
			utils.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}, nil
}

func newVerifier(ctx context.Context, cfg config.Config, app *firebase.App) (session.Verifier, error) {
	if cfg.Auth == config.AuthFirebase {
		return session.NewFirebaseVerifier(ctx, app)
	}
	utils.Warn("Trusting identity headers; run behind an authenticating gateway", map[string]any{
		"header": session.HeaderUserID,
	})
	return session.HeaderVerifier{}, nil
}

// prepopulateCategories seeds the configured posting categories
func prepopulateCategories(ctx context.Context, svc *bidding.BiddingService, names []string) {
	added, err := svc.EnsureCategories(ctx, names)
	if err != nil {
		utils.Warn("Failed to seed categories", map[string]any{"error": err.Error()})
		return
	}
	if added > 0 {
		utils.Info("Seeded categories", map[string]any{"added": added})
	}
}
