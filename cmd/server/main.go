package main

import (
	"context"
	"log"

	"anoa.com/ruangkelas/internal/config"
	"anoa.com/ruangkelas/internal/realtime"
	"anoa.com/ruangkelas/internal/server"
	"anoa.com/ruangkelas/internal/storage"
	"anoa.com/ruangkelas/internal/store"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage backend: %v", err)
	}

	// Load whatever was persisted; a broken or empty medium means starting
	// from the seed dataset, never a startup failure.
	snap := storage.Load(context.Background(), backend)
	notifier := store.LogNotifier{}
	st := store.New(snap, store.WithNotifier(notifier))

	// Every committed mutation flows to persistence and to connected views.
	storage.Attach(st, backend, notifier)
	hub := realtime.NewHub()
	st.Subscribe(hub.Broadcast)

	if cfg.AppEnv == "development" {
		log.Println("Seed accounts: teacher/password, student/password")
	}

	srv := server.New(cfg, st, hub)
	log.Printf("ruangkelas listening on :%s (storage=%s)", cfg.Port, cfg.StorageBackend)
	if err := srv.Run(cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func newBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisBackend(redis.NewClient(opts), "ruangkelas"), nil
	case "postgres":
		return storage.NewPostgresBackend(cfg.DatabaseURL)
	default:
		return storage.NewFileBackend(cfg.SnapshotPath), nil
	}
}
