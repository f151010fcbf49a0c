// Command echowall is the application root: it wires the persistent store,
// the post collection, the viewer preferences, and the feed service together,
// then renders the current feed.
package main

import (
	"context"
	"log"
	"os"

	"echowall/internal/config"
	"echowall/internal/kv"
	"echowall/internal/models"
	"echowall/internal/prefs"
	"echowall/internal/render"
	"echowall/internal/seed"
	"echowall/internal/service"
	"echowall/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	kvStore, err := openKV(cfg)
	if err != nil {
		log.Fatalf("open %s store: %v", cfg.StoreBackend, err)
	}
	defer kvStore.Close()

	ctx := context.Background()

	posts := store.New(kvStore, cfg.StoreKey)
	if err := posts.Load(ctx); err != nil {
		log.Fatalf("load posts: %v", err)
	}

	if cfg.SeedDemo && len(posts.All()) == 0 {
		if err := seed.NewFactory().Demo(ctx, kvStore, cfg.StoreKey, 12, 30); err != nil {
			log.Fatalf("seed demo posts: %v", err)
		}
		if err := posts.Load(ctx); err != nil {
			log.Fatalf("reload posts: %v", err)
		}
	}

	prefStore := prefs.NewStore(kvStore, cfg.PrefsKey, prefs.Preferences{Theme: cfg.Theme})
	if _, err := prefStore.Load(ctx); err != nil {
		log.Fatalf("load preferences: %v", err)
	}

	user := models.User{ID: cfg.UserID, Name: cfg.UserName}
	svc := service.NewFeedService(posts, prefStore, user, render.NewText(os.Stdout))
	svc.Refresh()
}

func openKV(cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		return kv.NewRedis(cfg.RedisURL)
	case "sqlite":
		return kv.NewSQLite(cfg.DBPath)
	default:
		return kv.NewMemory(), nil
	}
}
