package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"venue_manager/config"
	"venue_manager/model"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const (
	catalogKey     = "catalog:view"
	catalogTTL     = 5 * time.Minute
	eventsChannel  = "catalog:events"
	entityKeyShape = "catalog:%s:%d"
)

func Init() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Client = redis.NewClient(&redis.Options{Addr: addr})
}

// GetCatalog returns the cached catalog view, or nil on a miss. A cache
// error counts as a miss so reads fall through to the database.
func GetCatalog(ctx context.Context) *model.CatalogView {
	if Client == nil {
		return nil
	}
	raw, err := Client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("catalog cache read failed: %v", err)
		}
		return nil
	}
	var view model.CatalogView
	if err := json.Unmarshal(raw, &view); err != nil {
		log.Printf("catalog cache decode failed: %v", err)
		return nil
	}
	return &view
}

func SetCatalog(ctx context.Context, view *model.CatalogView) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(view)
	if err != nil {
		log.Printf("catalog cache encode failed: %v", err)
		return
	}
	if err := Client.Set(ctx, catalogKey, raw, catalogTTL).Err(); err != nil {
		log.Printf("catalog cache write failed: %v", err)
	}
}

// InvalidateCatalog drops the cached view and announces the change on
// the events channel so open dashboards refresh. Every write path calls
// this; no handler patches cached state directly.
func InvalidateCatalog(ctx context.Context, entity string, id uint) {
	if Client == nil {
		return
	}
	if err := Client.Del(ctx, catalogKey, fmt.Sprintf(entityKeyShape, entity, id)).Err(); err != nil {
		log.Printf("catalog cache invalidate failed: %v", err)
	}
	payload, _ := json.Marshal(map[string]any{"entity": entity, "id": id})
	if err := Client.Publish(ctx, eventsChannel, payload).Err(); err != nil {
		log.Printf("catalog event publish failed: %v", err)
	}
}

func EventsChannel() string {
	return eventsChannel
}
