package helper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var catalogScheduler gocron.Scheduler

// StartCatalogScheduler re-warms the catalog cache on an interval so
// the dashboard's first load after the TTL expires is still served hot.
func StartCatalogScheduler(warm func(context.Context) error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	catalogScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(4*time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := warm(ctx); err != nil {
				log.Printf("catalog cache warm failed: %v", err)
			}
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Catalog cache scheduler started (every 4 minutes)")
}

func StopCatalogScheduler() {
	if catalogScheduler != nil {
		catalogScheduler.Shutdown()
		log.Println("Catalog cache scheduler stopped")
	}
}
