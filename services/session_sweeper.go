// services/session_sweeper.go
package services

import (
	"context"
	"log"

	"smartpark-backend/sessions"

	cron "github.com/robfig/cron/v3"
)

// StartSessionSweeper drops expired sessions from the store once an hour.
// The in-memory store needs this to keep the map from growing; the Redis
// store expires keys itself and sweeps as a no-op.
func StartSessionSweeper(store sessions.Store) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		removed, err := store.DeleteExpired(context.Background())
		if err != nil {
			log.Printf("Session sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("Session sweep removed %d expired sessions", removed)
		}
	})

	c.Start()
	log.Println("Session sweeper started")
	return c
}
