package handler

import (
	"context"

	"venue_manager/cache"

	"github.com/gofiber/contrib/websocket"
)

// CatalogWebsocket streams catalog-change events to open dashboards so
// their tables refresh without polling. Each connection holds its own
// subscription to the events channel.
func CatalogWebsocket(c *websocket.Conn) {
	defer c.Close()

	// Initial snapshot so a fresh dashboard renders immediately.
	if view, err := LoadCatalogView(context.Background()); err == nil {
		c.WriteJSON(view)
	}

	pubsub := cache.Client.Subscribe(context.Background(), cache.EventsChannel())
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
