package handler

import (
	"context"
	"log"

	"remitabeg-landing/internal/realtime"

	"github.com/gofiber/websocket/v2"
)

// ContentCache is invalidated after every admin write. Nil when the page
// reads content without a cache.
var ContentCache interface {
	Invalidate(ctx context.Context)
}

// contentChanged - buang cache & kabari semua landing page yang terbuka
func contentChanged(section string) {
	if ContentCache != nil {
		ContentCache.Invalidate(context.Background())
	}
	realtime.Content.NotifyContentUpdated(section)
}

// ContentWS - landing page subscribe ke event perubahan konten
func ContentWS(c *websocket.Conn) {
	if !realtime.Content.Subscribe(c) {
		log.Println("[ws] hub sudah berhenti, koneksi ditolak")
		return
	}
	defer realtime.Content.Unsubscribe(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
			) {
				log.Printf("[ws] unexpected close: %v", err)
			}
			return
		}
	}
}
