package handler

import (
	"encoding/json"
	"net/http"

	"railassist/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeNotificationStream upgrades the connection and forwards complaint
// lifecycle events to the client. Customers receive only their own
// events; admins receive all of them. The token is taken from the
// Authorization header or, for browser websocket clients, a query param.
func (h *Handler) ServeNotificationStream(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		header := c.GetHeader("Authorization")
		if len(header) > 7 && header[:7] == "Bearer " {
			tokenString = header[7:]
		}
	}
	claims, err := h.Auth.ParseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	sub := h.Events.SubscribeEvents(ctx)
	defer sub.Close()

	// Drain client frames so pings and close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	for msg := range sub.Channel() {
		var event models.ComplaintEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			h.Log.Warn("malformed lifecycle event on channel", zap.Error(err))
			continue
		}
		if claims.Role != models.RoleAdmin && event.UserID != claims.UserID {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			return
		}
	}
}
