package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/middleware"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	ws "github.com/harir2002/cyber-resilience-Quiz/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live submission events to the admin dashboard.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// SubmissionsStream godoc
// WS /ws/v1/admin/submissions?token=...
// Upgrades to WebSocket and forwards every scored submission as it lands.
func (h *WSHandler) SubmissionsStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Int("admin_id", claims.AdminID).Logger()
	wsLog.Info().Msg("Admin connected to submission feed")

	ctx := c.Request.Context()
	sub := h.rdb.Subscribe(ctx, config.CacheKey.SubmissionsChannel())
	defer sub.Close()

	// Reader loop: only pings are expected from the client. A read error
	// means the client went away and the forwarder should stop.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				return
			}
			if msg.Action == ws.ActionPing {
				_ = ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
			}
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-done:
			wsLog.Debug().Msg("Connection closed")
			return
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var event model.SubmissionEvent
			if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
				wsLog.Warn().Err(err).Msg("malformed submission event")
				continue
			}
			if err := ws.WriteTyped(conn, ws.SubmissionNotice{
				Event:      ws.EventSubmission,
				Submission: event,
			}); err != nil {
				wsLog.Debug().Err(err).Msg("write failed, closing feed")
				return
			}
		}
	}
}
