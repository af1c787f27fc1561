package handlers

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/RachitaModiTR/PlanPoker/internal/config"
	"github.com/RachitaModiTR/PlanPoker/internal/models"
	"github.com/RachitaModiTR/PlanPoker/internal/security"
	"github.com/RachitaModiTR/PlanPoker/internal/services"
)

// WSHandler upgrades connections and hands the resolved identity to the
// session core. Everything after the handshake flows through the
// dispatcher; this handler never touches session state directly.
type WSHandler struct {
	hub        *services.Hub
	sessions   *services.SessionService
	dispatcher *services.Dispatcher
	origins    []string
}

func NewWSHandler(hub *services.Hub, sessions *services.SessionService, dispatcher *services.Dispatcher, origins []string) *WSHandler {
	return &WSHandler{
		hub:        hub,
		sessions:   sessions,
		dispatcher: dispatcher,
		origins:    origins,
	}
}

// Handle serves GET /ws/:sessionId. Identity comes from query params:
// userId and name are required, avatarUrl is optional and jobRole falls
// back to Developer on any unrecognized value rather than rejecting.
func (h *WSHandler) Handle(c *gin.Context) {
	sessionID := c.Param("sessionId")
	userID := c.Query("userId")

	if sessionID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId and userId are required"})
		return
	}

	name, err := security.ValidateParticipantName(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.hub.ConnectionCount(sessionID) >= config.MaxConnectionsPerSession {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session is full"})
		return
	}

	user := models.User{
		ID:        userID,
		Name:      name,
		AvatarURL: c.Query("avatarUrl"),
		JobRole:   security.NormalizeJobRole(c.Query("jobRole")),
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		return
	}

	client := services.NewClient(conn, h.hub, sessionID, userID,
		h.dispatcher.HandleMessage, h.dispatcher.HandleDisconnect)

	h.hub.Register(client)
	h.sessions.Join(sessionID, user)

	// Blocks until the connection dies; teardown (unregister, leave,
	// final broadcast) runs from the client's own read loop.
	client.Run()
}
