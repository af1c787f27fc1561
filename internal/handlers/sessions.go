package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
	"github.com/RachitaModiTR/PlanPoker/internal/security"
	"github.com/RachitaModiTR/PlanPoker/internal/services"
)

// SessionHandlers serves the small REST surface around the websocket
// core: explicit session creation, session lookup and invite QR codes.
type SessionHandlers struct {
	store     *services.Store
	decks     *services.DeckValidator
	publicURL string
}

func NewSessionHandlers(store *services.Store, publicURL string) *SessionHandlers {
	return &SessionHandlers{
		store:     store,
		decks:     services.NewDeckValidator(),
		publicURL: publicURL,
	}
}

// Create handles POST /api/sessions. Sessions are also created lazily on
// first websocket connect; this endpoint exists so a client can reserve
// an id with a name, deck preset and auto-reveal choice, and share the
// invite link before anyone connects.
func (h *SessionHandlers) Create(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		Deck       string `json:"deck"`
		AutoReveal bool   `json:"autoReveal"`
	}
	_ = c.ShouldBindJSON(&req)

	name := req.Name
	if name != "" {
		validated, err := security.ValidateSessionName(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		name = validated
	}

	settings := models.DefaultSessionSettings()
	settings.AutoReveal = req.AutoReveal
	if req.Deck != "" {
		deck, err := h.decks.PresetDeck(req.Deck)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		settings.CardDeck = deck
	}

	sessionID := uuid.New().String()
	if name == "" {
		name = "Session " + sessionID
	}
	session := h.store.Create(sessionID, name, settings)

	c.JSON(http.StatusCreated, gin.H{
		"id":       session.ID,
		"name":     session.Name,
		"joinUrl":  h.joinURL(sessionID),
		"inviteQr": "/api/sessions/" + sessionID + "/invite.png",
	})
}

// Get handles GET /api/sessions/:id with a lightweight summary.
func (h *SessionHandlers) Get(c *gin.Context) {
	sessionID := c.Param("id")

	session := h.store.Get(sessionID)
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           session.ID,
		"name":         session.Name,
		"phase":        session.Phase,
		"participants": len(session.Participants),
		"workItems":    len(session.WorkItems),
	})
}

// InviteQR handles GET /api/sessions/:id/invite.png with a QR code of
// the join URL.
func (h *SessionHandlers) InviteQR(c *gin.Context) {
	sessionID := c.Param("id")

	png, err := qrcode.Encode(h.joinURL(sessionID), qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *SessionHandlers) joinURL(sessionID string) string {
	return h.publicURL + "/session/" + sessionID
}
