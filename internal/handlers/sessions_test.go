package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachitaModiTR/PlanPoker/internal/handlers"
	"github.com/RachitaModiTR/PlanPoker/internal/models"
	"github.com/RachitaModiTR/PlanPoker/internal/services"
)

func newTestRouter() (*gin.Engine, *services.Store) {
	gin.SetMode(gin.TestMode)

	store := services.NewStore()
	metrics := services.NewMetrics()
	sessionHandlers := handlers.NewSessionHandlers(store, "http://localhost:8000")

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/sessions", sessionHandlers.Create)
		api.GET("/sessions/:id", sessionHandlers.Get)
		api.GET("/sessions/:id/invite.png", sessionHandlers.InviteQR)
	}
	router.GET("/metrics", handlers.HandleMetrics(metrics, store))
	router.GET("/healthz", handlers.HandleHealth(metrics, store))

	return router, store
}

func TestCreateSession(t *testing.T) {
	router, _ := newTestRouter()

	t.Run("returns id and invite links", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Sprint Planning"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", body)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["id"])
		assert.Equal(t, "Sprint Planning", resp["name"])
		assert.Contains(t, resp["joinUrl"], resp["id"])
	})

	t.Run("rejects dangerous names", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"<script>alert(1)</script>"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateSessionStoresReservation(t *testing.T) {
	router, store := newTestRouter()

	t.Run("name, deck preset and auto-reveal are persisted", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Sprint Planning","deck":"t-shirt","autoReveal":true}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", body)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		session := store.Get(resp["id"])
		require.NotNil(t, session, "creation must reserve the session")
		assert.Equal(t, "Sprint Planning", session.Name)
		assert.Contains(t, session.Settings.CardDeck, "XL")
		assert.NotContains(t, session.Settings.CardDeck, "13")
		assert.True(t, session.Settings.AutoReveal)
	})

	t.Run("reserved name survives the first connect", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Backlog Grooming"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", body)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		session := store.GetOrCreate(resp["id"], models.User{ID: "u1", Name: "Alice"})
		assert.Equal(t, "Backlog Grooming", session.Name)
	})

	t.Run("unknown deck preset is rejected", func(t *testing.T) {
		body := bytes.NewBufferString(`{"deck":"tarot"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetSession(t *testing.T) {
	router, store := newTestRouter()

	t.Run("missing session is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("existing session summary", func(t *testing.T) {
		store.GetOrCreate("s1", models.User{ID: "u1", Name: "Alice"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/s1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "s1", resp["id"])
		assert.Equal(t, string(models.PhaseVoting), resp["phase"])
	})
}

func TestInviteQR(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/s1/invite.png", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
