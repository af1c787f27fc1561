package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/RachitaModiTR/PlanPoker/internal/config"
	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

// Broadcaster is the outbound side of the session core: it delivers
// projected snapshots and control messages to every live connection of a
// session. The hub implements it; tests substitute a recorder.
type Broadcaster interface {
	Broadcast(sessionID string, snapshot *models.SessionSnapshot)
	Control(sessionID string, msg *models.ControlMessage)
	CloseSession(sessionID string)
}

// Hub owns the set of live client connections per session and fans out
// serialized snapshots. A client whose send fails is closed and drops out
// of the registry through its own read-loop teardown; no separate
// health-check loop exists.
type Hub struct {
	// Session connections: sessionId -> set of clients
	sessions map[string]map[*Client]bool

	// Broadcast snapshot to a session
	broadcast chan *outboundMessage

	// Register connection to session
	register chan *Client

	// Unregister connection from session
	unregister chan *Client

	metrics *Metrics

	mu sync.RWMutex
}

type outboundMessage struct {
	sessionID string
	data      []byte
}

func NewHub(metrics *Metrics) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *outboundMessage, config.HubBroadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		metrics:    metrics,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case msg := <-h.broadcast:
			h.broadcastToSession(msg)
		}
	}
}

func (h *Hub) Register(c *Client) {
	h.register <- c
}

func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast serializes the snapshot once and queues it for delivery to
// every client registered for the session.
func (h *Hub) Broadcast(sessionID string, snapshot *models.SessionSnapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("Error marshaling snapshot: %v", err)
		h.metrics.IncrementBroadcastErrors()
		return
	}
	h.broadcast <- &outboundMessage{sessionID: sessionID, data: data}
	h.metrics.IncrementSnapshotsSent()
}

// Control delivers a control message to every client of the session.
func (h *Hub) Control(sessionID string, msg *models.ControlMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling control message: %v", err)
		return
	}
	h.broadcast <- &outboundMessage{sessionID: sessionID, data: data}
}

// CloseSession closes every connection of a session and drops the
// registry entry. Only session reset calls this.
func (h *Hub) CloseSession(sessionID string) {
	h.mu.Lock()
	clients := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	h.mu.Unlock()

	for c := range clients {
		h.metrics.DecrementConnections()
		c.Close()
	}
	log.Printf("✓ Session closed: id=%s (%d connections dropped)", sessionID, len(clients))
}

// ConnectionCount returns the number of live connections for a session.
func (h *Hub) ConnectionCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}

func (h *Hub) registerClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[c.sessionID] == nil {
		h.sessions[c.sessionID] = make(map[*Client]bool)
	}
	h.sessions[c.sessionID][c] = true
	h.metrics.IncrementConnections()

	log.Printf("✓ WebSocket registered: session=%s user=%s (total connections in session: %d)",
		c.sessionID, c.userID, len(h.sessions[c.sessionID]))
}

func (h *Hub) unregisterClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.sessions[c.sessionID]; ok {
		if _, exists := clients[c]; exists {
			delete(clients, c)
			h.metrics.DecrementConnections()
			c.Close()

			// Clean up empty registry entries; the session itself stays
			// in the store for reconnection.
			if len(clients) == 0 {
				delete(h.sessions, c.sessionID)
			}
		}
	}
}

func (h *Hub) broadcastToSession(msg *outboundMessage) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.sessions[msg.sessionID]))
	for c := range h.sessions[msg.sessionID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		// Send never blocks; a slow client is closed and prunes itself.
		c.Send(msg.data)
	}
}
