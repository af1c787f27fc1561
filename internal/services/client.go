package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/RachitaModiTR/PlanPoker/internal/config"
)

// Client represents a single WebSocket connection with its own send goroutine.
type Client struct {
	conn      *websocket.Conn
	send      chan []byte
	hub       *Hub
	sessionID string
	userID    string

	// onMessage receives every raw inbound frame; onDisconnect fires once
	// when the read loop ends, however it ends.
	onMessage    func(c *Client, data []byte)
	onDisconnect func(c *Client)

	// Rate limiting
	messageCount int
	rateLimitMu  sync.Mutex
	lastReset    time.Time

	// Lifecycle
	ctx     context.Context
	cancel  context.CancelFunc
	closed  bool
	closeMu sync.Mutex
}

func NewClient(conn *websocket.Conn, hub *Hub, sessionID, userID string,
	onMessage func(c *Client, data []byte), onDisconnect func(c *Client)) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		conn:         conn,
		send:         make(chan []byte, config.ClientSendBufferSize),
		hub:          hub,
		sessionID:    sessionID,
		userID:       userID,
		onMessage:    onMessage,
		onDisconnect: onDisconnect,
		lastReset:    time.Now(),
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (c *Client) SessionID() string { return c.sessionID }
func (c *Client) UserID() string    { return c.userID }

// Run pumps the connection until it dies: writes happen on a background
// goroutine, reads on the calling goroutine. When the read loop ends the
// client unregisters itself and fires onDisconnect exactly once.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// writePump handles outgoing messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				_ = c.conn.Close(websocket.StatusNormalClosure, "")
				return
			}

			writeCtx, cancel := context.WithTimeout(c.ctx, config.WriteTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()

			if err != nil {
				log.Printf("❌ Write error (session=%s, user=%s): %v", c.sessionID, c.userID, err)
				c.hub.metrics.IncrementBroadcastErrors()
				return
			}
			c.hub.metrics.IncrementMessagesSent()

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(c.ctx, config.WriteTimeout)
			err := c.conn.Ping(pingCtx)
			cancel()

			if err != nil {
				log.Printf("❌ Ping error (session=%s): %v", c.sessionID, err)
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// readPump handles incoming messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
		if c.onDisconnect != nil {
			c.onDisconnect(c)
		}
	}()

	for {
		readCtx, cancel := context.WithTimeout(c.ctx, config.PongTimeout)
		_, message, err := c.conn.Read(readCtx)
		cancel()

		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure && c.ctx.Err() == nil {
				log.Printf("❌ Read error (session=%s, user=%s): %v", c.sessionID, c.userID, err)
				c.hub.metrics.IncrementConnectionErrors()
			}
			return
		}

		if !c.checkRateLimit() {
			log.Printf("⚠️  Rate limit exceeded (session=%s, user=%s)", c.sessionID, c.userID)
			c.hub.metrics.IncrementRateLimitViolations()
			continue
		}

		c.hub.metrics.IncrementMessagesReceived()

		if c.onMessage != nil {
			c.onMessage(c, message)
		}
	}
}

// checkRateLimit verifies the client hasn't exceeded message rate limits
func (c *Client) checkRateLimit() bool {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	now := time.Now()
	if now.Sub(c.lastReset) > config.RateLimitWindow {
		c.messageCount = 0
		c.lastReset = now
	}

	c.messageCount++
	return c.messageCount <= config.MaxMessagesPerSecond
}

// Send queues a message for sending to the client. It never blocks: a
// client whose buffer is full is closed as a slow consumer.
func (c *Client) Send(message []byte) bool {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- message:
		return true
	default:
		log.Printf("⚠️  Send buffer full, closing slow client (session=%s, user=%s)", c.sessionID, c.userID)
		c.hub.metrics.IncrementBroadcastErrors()
		c.closeLocked()
		return false
	}
}

// Close cleanly shuts down the client connection. Safe to call more than once.
func (c *Client) Close() {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	c.closeLocked()
}

func (c *Client) closeLocked() {
	if c.closed {
		return
	}

	c.closed = true
	c.cancel()
	close(c.send)
	if c.conn != nil {
		_ = c.conn.Close(websocket.StatusNormalClosure, "")
	}
}
