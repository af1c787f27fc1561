package config

import "time"

// WebSocket connection limits and constraints
const (
	// Connection limits
	MaxConnectionsPerSession = 50
	MaxSessionsPerInstance   = 1000
	MaxTotalConnections      = 10000

	// Rate limiting
	MaxMessagesPerSecond = 10
	RateLimitWindow      = time.Second

	// Timeouts
	WriteTimeout = 10 * time.Second
	PingInterval = 30 * time.Second
	PongTimeout  = 90 * time.Second // 3x ping interval for network delay tolerance

	// Grace period between the session_reset control message and the
	// forced close of every connection. Best-effort drain, not a guarantee.
	ResetGracePeriod = 250 * time.Millisecond

	// Channel buffers
	ClientSendBufferSize   = 256
	HubBroadcastBufferSize = 256
)
