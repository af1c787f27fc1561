package models

// ClientEvent is the envelope for every client → server message.
type ClientEvent struct {
	Event   string                 `json:"event"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Client → Server event names
const (
	EventJoinSession       = "join_session"
	EventCastVote          = "cast_vote"
	EventRevealVotes       = "reveal_votes"
	EventClearVotes        = "clear_votes"
	EventKickParticipant   = "kick_participant"
	EventAddWorkItem       = "add_work_item"
	EventSetActiveWorkItem = "set_active_work_item"
	EventSetAgreedEstimate = "set_agreed_estimate"
	EventResetSession      = "reset_session"
)

// ControlMessage is sent outside the snapshot stream for lifecycle
// signals, currently only session teardown.
type ControlMessage struct {
	Event string `json:"event"`
}

// Server → Client control event names
const (
	ControlSessionReset = "session_reset"
)
