package services

import (
	"encoding/json"
	"log"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
	"github.com/RachitaModiTR/PlanPoker/internal/security"
)

// Dispatcher turns raw inbound frames into session service calls. The
// policy from the error taxonomy applies here: unrecognized events and
// malformed payloads are dropped without failing the connection.
type Dispatcher struct {
	sessions *SessionService
}

func NewDispatcher(sessions *SessionService) *Dispatcher {
	return &Dispatcher{sessions: sessions}
}

// HandleMessage decodes one client frame and routes it.
func (d *Dispatcher) HandleMessage(c *Client, data []byte) {
	var event models.ClientEvent
	if err := json.Unmarshal(data, &event); err != nil {
		log.Printf("Error unmarshaling client event (session=%s, user=%s): %v", c.SessionID(), c.UserID(), err)
		return
	}

	if !security.IsValidEventName(event.Event) {
		log.Printf("⚠️  Unrecognized event %q dropped (session=%s, user=%s)", event.Event, c.SessionID(), c.UserID())
		return
	}
	if err := security.ValidateEventPayload(event.Event, event.Payload); err != nil {
		log.Printf("⚠️  Malformed %q payload dropped (session=%s, user=%s): %v", event.Event, c.SessionID(), c.UserID(), err)
		return
	}

	sessionID, userID := c.SessionID(), c.UserID()

	switch event.Event {
	case models.EventJoinSession:
		// Joining happens on connect; the explicit event is accepted for
		// protocol compatibility and carries nothing new.

	case models.EventCastVote:
		d.sessions.CastVote(sessionID, userID, voteValue(event.Payload["value"]))

	case models.EventRevealVotes:
		d.sessions.RevealVotes(sessionID, userID)

	case models.EventClearVotes:
		d.sessions.ClearVotes(sessionID, userID)

	case models.EventKickParticipant:
		d.sessions.KickParticipant(sessionID, userID, stringField(event.Payload, "userId"))

	case models.EventAddWorkItem:
		d.sessions.AddWorkItem(sessionID, userID,
			stringField(event.Payload, "title"),
			stringField(event.Payload, "description"))

	case models.EventSetActiveWorkItem:
		d.sessions.SetActiveWorkItem(sessionID, userID, stringField(event.Payload, "workItemId"))

	case models.EventSetAgreedEstimate:
		d.sessions.SetAgreedEstimate(sessionID, userID,
			stringField(event.Payload, "workItemId"),
			voteValue(event.Payload["estimate"]))

	case models.EventResetSession:
		d.sessions.ResetSession(sessionID, userID)
	}
}

// HandleDisconnect marks the participant disconnected and broadcasts the
// final snapshot so the remaining participants see the status change.
func (d *Dispatcher) HandleDisconnect(c *Client) {
	d.sessions.Leave(c.SessionID(), c.UserID())
}

func stringField(payload map[string]interface{}, field string) string {
	s, _ := payload[field].(string)
	return s
}

// voteValue converts a decoded JSON payload value into a VoteValue.
// Clients send numbers for point estimates and strings for tokens.
func voteValue(raw interface{}) models.VoteValue {
	data, err := json.Marshal(raw)
	if err != nil {
		return ""
	}
	var v models.VoteValue
	if err := v.UnmarshalJSON(data); err != nil {
		return ""
	}
	return v
}
