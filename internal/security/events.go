package security

import (
	"fmt"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

// Known client → server event names. Anything else is dropped before it
// reaches the session service.
var validEventNames = map[string]bool{
	models.EventJoinSession:       true,
	models.EventCastVote:          true,
	models.EventRevealVotes:       true,
	models.EventClearVotes:        true,
	models.EventKickParticipant:   true,
	models.EventAddWorkItem:       true,
	models.EventSetActiveWorkItem: true,
	models.EventSetAgreedEstimate: true,
	models.EventResetSession:      true,
}

// IsValidEventName checks if a client event name is recognized.
func IsValidEventName(name string) bool {
	return validEventNames[name]
}

// ValidateEventPayload checks that the payload carries the fields the
// event requires. Events with no required fields accept any payload.
func ValidateEventPayload(event string, payload map[string]interface{}) error {
	requireString := func(field string) error {
		v, ok := payload[field]
		if !ok {
			return fmt.Errorf("%s payload must have %q field", event, field)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return fmt.Errorf("%s payload field %q must be a non-empty string", event, field)
		}
		return nil
	}

	switch event {
	case models.EventCastVote:
		if _, ok := payload["value"]; !ok {
			return fmt.Errorf("%s payload must have %q field", event, "value")
		}
	case models.EventKickParticipant:
		return requireString("userId")
	case models.EventAddWorkItem:
		return requireString("title")
	case models.EventSetActiveWorkItem:
		return requireString("workItemId")
	case models.EventSetAgreedEstimate:
		if err := requireString("workItemId"); err != nil {
			return err
		}
		if _, ok := payload["estimate"]; !ok {
			return fmt.Errorf("%s payload must have %q field", event, "estimate")
		}
	}
	return nil
}
