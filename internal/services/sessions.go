package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/RachitaModiTR/PlanPoker/internal/config"
	"github.com/RachitaModiTR/PlanPoker/internal/models"
	"github.com/RachitaModiTR/PlanPoker/internal/security"
)

// SessionService is the authoritative state machine for sessions. Every
// operation validates its preconditions, mutates the session under its
// lock, and projects and enqueues a snapshot while still holding it.
// Validation and authorization failures are silent no-ops: no mutation,
// no broadcast, nothing sent back to the offender.
type SessionService struct {
	store     *Store
	hub       Broadcaster
	projector *Projector
	decks     *DeckValidator

	// resetGrace is the drain window between the reset control message
	// and the forced close. Shortened in tests.
	resetGrace time.Duration
}

func NewSessionService(store *Store, hub Broadcaster) *SessionService {
	return &SessionService{
		store:      store,
		hub:        hub,
		projector:  NewProjector(),
		decks:      NewDeckValidator(),
		resetGrace: config.ResetGracePeriod,
	}
}

// mutate runs fn under the session lock and, when fn reports success,
// projects and enqueues a snapshot. The hub enqueue stays inside the
// lock so snapshots of racing events reach the hub channel in mutation
// order; the hub's FIFO queue then preserves it. Only the per-connection
// fan-out runs outside the lock, inside the hub loop.
func (s *SessionService) mutate(sessionID string, fn func(session *models.Session) bool) {
	s.store.withSession(sessionID, func(session *models.Session, lastSeq *int64) {
		if fn(session) {
			s.hub.Broadcast(sessionID, s.projector.Project(session, lastSeq))
		}
	})
}

// Join adds the user to the session, creating the session first if it
// does not exist yet. A returning participant gets their display fields
// refreshed and status set back to connected; their role never changes on
// rejoin. A new participant's role is moderator for the first joiner,
// observer for Admins and voter for everyone else.
func (s *SessionService) Join(sessionID string, user models.User) {
	s.store.GetOrCreate(sessionID, user)

	s.mutate(sessionID, func(session *models.Session) bool {
		if existing := session.Participant(user.ID); existing != nil {
			existing.Name = user.Name
			existing.AvatarURL = user.AvatarURL
			existing.JobRole = user.JobRole
			existing.Status = models.StatusConnected
			return true
		}

		role := models.RoleVoter
		switch {
		case len(session.Participants) == 0:
			role = models.RoleModerator
		case user.JobRole == models.JobRoleAdmin:
			role = models.RoleObserver
		}

		session.Participants = append(session.Participants, models.NewParticipant(user, role))
		log.Printf("✓ Participant joined: session=%s user=%s role=%s", sessionID, user.ID, role)
		return true
	})
}

// Leave marks the participant disconnected on transport loss. The
// participant and their vote stay in place so they can reconnect.
func (s *SessionService) Leave(sessionID, userID string) {
	s.mutate(sessionID, func(session *models.Session) bool {
		p := session.Participant(userID)
		if p == nil {
			return false
		}
		p.Status = models.StatusDisconnected
		return true
	})
}

// CastVote records or overwrites the participant's vote for the current
// round. Observers cannot vote. The value must be a card of the session
// deck. With auto-reveal enabled, the vote that completes the set of
// eligible voters flips the session to revealing.
func (s *SessionService) CastVote(sessionID, userID string, value models.VoteValue) {
	s.mutate(sessionID, func(session *models.Session) bool {
		p := session.Participant(userID)
		if p == nil || p.IsObserver() {
			return false
		}
		if err := s.decks.ValidateVoteValue(value, session.Settings.CardDeck); err != nil {
			return false
		}

		session.Votes[userID] = models.NewVote(userID, value)
		p.HasVoted = true

		if session.Settings.AutoReveal && session.Phase == models.PhaseVoting && session.AllVotersVoted() {
			session.Phase = models.PhaseRevealing
			log.Printf("✓ Auto-reveal triggered: session=%s", sessionID)
		}
		return true
	})
}

// RevealVotes moves the session to the revealing phase. Moderator only.
func (s *SessionService) RevealVotes(sessionID, requesterID string) {
	s.mutate(sessionID, func(session *models.Session) bool {
		if !session.IsModerator(requesterID) {
			return false
		}
		session.Phase = models.PhaseRevealing
		return true
	})
}

// ClearVotes starts a fresh round on the same item: votes gone, hasVoted
// flags reset, phase back to voting. Moderator only.
func (s *SessionService) ClearVotes(sessionID, requesterID string) {
	s.mutate(sessionID, func(session *models.Session) bool {
		if !session.IsModerator(requesterID) {
			return false
		}
		session.ClearVotes()
		session.Phase = models.PhaseVoting
		return true
	})
}

// KickParticipant removes the target and their vote in one step.
// Moderator only.
func (s *SessionService) KickParticipant(sessionID, requesterID, targetID string) {
	s.mutate(sessionID, func(session *models.Session) bool {
		if !session.IsModerator(requesterID) {
			return false
		}
		if !session.RemoveParticipant(targetID) {
			return false
		}
		log.Printf("✓ Participant kicked: session=%s user=%s by=%s", sessionID, targetID, requesterID)
		return true
	})
}

// AddWorkItem appends a new work item; the first item of a session
// becomes active automatically. Moderator only, title required and
// length-capped.
func (s *SessionService) AddWorkItem(sessionID, requesterID, title, description string) {
	title, err := security.ValidateWorkItemTitle(title)
	if err != nil {
		return
	}

	s.mutate(sessionID, func(session *models.Session) bool {
		if !session.IsModerator(requesterID) {
			return false
		}

		item := models.NewWorkItem(uuid.New().String(), title, description)
		session.WorkItems = append(session.WorkItems, item)
		if session.ActiveWorkItemID == "" {
			session.ActiveWorkItemID = item.ID
		}
		return true
	})
}

// SetActiveWorkItem switches the session to a new item and starts a
// fresh round on it. Moderator only, item must exist.
func (s *SessionService) SetActiveWorkItem(sessionID, requesterID, workItemID string) {
	s.mutate(sessionID, func(session *models.Session) bool {
		if !session.IsModerator(requesterID) {
			return false
		}
		if session.WorkItem(workItemID) == nil {
			return false
		}

		session.ActiveWorkItemID = workItemID
		session.ClearVotes()
		session.Phase = models.PhaseVoting
		return true
	})
}

// SetAgreedEstimate records the consensus estimate on a work item. The
// estimate must be a card of the session deck, same rule as a vote.
// Moderator only, item must exist.
func (s *SessionService) SetAgreedEstimate(sessionID, requesterID, workItemID string, estimate models.VoteValue) {
	s.mutate(sessionID, func(session *models.Session) bool {
		if !session.IsModerator(requesterID) {
			return false
		}
		item := session.WorkItem(workItemID)
		if item == nil {
			return false
		}
		if err := s.decks.ValidateVoteValue(estimate, session.Settings.CardDeck); err != nil {
			return false
		}
		item.AgreedEstimate = estimate
		return true
	})
}

// ResetSession tears the session down: a session_reset control message
// goes to every live connection, in-flight delivery gets a bounded grace
// period, then every connection is closed and the session is deleted.
// This is the only hard-delete path for a session. Moderator only.
func (s *SessionService) ResetSession(sessionID, requesterID string) {
	authorized := false
	found := s.store.withSession(sessionID, func(session *models.Session, _ *int64) {
		authorized = session.IsModerator(requesterID)
	})
	if !found || !authorized {
		return
	}

	s.hub.Control(sessionID, &models.ControlMessage{Event: models.ControlSessionReset})
	time.Sleep(s.resetGrace)
	s.hub.CloseSession(sessionID)
	s.store.Delete(sessionID)
	log.Printf("✓ Session reset: id=%s by=%s", sessionID, requesterID)
}
