package models

type SessionPhase string

const (
	PhaseLobby     SessionPhase = "lobby"
	PhaseVoting    SessionPhase = "voting"
	PhaseRevealing SessionPhase = "revealing"
	PhaseResults   SessionPhase = "results"
)

// DefaultCardDeck is the deck every lazily created session starts with.
var DefaultCardDeck = []string{"0", "1", "2", "3", "5", "8", "13", "21", "?", "coffee"}

type SessionSettings struct {
	CardDeck   []string `json:"cardDeck"`
	AutoReveal bool     `json:"autoReveal"`
}

func DefaultSessionSettings() SessionSettings {
	deck := make([]string, len(DefaultCardDeck))
	copy(deck, DefaultCardDeck)
	return SessionSettings{
		CardDeck:   deck,
		AutoReveal: false,
	}
}

// Session is the authoritative state of one estimation room. All mutation
// goes through the session service, which serializes access per session;
// the struct itself carries no locking.
type Session struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ModeratorID      string           `json:"moderatorId"`
	Participants     []*Participant   `json:"participants"`
	WorkItems        []*WorkItem      `json:"workItems"`
	ActiveWorkItemID string           `json:"activeWorkItemId,omitempty"`
	Phase            SessionPhase     `json:"phase"`
	Votes            map[string]*Vote `json:"votes"`
	Settings         SessionSettings  `json:"settings"`
}

func NewSession(id, name, moderatorID string) *Session {
	return &Session{
		ID:           id,
		Name:         name,
		ModeratorID:  moderatorID,
		Participants: []*Participant{},
		WorkItems:    []*WorkItem{},
		Phase:        PhaseVoting,
		Votes:        make(map[string]*Vote),
		Settings:     DefaultSessionSettings(),
	}
}

// Participant returns the participant with the given id, or nil.
func (s *Session) Participant(id string) *Participant {
	for _, p := range s.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// WorkItem returns the work item with the given id, or nil.
func (s *Session) WorkItem(id string) *WorkItem {
	for _, wi := range s.WorkItems {
		if wi.ID == id {
			return wi
		}
	}
	return nil
}

// RemoveParticipant drops the participant and their vote in one step, so
// a kicked participant's vote never outlives them.
func (s *Session) RemoveParticipant(id string) bool {
	for i, p := range s.Participants {
		if p.ID == id {
			s.Participants = append(s.Participants[:i], s.Participants[i+1:]...)
			delete(s.Votes, id)
			return true
		}
	}
	return false
}

// ClearVotes empties the vote map and resets every hasVoted flag.
func (s *Session) ClearVotes() {
	s.Votes = make(map[string]*Vote)
	for _, p := range s.Participants {
		p.HasVoted = false
	}
}

// IsModerator reports whether the given user holds the moderator role.
// Authority is role-based; ModeratorID is informational only.
func (s *Session) IsModerator(userID string) bool {
	p := s.Participant(userID)
	return p != nil && p.IsModerator()
}

// EligibleVoters counts connected participants who are allowed to vote.
func (s *Session) EligibleVoters() int {
	count := 0
	for _, p := range s.Participants {
		if !p.IsObserver() && p.Status == StatusConnected {
			count++
		}
	}
	return count
}

// AllVotersVoted reports whether every eligible voter has cast a vote.
// False when there are no eligible voters at all.
func (s *Session) AllVotersVoted() bool {
	if s.EligibleVoters() == 0 {
		return false
	}
	for _, p := range s.Participants {
		if !p.IsObserver() && p.Status == StatusConnected && !p.HasVoted {
			return false
		}
	}
	return true
}
