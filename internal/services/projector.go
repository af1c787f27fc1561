package services

import (
	"time"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

// Projector derives the client-visible view of a session. The projection
// is a detached copy: it can be serialized and broadcast after the
// session lock is released without racing later mutations.
type Projector struct{}

func NewProjector() *Projector {
	return &Projector{}
}

// Project builds a snapshot of the session, applying the vote-masking
// policy: while the session is voting, every vote's value is replaced by
// the hidden marker so clients can show who voted without seeing what.
// In every other phase values pass through unmasked and the snapshot
// carries round statistics.
//
// lastSeq is the session's sequence high-water mark; the caller must hold
// the session lock. Sequence ids are wall-clock milliseconds clamped to
// never decrease within a session.
func (pr *Projector) Project(session *models.Session, lastSeq *int64) *models.SessionSnapshot {
	now := time.Now().UTC()

	seq := now.UnixMilli()
	if seq < *lastSeq {
		seq = *lastSeq
	}
	*lastSeq = seq

	masked := session.Phase == models.PhaseVoting

	view := &models.Session{
		ID:               session.ID,
		Name:             session.Name,
		ModeratorID:      session.ModeratorID,
		Participants:     make([]*models.Participant, len(session.Participants)),
		WorkItems:        make([]*models.WorkItem, len(session.WorkItems)),
		ActiveWorkItemID: session.ActiveWorkItemID,
		Phase:            session.Phase,
		Votes:            make(map[string]*models.Vote, len(session.Votes)),
		Settings:         session.Settings,
	}

	for i, p := range session.Participants {
		cp := *p
		view.Participants[i] = &cp
	}
	for i, wi := range session.WorkItems {
		cp := *wi
		view.WorkItems[i] = &cp
	}
	for id, v := range session.Votes {
		if masked {
			view.Votes[id] = v.Masked()
		} else {
			cp := *v
			view.Votes[id] = &cp
		}
	}

	snapshot := &models.SessionSnapshot{
		Session:    view,
		Timestamp:  now,
		SequenceID: seq,
	}
	if !masked && len(session.Votes) > 0 {
		snapshot.Stats = ComputeVoteStats(session.Votes)
	}
	return snapshot
}
