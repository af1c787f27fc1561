package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

func TestNewSession(t *testing.T) {
	session := models.NewSession("s1", "Sprint Planning", "u1")

	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, "Sprint Planning", session.Name)
	assert.Equal(t, "u1", session.ModeratorID)
	assert.Equal(t, models.PhaseVoting, session.Phase)
	assert.Empty(t, session.Participants)
	assert.Empty(t, session.WorkItems)
	assert.Empty(t, session.Votes)
	assert.Equal(t, models.DefaultCardDeck, session.Settings.CardDeck)
	assert.False(t, session.Settings.AutoReveal)
}

func TestSessionRemoveParticipant(t *testing.T) {
	session := models.NewSession("s1", "Test", "u1")
	session.Participants = append(session.Participants,
		models.NewParticipant(models.User{ID: "u1", Name: "Alice"}, models.RoleModerator),
		models.NewParticipant(models.User{ID: "u2", Name: "Bob"}, models.RoleVoter),
	)
	session.Votes["u2"] = models.NewVote("u2", models.VoteValue("5"))

	t.Run("removes participant and vote together", func(t *testing.T) {
		assert.True(t, session.RemoveParticipant("u2"))
		assert.Nil(t, session.Participant("u2"))
		assert.NotContains(t, session.Votes, "u2")
		assert.Len(t, session.Participants, 1)
	})

	t.Run("unknown participant is a no-op", func(t *testing.T) {
		assert.False(t, session.RemoveParticipant("nobody"))
		assert.Len(t, session.Participants, 1)
	})
}

func TestSessionClearVotes(t *testing.T) {
	session := models.NewSession("s1", "Test", "u1")
	alice := models.NewParticipant(models.User{ID: "u1", Name: "Alice"}, models.RoleModerator)
	alice.HasVoted = true
	session.Participants = append(session.Participants, alice)
	session.Votes["u1"] = models.NewVote("u1", models.VoteValue("3"))

	session.ClearVotes()

	assert.Empty(t, session.Votes)
	assert.False(t, alice.HasVoted)
}

func TestSessionAllVotersVoted(t *testing.T) {
	t.Run("false with no eligible voters", func(t *testing.T) {
		session := models.NewSession("s1", "Test", "u1")
		observer := models.NewParticipant(models.User{ID: "o1", Name: "Obs"}, models.RoleObserver)
		session.Participants = append(session.Participants, observer)

		assert.False(t, session.AllVotersVoted())
	})

	t.Run("false with partial votes", func(t *testing.T) {
		session := models.NewSession("s1", "Test", "u1")
		a := models.NewParticipant(models.User{ID: "a", Name: "A"}, models.RoleVoter)
		b := models.NewParticipant(models.User{ID: "b", Name: "B"}, models.RoleVoter)
		a.HasVoted = true
		session.Participants = append(session.Participants, a, b)

		assert.False(t, session.AllVotersVoted())
	})

	t.Run("observers and disconnected voters do not count", func(t *testing.T) {
		session := models.NewSession("s1", "Test", "u1")
		a := models.NewParticipant(models.User{ID: "a", Name: "A"}, models.RoleVoter)
		a.HasVoted = true
		gone := models.NewParticipant(models.User{ID: "g", Name: "G"}, models.RoleVoter)
		gone.Status = models.StatusDisconnected
		observer := models.NewParticipant(models.User{ID: "o", Name: "O"}, models.RoleObserver)
		session.Participants = append(session.Participants, a, gone, observer)

		assert.True(t, session.AllVotersVoted())
	})
}

func TestSessionIsModerator(t *testing.T) {
	session := models.NewSession("s1", "Test", "u1")
	session.Participants = append(session.Participants,
		models.NewParticipant(models.User{ID: "u1", Name: "Alice"}, models.RoleModerator),
		models.NewParticipant(models.User{ID: "u2", Name: "Bob"}, models.RoleVoter),
	)

	assert.True(t, session.IsModerator("u1"))
	assert.False(t, session.IsModerator("u2"))
	assert.False(t, session.IsModerator("unknown"))
}
