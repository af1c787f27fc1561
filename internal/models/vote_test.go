package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

func TestVoteValueJSON(t *testing.T) {
	t.Run("numeric values encode as JSON numbers", func(t *testing.T) {
		data, err := json.Marshal(models.VoteValue("5"))
		require.NoError(t, err)
		assert.Equal(t, "5", string(data))

		data, err = json.Marshal(models.VoteValue("0.5"))
		require.NoError(t, err)
		assert.Equal(t, "0.5", string(data))
	})

	t.Run("tokens encode as strings", func(t *testing.T) {
		data, err := json.Marshal(models.VoteUnknown)
		require.NoError(t, err)
		assert.Equal(t, `"?"`, string(data))

		data, err = json.Marshal(models.VoteCoffee)
		require.NoError(t, err)
		assert.Equal(t, `"coffee"`, string(data))
	})

	t.Run("zero value encodes as null", func(t *testing.T) {
		data, err := json.Marshal(models.VoteValue(""))
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("decodes numbers, strings and null", func(t *testing.T) {
		var v models.VoteValue

		require.NoError(t, json.Unmarshal([]byte("8"), &v))
		assert.Equal(t, models.VoteValue("8"), v)

		require.NoError(t, json.Unmarshal([]byte(`"coffee"`), &v))
		assert.Equal(t, models.VoteCoffee, v)

		require.NoError(t, json.Unmarshal([]byte("null"), &v))
		assert.True(t, v.IsZero())
	})
}

func TestVoteValueNumeric(t *testing.T) {
	n, ok := models.VoteValue("13").Numeric()
	assert.True(t, ok)
	assert.Equal(t, 13.0, n)

	_, ok = models.VoteUnknown.Numeric()
	assert.False(t, ok)

	_, ok = models.VoteCoffee.Numeric()
	assert.False(t, ok)
}

func TestVoteMasked(t *testing.T) {
	vote := models.NewVote("u1", models.VoteValue("5"))
	masked := vote.Masked()

	assert.Equal(t, "u1", masked.UserID)
	assert.Equal(t, models.VoteHidden, masked.Value)
	assert.Equal(t, vote.Timestamp, masked.Timestamp)

	// Original is untouched
	assert.Equal(t, models.VoteValue("5"), vote.Value)
}
