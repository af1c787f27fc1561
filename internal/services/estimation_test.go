package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
	"github.com/RachitaModiTR/PlanPoker/internal/services"
)

func votes(values ...models.VoteValue) map[string]*models.Vote {
	m := make(map[string]*models.Vote, len(values))
	for i, v := range values {
		id := string(rune('a' + i))
		m[id] = models.NewVote(id, v)
	}
	return m
}

func TestNumericVotes(t *testing.T) {
	nums := services.NumericVotes(votes("8", "3", "?", "coffee", "5"))
	assert.Equal(t, []float64{3, 5, 8}, nums)

	assert.Empty(t, services.NumericVotes(votes("?", "coffee")))
}

func TestAverage(t *testing.T) {
	avg := services.Average([]float64{1, 2, 5})
	require.NotNil(t, avg)
	assert.Equal(t, 2.7, *avg, "rounded to one decimal place")

	assert.Nil(t, services.Average(nil))
}

func TestMedian(t *testing.T) {
	t.Run("odd count", func(t *testing.T) {
		m := services.Median([]float64{1, 3, 8})
		require.NotNil(t, m)
		assert.Equal(t, 3.0, *m)
	})

	t.Run("even count averages the middle pair", func(t *testing.T) {
		m := services.Median([]float64{1, 3, 5, 8})
		require.NotNil(t, m)
		assert.Equal(t, 4.0, *m)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, services.Median(nil))
	})
}

func TestDetectConsensus(t *testing.T) {
	assert.True(t, services.DetectConsensus([]float64{5, 5, 5, 5}))
	assert.True(t, services.DetectConsensus([]float64{5, 5, 5, 8}), "75% beats the 70% threshold")
	assert.False(t, services.DetectConsensus([]float64{5, 5, 8, 8}))
	assert.False(t, services.DetectConsensus(nil))
}

func TestOutliers(t *testing.T) {
	t.Run("disagreement yields min and max", func(t *testing.T) {
		min, max, has := services.Outliers([]float64{2, 5, 13})
		require.True(t, has)
		assert.Equal(t, 2.0, *min)
		assert.Equal(t, 13.0, *max)
	})

	t.Run("unanimous votes have no outliers", func(t *testing.T) {
		_, _, has := services.Outliers([]float64{5, 5, 5})
		assert.False(t, has)
	})

	t.Run("fewer than two votes have no outliers", func(t *testing.T) {
		_, _, has := services.Outliers([]float64{5})
		assert.False(t, has)
	})
}

func TestComputeVoteStats(t *testing.T) {
	stats := services.ComputeVoteStats(votes("5", "5", "8", "?"))

	require.NotNil(t, stats.Average)
	assert.Equal(t, 6.0, *stats.Average)
	require.NotNil(t, stats.Median)
	assert.Equal(t, 5.0, *stats.Median)
	assert.False(t, stats.Consensus)
	assert.True(t, stats.HasOutliers)
	assert.Equal(t, 5.0, *stats.Min)
	assert.Equal(t, 8.0, *stats.Max)
}
