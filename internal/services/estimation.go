package services

import (
	"math"
	"sort"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

// ConsensusThresholdPercent is the modal share of numeric votes above
// which a round counts as consensus.
const ConsensusThresholdPercent = 70.0

// NumericVotes filters the numeric votes out of a vote set and returns
// them sorted ascending. Tokens like "?" and "coffee" are skipped.
func NumericVotes(votes map[string]*models.Vote) []float64 {
	var nums []float64
	for _, v := range votes {
		if n, ok := v.Value.Numeric(); ok {
			nums = append(nums, n)
		}
	}
	sort.Float64s(nums)
	return nums
}

// Average returns the arithmetic mean rounded to one decimal place, or
// nil when there are no numeric votes.
func Average(nums []float64) *float64 {
	if len(nums) == 0 {
		return nil
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	avg := math.Round(sum/float64(len(nums))*10) / 10
	return &avg
}

// Median returns the median numeric vote, or nil when there are none.
// Expects nums sorted ascending.
func Median(nums []float64) *float64 {
	if len(nums) == 0 {
		return nil
	}
	mid := len(nums) / 2
	if len(nums)%2 != 0 {
		return &nums[mid]
	}
	m := (nums[mid-1] + nums[mid]) / 2
	return &m
}

// DetectConsensus reports whether the most common numeric vote makes up
// more than the threshold share of all numeric votes.
func DetectConsensus(nums []float64) bool {
	if len(nums) == 0 {
		return false
	}
	counts := make(map[float64]int)
	maxCount := 0
	for _, n := range nums {
		counts[n]++
		if counts[n] > maxCount {
			maxCount = counts[n]
		}
	}
	return float64(maxCount)/float64(len(nums))*100 > ConsensusThresholdPercent
}

// Outliers returns the min and max numeric votes when there is
// disagreement. With fewer than two votes, or all votes equal, there are
// no outliers. Expects nums sorted ascending.
func Outliers(nums []float64) (min, max *float64, has bool) {
	if len(nums) < 2 {
		return nil, nil, false
	}
	lo, hi := nums[0], nums[len(nums)-1]
	if lo == hi {
		return nil, nil, false
	}
	return &lo, &hi, true
}

// ComputeVoteStats summarizes a revealed round's votes.
func ComputeVoteStats(votes map[string]*models.Vote) *models.VoteStats {
	nums := NumericVotes(votes)
	min, max, hasOutliers := Outliers(nums)
	return &models.VoteStats{
		Average:     Average(nums),
		Median:      Median(nums),
		Consensus:   DetectConsensus(nums),
		Min:         min,
		Max:         max,
		HasOutliers: hasOutliers,
	}
}
