package models

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Special vote values that are always accepted regardless of deck.
const (
	VoteUnknown VoteValue = "?"
	VoteCoffee  VoteValue = "coffee"

	// VoteHidden is the opaque marker substituted for real values in
	// projected snapshots while the session is still voting.
	VoteHidden VoteValue = "hidden"
)

// VoteValue is a card value: a numeric point estimate or a special token
// such as "?" or "coffee". The zero value means "no value". On the wire,
// numeric values are encoded as JSON numbers, tokens as strings and the
// zero value as null, matching what clients send and expect back.
type VoteValue string

func (v VoteValue) IsZero() bool {
	return v == ""
}

// Numeric returns the value as a float64 when it is a point estimate.
func (v VoteValue) Numeric() (float64, bool) {
	n, err := strconv.ParseFloat(string(v), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func (v VoteValue) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	if n, ok := v.Numeric(); ok {
		return []byte(strconv.FormatFloat(n, 'f', -1, 64)), nil
	}
	return json.Marshal(string(v))
}

func (v *VoteValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = VoteValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = VoteValue(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// Vote is one participant's estimate for the active work item. It only
// exists as an entry in the session vote map; an empty value is never
// stored.
type Vote struct {
	UserID    string    `json:"userId"`
	Value     VoteValue `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

func NewVote(userID string, value VoteValue) *Vote {
	return &Vote{
		UserID:    userID,
		Value:     value,
		Timestamp: time.Now().UTC(),
	}
}

// Masked returns a copy safe to show while votes are secret: who voted
// and when stays visible, the value does not.
func (v *Vote) Masked() *Vote {
	return &Vote{
		UserID:    v.UserID,
		Value:     VoteHidden,
		Timestamp: v.Timestamp,
	}
}
