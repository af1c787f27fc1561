package models

import "time"

// VoteStats summarizes the numeric votes of a revealed round.
type VoteStats struct {
	Average     *float64 `json:"average"`
	Median      *float64 `json:"median"`
	Consensus   bool     `json:"consensus"`
	Min         *float64 `json:"min"`
	Max         *float64 `json:"max"`
	HasOutliers bool     `json:"hasOutliers"`
}

// SessionSnapshot is the transport-ready projection of a session that is
// broadcast to every connected client. It is derived on demand, never
// stored. Stats is only populated while vote values are visible.
type SessionSnapshot struct {
	Session    *Session   `json:"session"`
	Timestamp  time.Time  `json:"timestamp"`
	SequenceID int64      `json:"sequenceId"`
	Stats      *VoteStats `json:"stats,omitempty"`
}
