package models

import "time"

// TallyResult is the aggregate outcome for one topic. Corrupted counts
// ballots that failed to decrypt or parse; they are excluded from Counts but
// never silently dropped.
type TallyResult struct {
	TopicID    int64          `json:"topic_id"`
	Counts     map[string]int `json:"counts"`
	Total      int            `json:"total"`
	Corrupted  int            `json:"corrupted"`
	ComputedAt time.Time      `json:"computed_at"`
}

type IntegrityIssue struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

const (
	IssueCountMismatch  = "count_mismatch"
	IssueDuplicateHash  = "duplicate_hash"
	IssueIdentityLeak   = "identity_leak"
	IssueMissingConsume = "missing_consumed_at"
)

// IntegrityReport is a read-only diagnostic. Valid is true iff Issues is
// empty.
type IntegrityReport struct {
	TopicID       int64            `json:"topic_id"`
	BallotCount   int              `json:"ballot_count"`
	ConsumedCount int              `json:"consumed_count"`
	Issues        []IntegrityIssue `json:"issues"`
	Valid         bool             `json:"valid"`
	CheckedAt     time.Time        `json:"checked_at"`
}
