package models

import "time"

type BallotKind string

const (
	BallotKindYesNo          BallotKind = "yes_no"
	BallotKindMultipleChoice BallotKind = "multiple_choice"
	BallotKindPreferential   BallotKind = "preferential"
)

func (k BallotKind) String() string {
	return string(k)
}

type Topic struct {
	ID               int64      `json:"id" pg:",pk"`
	Title            string     `json:"title" pg:",notnull"`
	BallotKind       BallotKind `json:"ballot_kind" pg:"type:BallotKind,notnull"`
	Choices          []string   `json:"choices" pg:",array"`
	VotingOpensAt    time.Time  `json:"voting_opens_at" pg:",notnull"`
	VotingDeadlineAt time.Time  `json:"voting_deadline_at" pg:",notnull"`
	ClosedEarly      bool       `json:"closed_early" pg:",notnull,use_zero"`
	CreatedAt        time.Time  `json:"created_at" pg:"default:now()"`
}

// IsVotingOpen reports whether a vote may be cast at the given instant.
func (t *Topic) IsVotingOpen(now time.Time) bool {
	if t.ClosedEarly {
		return false
	}

	return !now.Before(t.VotingOpensAt) && now.Before(t.VotingDeadlineAt)
}

// CanRevealResults reports whether aggregate results may be computed. Results
// stay sealed while the voting window is still open.
func (t *Topic) CanRevealResults(now time.Time) bool {
	return t.ClosedEarly || !now.Before(t.VotingDeadlineAt)
}

// HasChoice reports whether the topic declares the given choice.
func (t *Topic) HasChoice(choice string) bool {
	for _, c := range t.Choices {
		if c == choice {
			return true
		}
	}
	return false
}
