package models

import "time"

// VotingRight is the identity-bound half of a vote: one single-use permission
// for one user to vote on one topic. Only the one-way hash of the secret the
// voter holds is stored; the secret itself is returned once at issuance and
// cannot be recovered from this record.
type VotingRight struct {
	ID         int64      `json:"id" pg:",pk"`
	UserID     int64      `json:"user_id" pg:",notnull,unique:user_topic"`
	TopicID    int64      `json:"topic_id" pg:",notnull,unique:user_topic"`
	SecretHash string     `json:"-" pg:",notnull,unique"`
	Consumed   bool       `json:"consumed" pg:",notnull,use_zero"`
	ConsumedAt *time.Time `json:"consumed_at"`
	ExpiresAt  time.Time  `json:"expires_at" pg:",notnull"`
	CreatedAt  time.Time  `json:"created_at" pg:"default:now()"`

	User  *User  `json:"-" pg:"rel:has-one"`
	Topic *Topic `json:"-" pg:"rel:has-one"`
}

// IsUsable reports whether the right can still be consumed at the given
// instant. The authoritative check happens inside the casting transaction;
// this is the same predicate evaluated in memory.
func (r *VotingRight) IsUsable(now time.Time) bool {
	return !r.Consumed && now.Before(r.ExpiresAt)
}
