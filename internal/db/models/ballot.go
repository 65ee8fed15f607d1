package models

import "time"

// Ballot is the identity-free half of a vote. It carries no reference to the
// user who cast it and no field a query could join back to one: its identity
// is a content hash, not a sequence number, so row order does not encode cast
// order. Keeping it that way is a schema invariant, re-checked structurally
// by the integrity auditor.
type Ballot struct {
	ID          string    `json:"id" pg:",pk,type:uuid"`
	TopicID     int64     `json:"topic_id" pg:",notnull"`
	Ciphertext  []byte    `json:"-" pg:",notnull"`
	ContentHash string    `json:"content_hash" pg:",notnull,unique"`
	CastAt      time.Time `json:"cast_at" pg:",notnull"`
}
