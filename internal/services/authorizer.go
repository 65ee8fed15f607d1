package services

import "context"

// Authorizer is the external eligibility check consulted before a voting
// right is issued. Role and permission management live outside this core.
type Authorizer interface {
	CanVote(ctx context.Context, userID, topicID int64) (bool, error)
}
