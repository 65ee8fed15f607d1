package services

import "errors"

// Failure taxonomy of the voting core. Each error is terminal for the
// operation that raised it; a store or encryption failure may be retried by
// the caller, the others are final. ErrInvalidToken deliberately carries no
// detail about why the lookup failed, so a guessed token learns nothing.
var (
	ErrAlreadyIssued          = errors.New("voting right already issued for this user and topic")
	ErrInvalidToken           = errors.New("invalid voting token")
	ErrTokenExpiredOrConsumed = errors.New("voting token is expired or already consumed")
	ErrVotingClosed           = errors.New("voting is not open for this topic")
	ErrResultsNotYetAvailable = errors.New("results are not yet available for this topic")
	ErrEncryptionFailure      = errors.New("vote encryption failed")
	ErrStoreFailure           = errors.New("store operation failed")
	ErrNotAuthorized          = errors.New("user is not authorized to vote on this topic")
	ErrTopicNotFound          = errors.New("topic not found")
	ErrInvalidVote            = errors.New("vote payload is invalid")
)
