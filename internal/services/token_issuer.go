package services

import (
	"context"
	"fmt"
	"time"

	"anonymous_voting_system/internal/db/models"
	"anonymous_voting_system/internal/db/repositories"
	"anonymous_voting_system/internal/votecrypt"

	"go.uber.org/zap"
)

// IssuedRight pairs a freshly issued right with the one-time secret handed
// to the voter. The secret is never persisted; losing it is terminal for the
// right.
type IssuedRight struct {
	Secret string
	Right  *models.VotingRight
}

type tokenIssuer struct {
	authorizer   Authorizer
	votingRights repositories.VotingRightRepository
	topics       repositories.TopicRepository
	logger       *zap.SugaredLogger
	now          func() time.Time
}

type TokenIssuer interface {
	// IssueVotingRight creates the single voting right for (user, topic).
	// expiresAt overrides the default expiry (the topic's voting deadline).
	IssueVotingRight(ctx context.Context, userID, topicID int64, expiresAt *time.Time) (*IssuedRight, error)
	// RevokeUnconsumed expires every still-unconsumed right for the topic
	// and reports how many were revoked. Consumed rights and ballots are
	// never touched.
	RevokeUnconsumed(ctx context.Context, topicID int64) (int, error)
}

func NewTokenIssuer(
	authorizer Authorizer,
	votingRights repositories.VotingRightRepository,
	topics repositories.TopicRepository,
	logger *zap.SugaredLogger,
) TokenIssuer {
	return &tokenIssuer{
		authorizer:   authorizer,
		votingRights: votingRights,
		topics:       topics,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *tokenIssuer) IssueVotingRight(ctx context.Context, userID, topicID int64, expiresAt *time.Time) (*IssuedRight, error) {
	allowed, err := s.authorizer.CanVote(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: authorization check: %v", ErrStoreFailure, err)
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	topic, err := s.topics.GetOne(topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	existing, err := s.votingRights.GetOneByUserAndTopic(userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if existing != nil {
		return nil, ErrAlreadyIssued
	}

	secret, err := votecrypt.GenerateTokenSecret()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	expiry := topic.VotingDeadlineAt
	if expiresAt != nil {
		expiry = *expiresAt
	}

	right, err := s.votingRights.Create(&models.VotingRight{
		UserID:     userID,
		TopicID:    topicID,
		SecretHash: votecrypt.HashToken(secret),
		ExpiresAt:  expiry,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	s.logger.Infow("voting right issued", "topicID", topicID, "expiresAt", expiry)

	return &IssuedRight{
		Secret: secret,
		Right:  right,
	}, nil
}

func (s *tokenIssuer) RevokeUnconsumed(ctx context.Context, topicID int64) (int, error) {
	count, err := s.votingRights.RevokeUnconsumed(topicID, s.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	if count > 0 {
		s.logger.Infow("unconsumed voting rights revoked", "topicID", topicID, "count", count)
	}

	return count, nil
}
