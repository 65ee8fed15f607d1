package services

import (
	"context"
	"fmt"
	"time"

	"anonymous_voting_system/internal/cache"
	"anonymous_voting_system/internal/db"
	"anonymous_voting_system/internal/db/models"
	"anonymous_voting_system/internal/db/repositories"
	"anonymous_voting_system/internal/votecrypt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ballotCaster struct {
	votingRights repositories.VotingRightRepository
	ballots      repositories.BallotRepository
	topics       repositories.TopicRepository
	txm          db.TransactionManager
	encryptor    votecrypt.Encryptor
	cache        cache.Cache
	logger       *zap.SugaredLogger
	timeout      time.Duration
	now          func() time.Time
}

type BallotCaster interface {
	// CastVote exchanges a one-time token for exactly one stored ballot.
	// The token lookup, window check, ballot insert and token consumption
	// run in a single unit of work; on any failure nothing is persisted.
	// Under concurrent casts of the same token exactly one call succeeds
	// and the rest fail with ErrTokenExpiredOrConsumed.
	CastVote(ctx context.Context, presentedToken string, payload models.VotePayload) (*models.Ballot, error)
}

func NewBallotCaster(
	votingRights repositories.VotingRightRepository,
	ballots repositories.BallotRepository,
	topics repositories.TopicRepository,
	txm db.TransactionManager,
	encryptor votecrypt.Encryptor,
	tallyCache cache.Cache,
	timeout time.Duration,
	logger *zap.SugaredLogger,
) BallotCaster {
	return &ballotCaster{
		votingRights: votingRights,
		ballots:      ballots,
		topics:       topics,
		txm:          txm,
		encryptor:    encryptor,
		cache:        tallyCache,
		logger:       logger,
		timeout:      timeout,
		now:          time.Now,
	}
}

func (s *ballotCaster) CastVote(ctx context.Context, presentedToken string, payload models.VotePayload) (*models.Ballot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.txm.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrStoreFailure, err)
	}

	ballot, err := s.castVote(ctx, tx, presentedToken, payload)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			s.logger.Errorw("failed to roll back cast", "error", rollbackErr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrStoreFailure, err)
	}

	// The cache is not part of the transaction; a stale entry survives at
	// most until its TTL, and only if the process dies right here.
	s.cache.Invalidate(cache.TallyKey(ballot.TopicID))

	s.logger.Infow("ballot cast", "topicID", ballot.TopicID)

	return ballot, nil
}

func (s *ballotCaster) castVote(ctx context.Context, tx db.Tx, presentedToken string, payload models.VotePayload) (*models.Ballot, error) {
	// The row lock taken here is held until commit, so the consumed check
	// below and the conditional consume at the end form one critical
	// section.
	right, err := s.votingRights.GetOneBySecretHashForUpdate(ctx, tx, votecrypt.HashToken(presentedToken))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if right == nil {
		return nil, ErrInvalidToken
	}

	now := s.now().UTC()
	if !right.IsUsable(now) {
		return nil, ErrTokenExpiredOrConsumed
	}

	topic, err := s.topics.GetOne(right.TopicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	if !topic.IsVotingOpen(now) {
		return nil, ErrVotingClosed
	}

	if err := payload.Validate(topic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVote, err)
	}

	plaintext, err := payload.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	// The cipher sees only the payload and the server key. The token and
	// the user never feed it.
	ciphertext, err := s.encryptor.Encrypt(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	nonce, err := votecrypt.GenerateNonce()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	ballot := &models.Ballot{
		ID:          uuid.NewString(),
		TopicID:     topic.ID,
		Ciphertext:  ciphertext,
		ContentHash: votecrypt.ContentHash(topic.ID, ciphertext, nonce, now.UnixNano()),
		CastAt:      now,
	}

	if err := s.ballots.CreateTx(ctx, tx, ballot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	consumed, err := s.votingRights.Consume(ctx, tx, right.ID, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if !consumed {
		return nil, ErrTokenExpiredOrConsumed
	}

	return ballot, nil
}
