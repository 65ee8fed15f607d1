package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"anonymous_voting_system/internal/cache"
	"anonymous_voting_system/internal/db/models"
	"anonymous_voting_system/internal/db/repositories"
	"anonymous_voting_system/internal/votecrypt"

	"go.uber.org/zap"
)

type tallyEngine struct {
	ballots   repositories.BallotRepository
	topics    repositories.TopicRepository
	encryptor votecrypt.Encryptor
	cache     cache.Cache
	cacheTTL  time.Duration
	logger    *zap.SugaredLogger
	now       func() time.Time
}

type TallyEngine interface {
	// GetResults aggregates the topic's ballots once the reveal condition
	// is met. Ballots that fail to decrypt or parse are counted as
	// corrupted, never silently dropped. Results are cached with a bounded
	// TTL; a successful cast invalidates the cache.
	GetResults(ctx context.Context, topicID int64) (*models.TallyResult, error)
}

func NewTallyEngine(
	ballots repositories.BallotRepository,
	topics repositories.TopicRepository,
	encryptor votecrypt.Encryptor,
	tallyCache cache.Cache,
	cacheTTL time.Duration,
	logger *zap.SugaredLogger,
) TallyEngine {
	return &tallyEngine{
		ballots:   ballots,
		topics:    topics,
		encryptor: encryptor,
		cache:     tallyCache,
		cacheTTL:  cacheTTL,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *tallyEngine) GetResults(ctx context.Context, topicID int64) (*models.TallyResult, error) {
	topic, err := s.topics.GetOne(topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	if !topic.CanRevealResults(s.now().UTC()) {
		return nil, ErrResultsNotYetAvailable
	}

	if data, found := s.cache.Get(cache.TallyKey(topicID)); found {
		result := &models.TallyResult{}
		if err := json.Unmarshal(data, result); err == nil {
			return result, nil
		}
		s.cache.Invalidate(cache.TallyKey(topicID))
	}

	result, err := s.computeTally(topic)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		s.cache.Set(cache.TallyKey(topicID), data, s.cacheTTL)
	}

	return result, nil
}

func (s *tallyEngine) computeTally(topic *models.Topic) (*models.TallyResult, error) {
	ballots, err := s.ballots.GetManyByTopic(topic.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	result := &models.TallyResult{
		TopicID:    topic.ID,
		Counts:     make(map[string]int),
		ComputedAt: s.now().UTC(),
	}

	for _, ballot := range ballots {
		plaintext, err := s.encryptor.Decrypt(ballot.Ciphertext)
		if err != nil {
			s.logger.Errorw("ballot failed to decrypt", "topicID", topic.ID, "contentHash", ballot.ContentHash)
			result.Corrupted++
			continue
		}

		payload, err := models.UnmarshalVotePayload(plaintext)
		if err != nil || payload.Validate(topic) != nil {
			s.logger.Errorw("ballot payload is malformed", "topicID", topic.ID, "contentHash", ballot.ContentHash)
			result.Corrupted++
			continue
		}

		result.Counts[payload.LeadingChoice()]++
		result.Total++
	}

	return result, nil
}
