package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"anonymous_voting_system/internal/db"
	"anonymous_voting_system/internal/db/models"

	"go.uber.org/zap"
)

// fakeStore backs the in-memory repository fakes with the same locking shape
// as the real database: a row lock acquired by the for-update lookup and
// held until the transaction ends, and writes that are undone on rollback.
// This is what lets the concurrency tests exercise real interleavings.
type fakeStore struct {
	mu      sync.Mutex
	rowLock sync.Mutex

	nextRightID int64
	rights      map[int64]*models.VotingRight
	ballots     map[string]*models.Ballot
	topics      map[int64]*models.Topic

	beginErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rights:  make(map[int64]*models.VotingRight),
		ballots: make(map[string]*models.Ballot),
		topics:  make(map[int64]*models.Topic),
	}
}

func (s *fakeStore) addTopic(topic *models.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics[topic.ID] = topic
}

func (s *fakeStore) ballotCount(topicID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, ballot := range s.ballots {
		if ballot.TopicID == topicID {
			count++
		}
	}
	return count
}

func (s *fakeStore) right(id int64) models.VotingRight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.rights[id]
}

type fakeTx struct {
	store  *fakeStore
	locked bool
	undos  []func()
	done   bool
}

func (t *fakeTx) finish(rollback bool) error {
	if t.done {
		return errors.New("transaction already finished")
	}
	t.done = true

	if rollback {
		t.store.mu.Lock()
		for i := len(t.undos) - 1; i >= 0; i-- {
			t.undos[i]()
		}
		t.store.mu.Unlock()
	}

	if t.locked {
		t.store.rowLock.Unlock()
	}

	return nil
}

func (t *fakeTx) Commit() error   { return t.finish(false) }
func (t *fakeTx) Rollback() error { return t.finish(true) }

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Begin(ctx context.Context) (db.Tx, error) {
	if m.store.beginErr != nil {
		return nil, m.store.beginErr
	}
	return &fakeTx{store: m.store}, nil
}

type fakeVotingRightRepository struct {
	store      *fakeStore
	consumeErr error
}

func (r *fakeVotingRightRepository) Create(request *models.VotingRight) (*models.VotingRight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, right := range r.store.rights {
		if right.UserID == request.UserID && right.TopicID == request.TopicID {
			return nil, errors.New("duplicate key value violates unique constraint")
		}
		if right.SecretHash == request.SecretHash {
			return nil, errors.New("duplicate key value violates unique constraint")
		}
	}

	r.store.nextRightID++
	request.ID = r.store.nextRightID
	request.CreatedAt = time.Now()
	r.store.rights[request.ID] = request

	copied := *request
	return &copied, nil
}

func (r *fakeVotingRightRepository) GetOneByUserAndTopic(userID, topicID int64) (*models.VotingRight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, right := range r.store.rights {
		if right.UserID == userID && right.TopicID == topicID {
			copied := *right
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeVotingRightRepository) GetOneBySecretHashForUpdate(ctx context.Context, tx db.Tx, secretHash string) (*models.VotingRight, error) {
	ftx := tx.(*fakeTx)
	ftx.store.rowLock.Lock()
	ftx.locked = true

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, right := range r.store.rights {
		if right.SecretHash == secretHash {
			copied := *right
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeVotingRightRepository) Consume(ctx context.Context, tx db.Tx, rightID int64, consumedAt time.Time) (bool, error) {
	if r.consumeErr != nil {
		return false, r.consumeErr
	}

	ftx := tx.(*fakeTx)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	right, ok := r.store.rights[rightID]
	if !ok || right.Consumed || !consumedAt.Before(right.ExpiresAt) {
		return false, nil
	}

	previous := *right
	right.Consumed = true
	at := consumedAt
	right.ConsumedAt = &at

	ftx.undos = append(ftx.undos, func() {
		restored := previous
		r.store.rights[rightID] = &restored
	})

	return true, nil
}

func (r *fakeVotingRightRepository) CountConsumedByTopic(topicID int64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	count := 0
	for _, right := range r.store.rights {
		if right.TopicID == topicID && right.Consumed {
			count++
		}
	}
	return count, nil
}

func (r *fakeVotingRightRepository) GetManyConsumedByTopic(topicID int64) ([]*models.VotingRight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rights := make([]*models.VotingRight, 0)
	for _, right := range r.store.rights {
		if right.TopicID == topicID && right.Consumed {
			copied := *right
			rights = append(rights, &copied)
		}
	}
	return rights, nil
}

func (r *fakeVotingRightRepository) RevokeUnconsumed(topicID int64, now time.Time) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	count := 0
	for _, right := range r.store.rights {
		if right.TopicID == topicID && !right.Consumed && right.ExpiresAt.After(now) {
			right.ExpiresAt = now
			count++
		}
	}
	return count, nil
}

type fakeBallotRepository struct {
	store      *fakeStore
	createErr  error
	topicReads int
}

func (r *fakeBallotRepository) CreateTx(ctx context.Context, tx db.Tx, ballot *models.Ballot) error {
	if r.createErr != nil {
		return r.createErr
	}

	ftx := tx.(*fakeTx)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.ballots[ballot.ContentHash]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}

	copied := *ballot
	r.store.ballots[ballot.ContentHash] = &copied

	hash := ballot.ContentHash
	ftx.undos = append(ftx.undos, func() {
		delete(r.store.ballots, hash)
	})

	return nil
}

func (r *fakeBallotRepository) GetManyByTopic(topicID int64) ([]*models.Ballot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.topicReads++

	ballots := make([]*models.Ballot, 0)
	for _, ballot := range r.store.ballots {
		if ballot.TopicID == topicID {
			copied := *ballot
			ballots = append(ballots, &copied)
		}
	}
	return ballots, nil
}

func (r *fakeBallotRepository) CountByTopic(topicID int64) (int, error) {
	return r.store.ballotCount(topicID), nil
}

func (r *fakeBallotRepository) GetDuplicateHashes(topicID int64) ([]string, error) {
	return nil, nil
}

type fakeTopicRepository struct {
	store *fakeStore
}

func (r *fakeTopicRepository) GetOne(topicID int64) (*models.Topic, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	topic, ok := r.store.topics[topicID]
	if !ok {
		return nil, nil
	}
	copied := *topic
	return &copied, nil
}

func (r *fakeTopicRepository) GetMany() ([]*models.Topic, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	topics := make([]*models.Topic, 0)
	for _, topic := range r.store.topics {
		copied := *topic
		topics = append(topics, &copied)
	}
	return topics, nil
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *fakeCache) Set(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *fakeCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.invalidated = append(c.invalidated, key)
}

type allowAllAuthorizer struct{}

func (allowAllAuthorizer) CanVote(ctx context.Context, userID, topicID int64) (bool, error) {
	return true, nil
}

type failingEncryptor struct{}

func (failingEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	return nil, fmt.Errorf("cipher unavailable")
}

func (failingEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	return nil, fmt.Errorf("cipher unavailable")
}

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
