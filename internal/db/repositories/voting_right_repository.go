package repositories

import (
	"context"
	"errors"
	"time"

	"anonymous_voting_system/internal/db"
	"anonymous_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type votingRightRepository struct {
	repository
}

type VotingRightRepository interface {
	Create(request *models.VotingRight) (*models.VotingRight, error)
	GetOneByUserAndTopic(userID, topicID int64) (*models.VotingRight, error)
	// GetOneBySecretHashForUpdate loads a right inside the caller's unit of
	// work and row-locks it until the transaction ends.
	GetOneBySecretHashForUpdate(ctx context.Context, tx db.Tx, secretHash string) (*models.VotingRight, error)
	// Consume flips the right to consumed, guarded by "still unconsumed and
	// not expired". Returns false when another transaction won the race or
	// the right expired in the meantime.
	Consume(ctx context.Context, tx db.Tx, rightID int64, consumedAt time.Time) (bool, error)
	CountConsumedByTopic(topicID int64) (int, error)
	GetManyConsumedByTopic(topicID int64) ([]*models.VotingRight, error)
	RevokeUnconsumed(topicID int64, now time.Time) (int, error)
}

func NewVotingRightRepository(db *pg.DB) VotingRightRepository {
	return &votingRightRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *votingRightRepository) Create(request *models.VotingRight) (*models.VotingRight, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	right := &models.VotingRight{}

	err = r.db.Model(right).
		Where("id = ?", request.ID).
		Select()

	return right, err
}

func (r *votingRightRepository) GetOneByUserAndTopic(userID, topicID int64) (*models.VotingRight, error) {
	right := &models.VotingRight{}

	err := r.db.Model(right).
		Where("user_id = ?", userID).
		Where("topic_id = ?", topicID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return right, err
}

func (r *votingRightRepository) GetOneBySecretHashForUpdate(ctx context.Context, tx db.Tx, secretHash string) (*models.VotingRight, error) {
	right := &models.VotingRight{}

	err := db.ORM(tx).ModelContext(ctx, right).
		Where("secret_hash = ?", secretHash).
		For("UPDATE").
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return right, err
}

func (r *votingRightRepository) Consume(ctx context.Context, tx db.Tx, rightID int64, consumedAt time.Time) (bool, error) {
	result, err := db.ORM(tx).ModelContext(ctx, (*models.VotingRight)(nil)).
		Set("consumed = ?", true).
		Set("consumed_at = ?", consumedAt).
		Where("id = ?", rightID).
		Where("consumed = ?", false).
		Where("expires_at > ?", consumedAt).
		Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

func (r *votingRightRepository) CountConsumedByTopic(topicID int64) (int, error) {
	return r.db.Model((*models.VotingRight)(nil)).
		Where("topic_id = ?", topicID).
		Where("consumed = ?", true).
		Count()
}

func (r *votingRightRepository) GetManyConsumedByTopic(topicID int64) ([]*models.VotingRight, error) {
	rights := make([]*models.VotingRight, 0)

	err := r.db.Model(&rights).
		Where("topic_id = ?", topicID).
		Where("consumed = ?", true).
		Select()

	return rights, err
}

func (r *votingRightRepository) RevokeUnconsumed(topicID int64, now time.Time) (int, error) {
	result, err := r.db.Model((*models.VotingRight)(nil)).
		Set("expires_at = ?", now).
		Where("topic_id = ?", topicID).
		Where("consumed = ?", false).
		Where("expires_at > ?", now).
		Update()
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
