package repositories

import (
	"context"

	"anonymous_voting_system/internal/db"
	"anonymous_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type ballotRepository struct {
	repository
}

type BallotRepository interface {
	// CreateTx inserts a ballot inside the caller's unit of work, so the
	// insert commits or rolls back together with the token consumption.
	CreateTx(ctx context.Context, tx db.Tx, ballot *models.Ballot) error
	GetManyByTopic(topicID int64) ([]*models.Ballot, error)
	CountByTopic(topicID int64) (int, error)
	GetDuplicateHashes(topicID int64) ([]string, error)
}

func NewBallotRepository(db *pg.DB) BallotRepository {
	return &ballotRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *ballotRepository) CreateTx(ctx context.Context, tx db.Tx, ballot *models.Ballot) error {
	_, err := db.ORM(tx).ModelContext(ctx, ballot).Insert()
	return err
}

func (r *ballotRepository) GetManyByTopic(topicID int64) ([]*models.Ballot, error) {
	ballots := make([]*models.Ballot, 0)

	err := r.db.Model(&ballots).
		Where("topic_id = ?", topicID).
		OrderExpr("content_hash ASC").
		Select()

	return ballots, err
}

func (r *ballotRepository) CountByTopic(topicID int64) (int, error) {
	return r.db.Model((*models.Ballot)(nil)).
		Where("topic_id = ?", topicID).
		Count()
}

func (r *ballotRepository) GetDuplicateHashes(topicID int64) ([]string, error) {
	hashes := make([]string, 0)

	err := r.db.Model((*models.Ballot)(nil)).
		ColumnExpr("content_hash").
		Where("topic_id = ?", topicID).
		Group("content_hash").
		Having("count(*) > 1").
		Select(&hashes)

	return hashes, err
}
