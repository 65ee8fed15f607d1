package repositories

import (
	"errors"

	"anonymous_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type topicRepository struct {
	repository
}

type TopicRepository interface {
	GetOne(topicID int64) (*models.Topic, error)
	GetMany() ([]*models.Topic, error)
}

func NewTopicRepository(db *pg.DB) TopicRepository {
	return &topicRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *topicRepository) GetOne(topicID int64) (*models.Topic, error) {
	topic := &models.Topic{}

	err := r.db.Model(topic).
		Where("id = ?", topicID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return topic, err
}

func (r *topicRepository) GetMany() ([]*models.Topic, error) {
	topics := make([]*models.Topic, 0)

	err := r.db.Model(&topics).
		OrderExpr("created_at ASC").
		Select()

	return topics, err
}
