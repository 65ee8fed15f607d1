package main

import (
	"context"
	"time"

	"anonymous_voting_system/configs"
	"anonymous_voting_system/internal/db"
	"anonymous_voting_system/internal/db/models"
	"anonymous_voting_system/internal/db/repositories"
	"anonymous_voting_system/internal/di"
	"anonymous_voting_system/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadIntegrityAuditServiceConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	s.Cron(config.Audit.Schedule).Do(func() {
		logger.Info("initializing repositories and services")
		topicRepository := repositories.NewTopicRepository(database)
		votingRightRepository := repositories.NewVotingRightRepository(database)
		ballotRepository := repositories.NewBallotRepository(database)
		auditor := services.NewIntegrityAuditor(votingRightRepository, ballotRepository, logger)

		logger.Info("getting topics")
		topics, err := topicRepository.GetMany()
		if err != nil {
			logger.Errorw("failed to get topics", "error", err)
			return
		}

		reports := auditTopics(context.Background(), auditor, topics, logger)
		logger.Infow("integrity audit finished", "topics", len(topics), "reports", len(reports))

		now := time.Now().UTC()
		revoked := revokeExpiredRights(votingRightRepository, getTopicsPastDeadline(topics, now), now, logger)
		if revoked > 0 {
			logger.Infow("revocation sweep finished", "revoked", revoked)
		}
	})

	s.StartBlocking()
}

func auditTopics(
	ctx context.Context,
	auditor services.IntegrityAuditor,
	topics []*models.Topic,
	logger *zap.SugaredLogger,
) []*models.IntegrityReport {
	reports := make([]*models.IntegrityReport, 0, len(topics))

	for _, topic := range topics {
		report, err := auditor.VerifyIntegrity(ctx, topic.ID)
		if err != nil {
			logger.Errorw("failed to verify topic integrity", "topicID", topic.ID, "error", err)
			continue
		}

		if report.Valid {
			logger.Infow("topic passed integrity audit", "topicID", topic.ID, "ballots", report.BallotCount)
		} else {
			logger.Errorw("topic failed integrity audit", "topicID", topic.ID, "issues", report.Issues)
		}

		reports = append(reports, report)
	}

	return reports
}

func getTopicsPastDeadline(topics []*models.Topic, now time.Time) []*models.Topic {
	var pastDeadline []*models.Topic

	for _, topic := range topics {
		if topic.CanRevealResults(now) {
			pastDeadline = append(pastDeadline, topic)
		}
	}

	return pastDeadline
}

func revokeExpiredRights(
	votingRightRepository repositories.VotingRightRepository,
	topics []*models.Topic,
	now time.Time,
	logger *zap.SugaredLogger,
) int {
	total := 0

	for _, topic := range topics {
		count, err := votingRightRepository.RevokeUnconsumed(topic.ID, now)
		if err != nil {
			logger.Errorw("failed to revoke unconsumed rights", "topicID", topic.ID, "error", err)
			continue
		}

		total += count
	}

	return total
}
