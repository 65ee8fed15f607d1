package di

import (
	"anonymous_voting_system/configs"
	"anonymous_voting_system/internal/cache"
	"anonymous_voting_system/internal/db"
	"anonymous_voting_system/internal/db/repositories"
	"anonymous_voting_system/internal/services"
	"anonymous_voting_system/internal/votecrypt"
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(config configs.Logger) *zap.SugaredLogger {
	if config.URL == "" {
		return zap.Must(zap.NewProduction()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zap.NewProductionConfig())).Sugar()
}

// VotingCore bundles the four operations of the voting core for the caller
// (an API layer). The authorizer stays an injected collaborator.
type VotingCore struct {
	TokenIssuer      services.TokenIssuer
	BallotCaster     services.BallotCaster
	TallyEngine      services.TallyEngine
	IntegrityAuditor services.IntegrityAuditor
}

func NewVotingCore(
	config configs.VotingCoreConfig,
	database *pg.DB,
	authorizer services.Authorizer,
	logger *zap.SugaredLogger,
) (*VotingCore, error) {
	encryptor, err := votecrypt.NewEncryptor(config.Voting.VoteEncryptionKey)
	if err != nil {
		return nil, err
	}

	tallyCache := cache.NewMemoryCache(config.Voting.TallyCacheTTL)

	votingRightRepository := repositories.NewVotingRightRepository(database)
	ballotRepository := repositories.NewBallotRepository(database)
	topicRepository := repositories.NewTopicRepository(database)

	return &VotingCore{
		TokenIssuer: services.NewTokenIssuer(authorizer, votingRightRepository, topicRepository, logger),
		BallotCaster: services.NewBallotCaster(
			votingRightRepository,
			ballotRepository,
			topicRepository,
			db.NewTransactionManager(database),
			encryptor,
			tallyCache,
			config.Voting.CastVoteTimeout,
			logger,
		),
		TallyEngine: services.NewTallyEngine(
			ballotRepository,
			topicRepository,
			encryptor,
			tallyCache,
			config.Voting.TallyCacheTTL,
			logger,
		),
		IntegrityAuditor: services.NewIntegrityAuditor(votingRightRepository, ballotRepository, logger),
	}, nil
}
