package configs

import (
	"fmt"
	"github.com/caarlos0/env/v6"
)

type VotingCoreConfig struct {
	App    App
	Logger Logger
	DB     DB
	Voting Voting
}

func LoadVotingCoreConfig() (VotingCoreConfig, error) {
	var config VotingCoreConfig

	if err := env.Parse(&config); err != nil {
		return VotingCoreConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type IntegrityAuditServiceConfig struct {
	App    App
	Logger Logger
	DB     DB
	Audit  Audit
}

func LoadIntegrityAuditServiceConfig() (IntegrityAuditServiceConfig, error) {
	var config IntegrityAuditServiceConfig

	if err := env.Parse(&config); err != nil {
		return IntegrityAuditServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
