package services

import (
	"context"
	"testing"
	"time"

	"anonymous_voting_system/internal/db/models"
	mock_repositories "anonymous_voting_system/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func consumedRight(id int64, at time.Time) *models.VotingRight {
	return &models.VotingRight{
		ID:         id,
		Consumed:   true,
		ConsumedAt: &at,
	}
}

func TestVerifyIntegrity_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rightsRepo := mock_repositories.NewMockVotingRightRepository(ctrl)
	ballotRepo := mock_repositories.NewMockBallotRepository(ctrl)

	now := time.Now().UTC()
	ballotRepo.EXPECT().CountByTopic(int64(7)).Return(2, nil)
	rightsRepo.EXPECT().CountConsumedByTopic(int64(7)).Return(2, nil)
	ballotRepo.EXPECT().GetDuplicateHashes(int64(7)).Return(nil, nil)
	rightsRepo.EXPECT().GetManyConsumedByTopic(int64(7)).Return([]*models.VotingRight{
		consumedRight(1, now),
		consumedRight(2, now),
	}, nil)

	auditor := NewIntegrityAuditor(rightsRepo, ballotRepo, nopLogger())
	report, err := auditor.VerifyIntegrity(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
	assert.Equal(t, 2, report.BallotCount)
	assert.Equal(t, 2, report.ConsumedCount)
}

func TestVerifyIntegrity_CountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rightsRepo := mock_repositories.NewMockVotingRightRepository(ctrl)
	ballotRepo := mock_repositories.NewMockBallotRepository(ctrl)

	ballotRepo.EXPECT().CountByTopic(int64(7)).Return(3, nil)
	rightsRepo.EXPECT().CountConsumedByTopic(int64(7)).Return(2, nil)
	ballotRepo.EXPECT().GetDuplicateHashes(int64(7)).Return(nil, nil)
	rightsRepo.EXPECT().GetManyConsumedByTopic(int64(7)).Return(nil, nil)

	auditor := NewIntegrityAuditor(rightsRepo, ballotRepo, nopLogger())
	report, err := auditor.VerifyIntegrity(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, models.IssueCountMismatch, report.Issues[0].Code)
}

func TestVerifyIntegrity_DuplicateHashes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rightsRepo := mock_repositories.NewMockVotingRightRepository(ctrl)
	ballotRepo := mock_repositories.NewMockBallotRepository(ctrl)

	ballotRepo.EXPECT().CountByTopic(int64(7)).Return(2, nil)
	rightsRepo.EXPECT().CountConsumedByTopic(int64(7)).Return(2, nil)
	ballotRepo.EXPECT().GetDuplicateHashes(int64(7)).Return([]string{"abc123"}, nil)
	rightsRepo.EXPECT().GetManyConsumedByTopic(int64(7)).Return(nil, nil)

	auditor := NewIntegrityAuditor(rightsRepo, ballotRepo, nopLogger())
	report, err := auditor.VerifyIntegrity(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, models.IssueDuplicateHash, report.Issues[0].Code)
	assert.Contains(t, report.Issues[0].Detail, "abc123")
}

func TestVerifyIntegrity_ConsumedRightWithoutTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rightsRepo := mock_repositories.NewMockVotingRightRepository(ctrl)
	ballotRepo := mock_repositories.NewMockBallotRepository(ctrl)

	ballotRepo.EXPECT().CountByTopic(int64(7)).Return(1, nil)
	rightsRepo.EXPECT().CountConsumedByTopic(int64(7)).Return(1, nil)
	ballotRepo.EXPECT().GetDuplicateHashes(int64(7)).Return(nil, nil)
	rightsRepo.EXPECT().GetManyConsumedByTopic(int64(7)).Return([]*models.VotingRight{
		{ID: 5, Consumed: true},
	}, nil)

	auditor := NewIntegrityAuditor(rightsRepo, ballotRepo, nopLogger())
	report, err := auditor.VerifyIntegrity(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, models.IssueMissingConsume, report.Issues[0].Code)
}

func TestVerifyIntegrity_ConservationAfterCasting(t *testing.T) {
	env := newCasterEnv(t)
	env.addOpenYesNoTopic(9)

	first := env.issue(t, 1, 9, nil)
	second := env.issue(t, 2, 9, nil)

	_, err := env.caster.CastVote(context.Background(), first.Secret, noVote())
	require.NoError(t, err)
	_, err = env.caster.CastVote(context.Background(), second.Secret, noVote())
	require.NoError(t, err)

	auditor := NewIntegrityAuditor(env.rights, env.ballots, nopLogger())
	report, err := auditor.VerifyIntegrity(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, report.ConsumedCount, report.BallotCount)
}

// The ballot record must not grow an identity-shaped field, in the struct or
// its serialized form.
func TestBallotRecordCarriesNoIdentityFields(t *testing.T) {
	assert.Empty(t, scanBallotRecordForIdentityFields())
}
