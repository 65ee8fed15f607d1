package services

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"anonymous_voting_system/internal/db/models"
	"anonymous_voting_system/internal/db/repositories"

	"go.uber.org/zap"
)

// identityMarkers are field-name fragments that would indicate an
// identity-shaped column on a ballot record.
var identityMarkers = []string{
	"user", "voter", "owner", "identity", "account", "member", "telegram", "email", "name",
}

type integrityAuditor struct {
	votingRights repositories.VotingRightRepository
	ballots      repositories.BallotRepository
	logger       *zap.SugaredLogger
	now          func() time.Time
}

type IntegrityAuditor interface {
	// VerifyIntegrity cross-checks the two stores for one topic: consumed
	// rights must equal ballots, ballot hashes must be unique, consumed
	// rights must carry a consumption timestamp, and no ballot record may
	// expose an identity-shaped field. Read-only; it never repairs.
	VerifyIntegrity(ctx context.Context, topicID int64) (*models.IntegrityReport, error)
}

func NewIntegrityAuditor(
	votingRights repositories.VotingRightRepository,
	ballots repositories.BallotRepository,
	logger *zap.SugaredLogger,
) IntegrityAuditor {
	return &integrityAuditor{
		votingRights: votingRights,
		ballots:      ballots,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *integrityAuditor) VerifyIntegrity(ctx context.Context, topicID int64) (*models.IntegrityReport, error) {
	report := &models.IntegrityReport{
		TopicID:   topicID,
		Issues:    make([]models.IntegrityIssue, 0),
		CheckedAt: s.now().UTC(),
	}

	ballotCount, err := s.ballots.CountByTopic(topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	report.BallotCount = ballotCount

	consumedCount, err := s.votingRights.CountConsumedByTopic(topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	report.ConsumedCount = consumedCount

	if ballotCount != consumedCount {
		report.Issues = append(report.Issues, models.IntegrityIssue{
			Code:   models.IssueCountMismatch,
			Detail: fmt.Sprintf("%d consumed rights but %d ballots", consumedCount, ballotCount),
		})
	}

	duplicates, err := s.ballots.GetDuplicateHashes(topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	for _, hash := range duplicates {
		report.Issues = append(report.Issues, models.IntegrityIssue{
			Code:   models.IssueDuplicateHash,
			Detail: fmt.Sprintf("content hash %s appears more than once", hash),
		})
	}

	consumedRights, err := s.votingRights.GetManyConsumedByTopic(topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	for _, right := range consumedRights {
		if right.ConsumedAt == nil {
			report.Issues = append(report.Issues, models.IntegrityIssue{
				Code:   models.IssueMissingConsume,
				Detail: fmt.Sprintf("right %d is consumed but has no consumption timestamp", right.ID),
			})
		}
	}

	report.Issues = append(report.Issues, scanBallotRecordForIdentityFields()...)

	report.Valid = len(report.Issues) == 0

	return report, nil
}

// scanBallotRecordForIdentityFields checks both the ballot struct and its
// serialized form for identity-shaped fields. The ballot schema has no user
// reference; this guards against one being added later.
func scanBallotRecordForIdentityFields() []models.IntegrityIssue {
	issues := make([]models.IntegrityIssue, 0)

	ballotType := reflect.TypeOf(models.Ballot{})
	for i := 0; i < ballotType.NumField(); i++ {
		if marker := matchIdentityMarker(ballotType.Field(i).Name); marker != "" {
			issues = append(issues, models.IntegrityIssue{
				Code:   models.IssueIdentityLeak,
				Detail: fmt.Sprintf("ballot field %q matches identity marker %q", ballotType.Field(i).Name, marker),
			})
		}
	}

	serialized, err := json.Marshal(models.Ballot{})
	if err != nil {
		return issues
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(serialized, &record); err != nil {
		return issues
	}

	for key := range record {
		if marker := matchIdentityMarker(key); marker != "" {
			issues = append(issues, models.IntegrityIssue{
				Code:   models.IssueIdentityLeak,
				Detail: fmt.Sprintf("serialized ballot key %q matches identity marker %q", key, marker),
			})
		}
	}

	return issues
}

func matchIdentityMarker(field string) string {
	lowered := strings.ToLower(field)
	for _, marker := range identityMarkers {
		if strings.Contains(lowered, marker) {
			return marker
		}
	}
	return ""
}
