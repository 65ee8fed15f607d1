package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	ChoiceYes = "yes"
	ChoiceNo  = "no"
)

// VotePayload is the structured content of a single vote, validated against
// the topic's declared ballot kind before it is encrypted. Exactly one of
// Choice and Ranking is set, depending on the kind.
type VotePayload struct {
	Kind    BallotKind `json:"kind"`
	Choice  string     `json:"choice,omitempty"`
	Ranking []string   `json:"ranking,omitempty"`
}

func (p VotePayload) Validate(topic *Topic) error {
	if p.Kind != topic.BallotKind {
		return fmt.Errorf("payload kind %q does not match topic ballot kind %q", p.Kind, topic.BallotKind)
	}

	switch p.Kind {
	case BallotKindYesNo:
		if p.Choice != ChoiceYes && p.Choice != ChoiceNo {
			return fmt.Errorf("yes/no ballot requires choice %q or %q", ChoiceYes, ChoiceNo)
		}
		if len(p.Ranking) > 0 {
			return errors.New("yes/no ballot must not carry a ranking")
		}
	case BallotKindMultipleChoice:
		if !topic.HasChoice(p.Choice) {
			return fmt.Errorf("choice %q is not declared by the topic", p.Choice)
		}
		if len(p.Ranking) > 0 {
			return errors.New("multiple-choice ballot must not carry a ranking")
		}
	case BallotKindPreferential:
		if p.Choice != "" {
			return errors.New("preferential ballot must not carry a single choice")
		}
		if len(p.Ranking) == 0 {
			return errors.New("preferential ballot requires a non-empty ranking")
		}
		seen := make(map[string]bool, len(p.Ranking))
		for _, choice := range p.Ranking {
			if !topic.HasChoice(choice) {
				return fmt.Errorf("ranked choice %q is not declared by the topic", choice)
			}
			if seen[choice] {
				return fmt.Errorf("ranked choice %q appears twice", choice)
			}
			seen[choice] = true
		}
	default:
		return fmt.Errorf("unknown ballot kind %q", p.Kind)
	}

	return nil
}

// LeadingChoice is the choice the payload counts toward in a tally: the
// single choice, or the first preference of a ranking.
func (p VotePayload) LeadingChoice() string {
	if p.Kind == BallotKindPreferential {
		return p.Ranking[0]
	}
	return p.Choice
}

func (p VotePayload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

func UnmarshalVotePayload(data []byte) (VotePayload, error) {
	var payload VotePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return VotePayload{}, err
	}
	return payload, nil
}
