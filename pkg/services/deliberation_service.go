package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/vote"
	"github.com/google/uuid"
)

// VoteTally summarizes the votes cast in a deliberation.
type VoteTally struct {
	Approve int
	Reject  int
	Abstain int
}

// DeliberationService manages council deliberations and their votes.
type DeliberationService struct {
	client *ent.Client
}

// NewDeliberationService creates a new DeliberationService.
func NewDeliberationService(client *ent.Client) *DeliberationService {
	return &DeliberationService{client: client}
}

// Open starts a deliberation. taskID may be empty for deliberations not
// tied to a task.
func (s *DeliberationService) Open(ctx context.Context, taskID, topic, openedBy string) (*ent.Deliberation, error) {
	if topic == "" {
		return nil, NewValidationError("topic", "topic is required")
	}
	if openedBy == "" {
		return nil, NewValidationError("opened_by", "opening agent is required")
	}

	create := s.client.Deliberation.Create().
		SetID(uuid.New().String()).
		SetTopic(topic).
		SetOpenedBy(openedBy)
	if taskID != "" {
		create.SetTaskID(taskID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		// One open deliberation per task, enforced by a partial unique index.
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: deliberation already open for task %s", ErrAlreadyExists, taskID)
		}
		return nil, fmt.Errorf("failed to open deliberation: %w", err)
	}
	return row, nil
}

// Get returns the deliberation by id.
func (s *DeliberationService) Get(ctx context.Context, id string) (*ent.Deliberation, error) {
	row, err := s.client.Deliberation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("deliberation %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deliberation %s: %w", id, err)
	}
	return row, nil
}

// ListOpen returns open deliberations, oldest first.
func (s *DeliberationService) ListOpen(ctx context.Context) ([]*ent.Deliberation, error) {
	rows, err := s.client.Deliberation.Query().
		Where(deliberation.StatusEQ(deliberation.StatusOpen)).
		Order(ent.Asc(deliberation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open deliberations: %w", err)
	}
	return rows, nil
}

// CastVote records one agent's vote. A second vote by the same agent in
// the same deliberation is rejected.
func (s *DeliberationService) CastVote(ctx context.Context, deliberationID, voterID, choice, rationale string) error {
	switch choice {
	case "approve", "reject", "abstain":
	default:
		return NewValidationError("choice", fmt.Sprintf("unknown choice %q", choice))
	}
	if voterID == "" {
		return NewValidationError("voter_id", "voter ID is required")
	}

	row, err := s.Get(ctx, deliberationID)
	if err != nil {
		return err
	}
	if row.Status != deliberation.StatusOpen {
		return fmt.Errorf("deliberation %s is %s: %w", deliberationID, row.Status, ErrInvalidInput)
	}

	create := s.client.Vote.Create().
		SetID(uuid.New().String()).
		SetDeliberationID(deliberationID).
		SetVoterID(voterID).
		SetChoice(vote.Choice(choice))
	if rationale != "" {
		create.SetRationale(rationale)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("vote by %s in %s: %w", voterID, deliberationID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to cast vote: %w", err)
	}
	return nil
}

// Tally counts the votes cast so far.
func (s *DeliberationService) Tally(ctx context.Context, deliberationID string) (*VoteTally, error) {
	rows, err := s.client.Vote.Query().
		Where(vote.DeliberationID(deliberationID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to tally deliberation %s: %w", deliberationID, err)
	}

	tally := &VoteTally{}
	for _, row := range rows {
		switch row.Choice {
		case vote.ChoiceApprove:
			tally.Approve++
		case vote.ChoiceReject:
			tally.Reject++
		case vote.ChoiceAbstain:
			tally.Abstain++
		}
	}
	return tally, nil
}

// Resolve closes an open deliberation with a resolution text. dismissed
// marks reviews dropped without a decision.
func (s *DeliberationService) Resolve(ctx context.Context, deliberationID, resolution string, dismissed bool) error {
	status := deliberation.StatusResolved
	if dismissed {
		status = deliberation.StatusDismissed
	}

	n, err := s.client.Deliberation.Update().
		Where(
			deliberation.ID(deliberationID),
			deliberation.StatusEQ(deliberation.StatusOpen),
		).
		SetStatus(status).
		SetResolution(resolution).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve deliberation %s: %w", deliberationID, err)
	}
	if n == 0 {
		row, err := s.Get(ctx, deliberationID)
		if err != nil {
			return err
		}
		return fmt.Errorf("deliberation %s is already %s: %w", deliberationID, row.Status, ErrConcurrentModification)
	}
	return nil
}
