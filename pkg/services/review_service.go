package services

import (
	"context"
	"fmt"

	"github.com/agentium/agentium/ent"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/pkg/critic"
	"github.com/google/uuid"
)

// CriticReviewService persists critic verdicts and serves the critic
// directory. Critics are registered by specialty at construction; their
// completed-review counts come from the stored verdicts, so least-loaded
// selection survives restarts.
type CriticReviewService struct {
	client      *ent.Client
	bySpecialty map[critic.Type][]string
}

// NewCriticReviewService creates a service with the given specialty
// roster. The map values are critic agent ids.
func NewCriticReviewService(client *ent.Client, bySpecialty map[critic.Type][]string) *CriticReviewService {
	roster := make(map[critic.Type][]string, len(bySpecialty))
	for specialty, ids := range bySpecialty {
		roster[specialty] = append([]string(nil), ids...)
	}
	return &CriticReviewService{client: client, bySpecialty: roster}
}

// Available implements critic.Directory.
func (s *CriticReviewService) Available(ctx context.Context, specialty critic.Type) ([]*critic.CriticAgent, error) {
	ids := s.bySpecialty[specialty]
	out := make([]*critic.CriticAgent, 0, len(ids))
	for _, id := range ids {
		n, err := s.client.CriticReview.Query().
			Where(criticreview.CriticID(id)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count reviews of critic %s: %w", id, err)
		}
		out = append(out, &critic.CriticAgent{
			ID:               id,
			Specialty:        specialty,
			CompletedReviews: n,
		})
	}
	return out, nil
}

// RecordCompleted implements critic.Directory. Counts are derived from the
// stored reviews, so there is nothing to bump here.
func (s *CriticReviewService) RecordCompleted(_ context.Context, _ string) error {
	return nil
}

// Record persists one critic verdict.
func (s *CriticReviewService) Record(ctx context.Context, taskID string, criticType critic.Type, submissionHash string, attempt int, review *critic.Review) error {
	if taskID == "" {
		return NewValidationError("task_id", "task ID is required")
	}
	if review == nil {
		return NewValidationError("review", "review is required")
	}

	create := s.client.CriticReview.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetCriticID(review.CriticID).
		SetCriticType(criticreview.CriticType(criticType)).
		SetSubmissionHash(submissionHash).
		SetVerdict(criticreview.Verdict(review.Verdict)).
		SetAttempt(attempt).
		SetCached(review.Cached)
	if review.Reason != "" {
		create.SetReason(review.Reason)
	}
	if len(review.Suggestions) > 0 {
		create.SetSuggestions(review.Suggestions)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to record review for task %s: %w", taskID, err)
	}
	return nil
}

// ListByTask returns a task's reviews, oldest first.
func (s *CriticReviewService) ListByTask(ctx context.Context, taskID string) ([]*ent.CriticReview, error) {
	rows, err := s.client.CriticReview.Query().
		Where(criticreview.TaskID(taskID)).
		Order(ent.Asc(criticreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews of task %s: %w", taskID, err)
	}
	return rows, nil
}

// AttemptCount returns how many verdicts exist for a (task, critic type)
// pair. The next submission is attempt count+1.
func (s *CriticReviewService) AttemptCount(ctx context.Context, taskID string, criticType critic.Type) (int, error) {
	n, err := s.client.CriticReview.Query().
		Where(
			criticreview.TaskID(taskID),
			criticreview.CriticTypeEQ(criticreview.CriticType(criticType)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews of task %s: %w", taskID, err)
	}
	return n, nil
}
