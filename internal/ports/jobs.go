package ports

import (
    "context"

    "dealdesk/internal/domain"
)

// JobRepository supports enqueuing, claiming and finishing dispatch jobs.
type JobRepository interface {
    EnqueueJob(ctx context.Context, automationKey, leadID string) (jobID string, err error)
    GetJob(ctx context.Context, jobID string) (domain.DispatchJob, error)
    ClaimNext(ctx context.Context) (job domain.DispatchJob, found bool, err error)
    MarkCompleted(ctx context.Context, jobID string) error
    MarkFailed(ctx context.Context, jobID string, reason string) error
    MarkDenied(ctx context.Context, jobID string, reason string) error
}
