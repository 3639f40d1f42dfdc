package automations

import (
    "context"
    "log/slog"

    "dealdesk/internal/domain"
    "dealdesk/internal/ports"
)

// Service is the boundary between request handlers and the dispatch queue.
// Every run request passes through the governance resolver first; only an
// allowed request produces a queue row.
type Service struct {
    gov  ports.Governance
    jobs ports.JobRepository
}

func New(gov ports.Governance, jobs ports.JobRepository) *Service {
    return &Service{gov: gov, jobs: jobs}
}

// RunResult reports what happened to one run request. A denied request
// carries the denying layer and reason; an allowed one carries the job id.
type RunResult struct {
    Allowed  bool
    DeniedBy string
    Reason   string
    JobID    string
}

// Request asks to run an automation for a lead. Unknown automation keys and
// missing gate rows surface as errors, never as silent denials.
func (s *Service) Request(ctx context.Context, automationKey, leadID string) (RunResult, error) {
    dec, err := s.gov.CanExecute(ctx, automationKey)
    if err != nil {
        return RunResult{}, err
    }
    if !dec.Allowed {
        slog.Warn("automation denied",
            "automation", automationKey,
            "lead_id", leadID,
            "denied_by", dec.DeniedBy,
            "reason", dec.Reason)
        return RunResult{DeniedBy: dec.DeniedBy, Reason: dec.Reason}, nil
    }
    jobID, err := s.jobs.EnqueueJob(ctx, automationKey, leadID)
    if err != nil {
        return RunResult{}, err
    }
    slog.Info("automation queued", "automation", automationKey, "lead_id", leadID, "job_id", jobID)
    return RunResult{Allowed: true, JobID: jobID}, nil
}

// Job returns one dispatch job for status polling.
func (s *Service) Job(ctx context.Context, jobID string) (domain.DispatchJob, error) {
    return s.jobs.GetJob(ctx, jobID)
}
