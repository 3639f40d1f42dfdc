package dispatchrunner

import (
    "context"
    "log/slog"
    "time"

    "dealdesk/internal/domain"
    "dealdesk/internal/ports"
)

// Run starts worker goroutines that claim queued dispatch jobs and fire their
// webhooks. Governance is re-checked at claim time: a gate or the kill switch
// may have flipped while the job sat in the queue, and a stale allow must not
// carry an automation through a closed gate.
func Run(ctx context.Context, jobs ports.JobRepository, gov ports.Governance, dispatcher ports.Dispatcher, concurrency int, pollInterval time.Duration) {
    if concurrency < 1 { return }
    jobsCh := make(chan domain.DispatchJob, concurrency)

    // claim loop
    go func() {
        ticker := time.NewTicker(pollInterval)
        defer ticker.Stop()
        for {
            select {
            case <-ctx.Done():
                close(jobsCh)
                return
            case <-ticker.C:
                for {
                    job, found, err := jobs.ClaimNext(ctx)
                    if err != nil {
                        slog.Error("job claim error", "error", err)
                        break
                    }
                    if !found { break }
                    jobsCh <- job
                }
            }
        }
    }()

    // workers
    for i := 0; i < concurrency; i++ {
        go func(idx int) {
            for job := range jobsCh {
                if err := Process(ctx, jobs, gov, dispatcher, job); err != nil {
                    slog.Error("dispatch job failed", "worker", idx, "job_id", job.ID, "error", err)
                }
            }
        }(i)
    }
}

// Process settles one claimed job: deny, complete or fail. The webhook call
// is fire-and-forget beyond the HTTP handshake; there is no retry here.
func Process(ctx context.Context, jobs ports.JobRepository, gov ports.Governance, dispatcher ports.Dispatcher, job domain.DispatchJob) error {
    dec, err := gov.CanExecute(ctx, job.AutomationKey)
    if err != nil {
        _ = jobs.MarkFailed(ctx, job.ID, err.Error())
        return err
    }
    if !dec.Allowed {
        reason := dec.DeniedBy
        if dec.Reason != "" {
            reason += ": " + dec.Reason
        }
        slog.Warn("dispatch denied at claim time", "job_id", job.ID, "automation", job.AutomationKey, "denied_by", dec.DeniedBy)
        return jobs.MarkDenied(ctx, job.ID, reason)
    }
    if err := dispatcher.Dispatch(ctx, job.AutomationKey, job.LeadID); err != nil {
        _ = jobs.MarkFailed(ctx, job.ID, err.Error())
        return err
    }
    return jobs.MarkCompleted(ctx, job.ID)
}
