package postgres

import (
    "context"
    "errors"
    "time"

    "github.com/jackc/pgx/v5"

    "dealdesk/internal/domain"
)

// JobRepository
func (db *DB) EnqueueJob(ctx context.Context, automationKey, leadID string) (string, error) {
    var id string
    err := db.Pool.QueryRow(ctx, `
        INSERT INTO dispatch_jobs (automation_key, lead_id)
        VALUES ($1, $2)
        RETURNING id
    `, automationKey, leadID).Scan(&id)
    return id, err
}

func (db *DB) GetJob(ctx context.Context, jobID string) (domain.DispatchJob, error) {
    var j domain.DispatchJob
    err := db.Pool.QueryRow(ctx, `
        SELECT id, automation_key, lead_id, status, attempts, reason, queued_at, started_at, finished_at
        FROM dispatch_jobs WHERE id = $1
    `, jobID).Scan(&j.ID, &j.AutomationKey, &j.LeadID, &j.Status, &j.Attempts, &j.Reason, &j.QueuedAt, &j.StartedAt, &j.FinishedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return domain.DispatchJob{}, ErrNotFound
    }
    return j, err
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job domain.DispatchJob, found bool, err error) {
    // Use explicit transaction to safely lock and transition state
    tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
    if err != nil { return job, false, err }
    defer func() {
        if err != nil { _ = tx.Rollback(ctx) } else { _ = tx.Commit(ctx) }
    }()

    err = tx.QueryRow(ctx, `
        SELECT id, automation_key, lead_id FROM dispatch_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.AutomationKey, &job.LeadID)
    if errors.Is(err, pgx.ErrNoRows) {
        err = nil
        return job, false, nil
    }
    if err != nil { return job, false, err }

    if _, err = tx.Exec(ctx, `
        UPDATE dispatch_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
        return job, false, err
    }
    job.Status = domain.JobRunning
    return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    _, err := db.Pool.Exec(ctx, `
        UPDATE dispatch_jobs SET status='completed', finished_at=now() WHERE id=$1
    `, jobID)
    return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    _, err := db.Pool.Exec(ctx, `
        UPDATE dispatch_jobs SET status='failed', reason=$2, finished_at=now() WHERE id=$1
    `, jobID, reason)
    return err
}

// MarkDenied settles a job whose governance check failed between enqueue and
// claim. Distinct from failure: the webhook was never attempted.
func (db *DB) MarkDenied(ctx context.Context, jobID string, reason string) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    _, err := db.Pool.Exec(ctx, `
        UPDATE dispatch_jobs SET status='denied', reason=$2, finished_at=now() WHERE id=$1
    `, jobID, reason)
    return err
}
