package postgres

import (
    "context"
    "errors"

    "github.com/jackc/pgx/v5"

    "dealdesk/internal/domain"
)

const leadColumns = `
    id, address, owner_name,
    property_value, repair_estimate, has_excess_funds, excess_funds_amount,
    distressed, days_until_expiration,
    score, grade, golden, urgency,
    status, contact_attempts, last_contact_at, status_changed_at,
    created_at, updated_at`

// LeadRepository
func (db *DB) CreateLead(ctx context.Context, l domain.Lead) error {
    _, err := db.Pool.Exec(ctx, `
        INSERT INTO leads (
            id, address, owner_name,
            property_value, repair_estimate, has_excess_funds, excess_funds_amount,
            distressed, days_until_expiration,
            score, grade, golden, urgency,
            status, contact_attempts, last_contact_at, status_changed_at,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
    `, l.ID, l.Address, l.OwnerName,
        l.PropertyValue, l.RepairEstimate, l.HasExcessFunds, l.ExcessFundsAmount,
        l.Distressed, l.DaysUntilExpiration,
        l.Score, l.Grade, l.Golden, l.Urgency,
        l.Status, l.ContactAttempts, l.LastContactAt, l.StatusChangedAt,
        l.CreatedAt, l.UpdatedAt)
    return err
}

func (db *DB) GetLead(ctx context.Context, id string) (domain.Lead, error) {
    row := db.Pool.QueryRow(ctx, `SELECT`+leadColumns+` FROM leads WHERE id = $1`, id)
    return scanLead(row)
}

func (db *DB) ListLeads(ctx context.Context) ([]domain.Lead, error) {
    rows, err := db.Pool.Query(ctx, `SELECT`+leadColumns+` FROM leads ORDER BY score DESC, created_at`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []domain.Lead
    for rows.Next() {
        l, err := scanLead(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, l)
    }
    return out, rows.Err()
}

func (db *DB) UpdateLead(ctx context.Context, l domain.Lead) error {
    tag, err := db.Pool.Exec(ctx, `
        UPDATE leads SET
            address=$2, owner_name=$3,
            property_value=$4, repair_estimate=$5, has_excess_funds=$6, excess_funds_amount=$7,
            distressed=$8, days_until_expiration=$9,
            score=$10, grade=$11, golden=$12, urgency=$13,
            updated_at=$14
        WHERE id=$1
    `, l.ID, l.Address, l.OwnerName,
        l.PropertyValue, l.RepairEstimate, l.HasExcessFunds, l.ExcessFundsAmount,
        l.Distressed, l.DaysUntilExpiration,
        l.Score, l.Grade, l.Golden, l.Urgency,
        l.UpdatedAt)
    if err != nil {
        return err
    }
    if tag.RowsAffected() == 0 {
        return ErrNotFound
    }
    return nil
}

// UpdateLeadStatus commits the stage change and returns the stored row, so
// callers reconcile against what the store actually holds.
func (db *DB) UpdateLeadStatus(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, error) {
    row := db.Pool.QueryRow(ctx, `
        UPDATE leads SET status=$2, status_changed_at=now(), updated_at=now()
        WHERE id=$1
        RETURNING`+leadColumns, id, status)
    return scanLead(row)
}

func (db *DB) RecordContactAttempt(ctx context.Context, id string) (domain.Lead, error) {
    row := db.Pool.QueryRow(ctx, `
        UPDATE leads SET contact_attempts=contact_attempts+1, last_contact_at=now(), updated_at=now()
        WHERE id=$1
        RETURNING`+leadColumns, id)
    return scanLead(row)
}

func scanLead(row pgx.Row) (domain.Lead, error) {
    var l domain.Lead
    err := row.Scan(&l.ID, &l.Address, &l.OwnerName,
        &l.PropertyValue, &l.RepairEstimate, &l.HasExcessFunds, &l.ExcessFundsAmount,
        &l.Distressed, &l.DaysUntilExpiration,
        &l.Score, &l.Grade, &l.Golden, &l.Urgency,
        &l.Status, &l.ContactAttempts, &l.LastContactAt, &l.StatusChangedAt,
        &l.CreatedAt, &l.UpdatedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return domain.Lead{}, ErrNotFound
    }
    return l, err
}
