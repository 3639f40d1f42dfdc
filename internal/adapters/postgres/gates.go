package postgres

import (
    "context"
    "errors"

    "github.com/jackc/pgx/v5"

    "dealdesk/internal/domain"
)

// GateRepository
func (db *DB) GetGate(ctx context.Context, key string) (domain.GovernanceGate, error) {
    row := db.Pool.QueryRow(ctx, `
        SELECT key, category, enabled, disabled_by, disabled_at, disabled_reason
        FROM governance_gates WHERE key = $1
    `, key)
    return scanGate(row)
}

func (db *DB) ListGates(ctx context.Context) ([]domain.GovernanceGate, error) {
    rows, err := db.Pool.Query(ctx, `
        SELECT key, category, enabled, disabled_by, disabled_at, disabled_reason
        FROM governance_gates ORDER BY category, key
    `)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []domain.GovernanceGate
    for rows.Next() {
        g, err := scanGate(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, g)
    }
    return out, rows.Err()
}

func (db *DB) UpdateGate(ctx context.Context, g domain.GovernanceGate) error {
    tag, err := db.Pool.Exec(ctx, `
        UPDATE governance_gates
        SET enabled=$2, disabled_by=$3, disabled_at=$4, disabled_reason=$5
        WHERE key=$1
    `, g.Key, g.Enabled, g.DisabledBy, g.DisabledAt, g.DisabledReason)
    if err != nil {
        return err
    }
    if tag.RowsAffected() == 0 {
        return ErrNotFound
    }
    return nil
}

// SeedGate inserts the row only when the key is new; operator toggles on an
// existing row survive redeploys.
func (db *DB) SeedGate(ctx context.Context, g domain.GovernanceGate) error {
    _, err := db.Pool.Exec(ctx, `
        INSERT INTO governance_gates (key, category, enabled)
        VALUES ($1, $2, $3)
        ON CONFLICT (key) DO NOTHING
    `, g.Key, g.Category, g.Enabled)
    return err
}

func scanGate(row pgx.Row) (domain.GovernanceGate, error) {
    var g domain.GovernanceGate
    err := row.Scan(&g.Key, &g.Category, &g.Enabled, &g.DisabledBy, &g.DisabledAt, &g.DisabledReason)
    if errors.Is(err, pgx.ErrNoRows) {
        return domain.GovernanceGate{}, ErrNotFound
    }
    return g, err
}

// ConfigRepository
//
// The singleton row is created by the initial migration, so reads never miss
// during normal operation.
func (db *DB) GetSystemConfig(ctx context.Context) (domain.SystemConfig, error) {
    var cfg domain.SystemConfig
    err := db.Pool.QueryRow(ctx, `
        SELECT system_killed, kill_reason, killed_by, killed_at, autonomy_level, updated_at
        FROM system_config WHERE id
    `).Scan(&cfg.SystemKilled, &cfg.KillReason, &cfg.KilledBy, &cfg.KilledAt, &cfg.AutonomyLevel, &cfg.UpdatedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return domain.SystemConfig{}, ErrNotFound
    }
    return cfg, err
}

func (db *DB) UpdateSystemConfig(ctx context.Context, cfg domain.SystemConfig) error {
    _, err := db.Pool.Exec(ctx, `
        UPDATE system_config
        SET system_killed=$1, kill_reason=$2, killed_by=$3, killed_at=$4, autonomy_level=$5, updated_at=now()
        WHERE id
    `, cfg.SystemKilled, cfg.KillReason, cfg.KilledBy, cfg.KilledAt, cfg.AutonomyLevel)
    return err
}
