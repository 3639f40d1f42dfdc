package postgres

import (
    "context"
    "errors"

    "github.com/jackc/pgx/v5"

    "dealdesk/internal/domain"
)

const contractColumns = `
    id, lead_id, buyer_id, deal_type,
    excess_funds_amount, wholesale_amount,
    excess_fee, wholesale_fee, total_fee, party_a_cut, party_b_cut,
    created_at`

// ContractRepository
func (db *DB) CreateContract(ctx context.Context, c domain.Contract) error {
    _, err := db.Pool.Exec(ctx, `
        INSERT INTO contracts (
            id, lead_id, buyer_id, deal_type,
            excess_funds_amount, wholesale_amount,
            excess_fee, wholesale_fee, total_fee, party_a_cut, party_b_cut,
            created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `, c.ID, c.LeadID, c.BuyerID, c.DealType,
        c.ExcessFundsAmount, c.WholesaleAmount,
        c.ExcessFee, c.WholesaleFee, c.TotalFee, c.PartyACut, c.PartyBCut,
        c.CreatedAt)
    return err
}

func (db *DB) GetContract(ctx context.Context, id string) (domain.Contract, error) {
    row := db.Pool.QueryRow(ctx, `SELECT`+contractColumns+` FROM contracts WHERE id = $1`, id)
    return scanContract(row)
}

func (db *DB) ListContractsByLead(ctx context.Context, leadID string) ([]domain.Contract, error) {
    rows, err := db.Pool.Query(ctx, `SELECT`+contractColumns+` FROM contracts WHERE lead_id = $1 ORDER BY created_at`, leadID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []domain.Contract
    for rows.Next() {
        c, err := scanContract(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    return out, rows.Err()
}

func scanContract(row pgx.Row) (domain.Contract, error) {
    var c domain.Contract
    err := row.Scan(&c.ID, &c.LeadID, &c.BuyerID, &c.DealType,
        &c.ExcessFundsAmount, &c.WholesaleAmount,
        &c.ExcessFee, &c.WholesaleFee, &c.TotalFee, &c.PartyACut, &c.PartyBCut,
        &c.CreatedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return domain.Contract{}, ErrNotFound
    }
    return c, err
}
