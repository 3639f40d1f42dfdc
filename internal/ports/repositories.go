package ports

import (
    "context"

    "dealdesk/internal/domain"
)

// LeadRepository stores lead rows. Derived fields (score, grade, golden,
// urgency) are persisted alongside the inputs; services recompute them on
// every write so the stored row can never drift from its inputs.
type LeadRepository interface {
    CreateLead(ctx context.Context, lead domain.Lead) error
    GetLead(ctx context.Context, id string) (domain.Lead, error)
    ListLeads(ctx context.Context) ([]domain.Lead, error)
    UpdateLead(ctx context.Context, lead domain.Lead) error
    UpdateLeadStatus(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, error)
    RecordContactAttempt(ctx context.Context, id string) (domain.Lead, error)
}

// ContractRepository stores contract rows with their fee breakdown.
type ContractRepository interface {
    CreateContract(ctx context.Context, c domain.Contract) error
    GetContract(ctx context.Context, id string) (domain.Contract, error)
    ListContractsByLead(ctx context.Context, leadID string) ([]domain.Contract, error)
}

// GateRepository stores governance gate rows keyed by gate key.
type GateRepository interface {
    GetGate(ctx context.Context, key string) (domain.GovernanceGate, error)
    ListGates(ctx context.Context) ([]domain.GovernanceGate, error)
    UpdateGate(ctx context.Context, gate domain.GovernanceGate) error
    // SeedGate inserts the row if the key is new and leaves an existing row
    // untouched, so operator toggles survive restarts.
    SeedGate(ctx context.Context, gate domain.GovernanceGate) error
}

// ConfigRepository stores the SystemConfig singleton.
type ConfigRepository interface {
    GetSystemConfig(ctx context.Context) (domain.SystemConfig, error)
    UpdateSystemConfig(ctx context.Context, cfg domain.SystemConfig) error
}
