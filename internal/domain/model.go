package domain

import (
    "time"

    "github.com/shopspring/decimal"
)

// Core domain models used internally. HTTP request/response types live in the
// http adapter; keep these decoupled where helpful.

type Lead struct {
    ID        string
    Address   string
    OwnerName string

    // Scoring inputs.
    PropertyValue       float64
    RepairEstimate      float64
    HasExcessFunds      bool
    ExcessFundsAmount   float64
    Distressed          bool
    DaysUntilExpiration *int // nil when no sale/expiration date is known

    // Derived from the inputs above on every write; never hand-edited.
    Score   int
    Grade   Grade
    Golden  bool
    Urgency UrgencyTier

    Status          LeadStatus
    ContactAttempts int
    LastContactAt   *time.Time
    StatusChangedAt time.Time
    CreatedAt       time.Time
    UpdatedAt       time.Time
}

type Contract struct {
    ID      string
    LeadID  string
    BuyerID string

    DealType          DealType
    ExcessFundsAmount decimal.Decimal
    WholesaleAmount   decimal.Decimal

    // Computed once at creation and persisted.
    ExcessFee    decimal.Decimal
    WholesaleFee decimal.Decimal
    TotalFee     decimal.Decimal
    PartyACut    decimal.Decimal
    PartyBCut    decimal.Decimal

    CreatedAt time.Time
}

// GovernanceGate is a named boolean switch gating one category of automation
// or one specific workflow. Rows are seeded once per catalog key and toggled
// by operators; they are never deleted during normal operation.
type GovernanceGate struct {
    Key            string
    Category       Category
    Enabled        bool
    DisabledBy     *string
    DisabledReason *string
    DisabledAt     *time.Time
}

// SystemConfig is the persisted singleton holding the global kill switch and
// the autonomy level. All mutation goes through the governance service.
type SystemConfig struct {
    SystemKilled  bool
    KillReason    *string
    KilledBy      *string
    KilledAt      *time.Time
    AutonomyLevel int // 0..3; 0 is manual-only and blocks all automation
    UpdatedAt     time.Time
}

// DispatchJob tracks one requested automation run through the queue.
type DispatchJob struct {
    ID            string
    AutomationKey string
    LeadID        string
    Status        JobStatus
    Attempts      int
    Reason        string
    QueuedAt      time.Time
    StartedAt     *time.Time
    FinishedAt    *time.Time
}

type JobStatus string

const (
    JobQueued    JobStatus = "queued"
    JobRunning   JobStatus = "running"
    JobCompleted JobStatus = "completed"
    JobFailed    JobStatus = "failed"
    // JobDenied means governance flipped to deny between enqueue and claim.
    JobDenied JobStatus = "denied"
)
