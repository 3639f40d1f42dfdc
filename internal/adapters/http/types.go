package httpadapter

import (
    "time"

    "github.com/shopspring/decimal"

    "dealdesk/internal/domain"
)

// Wire types for the API. Kept separate from internal/domain so the stored
// shape can move without breaking clients.

type leadRequest struct {
    Address             string  `json:"address"`
    OwnerName           string  `json:"owner_name"`
    PropertyValue       float64 `json:"property_value"`
    RepairEstimate      float64 `json:"repair_estimate"`
    HasExcessFunds      bool    `json:"has_excess_funds"`
    ExcessFundsAmount   float64 `json:"excess_funds_amount"`
    Distressed          bool    `json:"distressed"`
    DaysUntilExpiration *int    `json:"days_until_expiration"`
}

type leadResponse struct {
    ID                  string     `json:"id"`
    Address             string     `json:"address"`
    OwnerName           string     `json:"owner_name"`
    PropertyValue       float64    `json:"property_value"`
    RepairEstimate      float64    `json:"repair_estimate"`
    HasExcessFunds      bool       `json:"has_excess_funds"`
    ExcessFundsAmount   float64    `json:"excess_funds_amount"`
    Distressed          bool       `json:"distressed"`
    DaysUntilExpiration *int       `json:"days_until_expiration"`
    Score               int        `json:"score"`
    Grade               string     `json:"grade"`
    Golden              bool       `json:"golden"`
    Urgency             string     `json:"urgency"`
    Status              string     `json:"status"`
    ContactAttempts     int        `json:"contact_attempts"`
    LastContactAt       *time.Time `json:"last_contact_at,omitempty"`
    StatusChangedAt     time.Time  `json:"status_changed_at"`
    CreatedAt           time.Time  `json:"created_at"`
    UpdatedAt           time.Time  `json:"updated_at"`
}

func toLeadResponse(l domain.Lead) leadResponse {
    return leadResponse{
        ID:                  l.ID,
        Address:             l.Address,
        OwnerName:           l.OwnerName,
        PropertyValue:       l.PropertyValue,
        RepairEstimate:      l.RepairEstimate,
        HasExcessFunds:      l.HasExcessFunds,
        ExcessFundsAmount:   l.ExcessFundsAmount,
        Distressed:          l.Distressed,
        DaysUntilExpiration: l.DaysUntilExpiration,
        Score:               l.Score,
        Grade:               string(l.Grade),
        Golden:              l.Golden,
        Urgency:             string(l.Urgency),
        Status:              string(l.Status),
        ContactAttempts:     l.ContactAttempts,
        LastContactAt:       l.LastContactAt,
        StatusChangedAt:     l.StatusChangedAt,
        CreatedAt:           l.CreatedAt,
        UpdatedAt:           l.UpdatedAt,
    }
}

func toLeadResponses(ls []domain.Lead) []leadResponse {
    out := make([]leadResponse, 0, len(ls))
    for _, l := range ls {
        out = append(out, toLeadResponse(l))
    }
    return out
}

type urgentBoardResponse struct {
    Leads         []leadResponse  `json:"leads"`
    RevenueAtRisk decimal.Decimal `json:"revenue_at_risk"`
}

type transitionRequest struct {
    Status string `json:"status"`
}

type contractRequest struct {
    LeadID            string          `json:"lead_id"`
    BuyerID           string          `json:"buyer_id"`
    DealType          string          `json:"deal_type"`
    ExcessFundsAmount decimal.Decimal `json:"excess_funds_amount"`
    WholesaleAmount   decimal.Decimal `json:"wholesale_amount"`
}

type contractResponse struct {
    ID                string          `json:"id"`
    LeadID            string          `json:"lead_id"`
    BuyerID           string          `json:"buyer_id"`
    DealType          string          `json:"deal_type"`
    ExcessFundsAmount decimal.Decimal `json:"excess_funds_amount"`
    WholesaleAmount   decimal.Decimal `json:"wholesale_amount"`
    ExcessFee         decimal.Decimal `json:"excess_fee"`
    WholesaleFee      decimal.Decimal `json:"wholesale_fee"`
    TotalFee          decimal.Decimal `json:"total_fee"`
    PartyACut         decimal.Decimal `json:"party_a_cut"`
    PartyBCut         decimal.Decimal `json:"party_b_cut"`
    CreatedAt         time.Time       `json:"created_at"`
}

func toContractResponse(c domain.Contract) contractResponse {
    return contractResponse{
        ID:                c.ID,
        LeadID:            c.LeadID,
        BuyerID:           c.BuyerID,
        DealType:          string(c.DealType),
        ExcessFundsAmount: c.ExcessFundsAmount,
        WholesaleAmount:   c.WholesaleAmount,
        ExcessFee:         c.ExcessFee,
        WholesaleFee:      c.WholesaleFee,
        TotalFee:          c.TotalFee,
        PartyACut:         c.PartyACut,
        PartyBCut:         c.PartyBCut,
        CreatedAt:         c.CreatedAt,
    }
}

type gateRequest struct {
    Enabled bool   `json:"enabled"`
    Actor   string `json:"actor"`
    Reason  string `json:"reason,omitempty"`
}

type gateResponse struct {
    Key            string     `json:"key"`
    Category       string     `json:"category"`
    Enabled        bool       `json:"enabled"`
    DisabledBy     *string    `json:"disabled_by,omitempty"`
    DisabledAt     *time.Time `json:"disabled_at,omitempty"`
    DisabledReason *string    `json:"disabled_reason,omitempty"`
}

func toGateResponse(g domain.GovernanceGate) gateResponse {
    return gateResponse{
        Key:            g.Key,
        Category:       string(g.Category),
        Enabled:        g.Enabled,
        DisabledBy:     g.DisabledBy,
        DisabledAt:     g.DisabledAt,
        DisabledReason: g.DisabledReason,
    }
}

type killRequest struct {
    Actor  string `json:"actor"`
    Reason string `json:"reason"`
}

type reviveRequest struct {
    Actor string `json:"actor"`
}

type autonomyRequest struct {
    Level int `json:"level"`
}

type configResponse struct {
    SystemKilled  bool       `json:"system_killed"`
    KillReason    *string    `json:"kill_reason,omitempty"`
    KilledBy      *string    `json:"killed_by,omitempty"`
    KilledAt      *time.Time `json:"killed_at,omitempty"`
    AutonomyLevel int        `json:"autonomy_level"`
}

func toConfigResponse(c domain.SystemConfig) configResponse {
    return configResponse{
        SystemKilled:  c.SystemKilled,
        KillReason:    c.KillReason,
        KilledBy:      c.KilledBy,
        KilledAt:      c.KilledAt,
        AutonomyLevel: c.AutonomyLevel,
    }
}

type runRequest struct {
    LeadID string `json:"lead_id"`
}

type runResponse struct {
    Allowed  bool   `json:"allowed"`
    DeniedBy string `json:"denied_by,omitempty"`
    Reason   string `json:"reason,omitempty"`
    JobID    string `json:"job_id,omitempty"`
}

type jobResponse struct {
    ID            string     `json:"id"`
    AutomationKey string     `json:"automation_key"`
    LeadID        string     `json:"lead_id"`
    Status        string     `json:"status"`
    Attempts      int        `json:"attempts"`
    Reason        string     `json:"reason,omitempty"`
    QueuedAt      time.Time  `json:"queued_at"`
    StartedAt     *time.Time `json:"started_at,omitempty"`
    FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

func toJobResponse(j domain.DispatchJob) jobResponse {
    return jobResponse{
        ID:            j.ID,
        AutomationKey: j.AutomationKey,
        LeadID:        j.LeadID,
        Status:        string(j.Status),
        Attempts:      j.Attempts,
        Reason:        j.Reason,
        QueuedAt:      j.QueuedAt,
        StartedAt:     j.StartedAt,
        FinishedAt:    j.FinishedAt,
    }
}
