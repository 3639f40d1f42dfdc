package leads

import (
    "context"
    "sort"
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"

    "dealdesk/internal/domain"
    "dealdesk/internal/engine"
    "dealdesk/internal/ports"
)

// Service owns lead intake and the derived display values. Score, grade,
// golden flag and urgency are recomputed from the raw inputs on every write;
// callers cannot set them directly, which keeps the stored row and its inputs
// from ever drifting apart.
type Service struct {
    repo ports.LeadRepository
    now  func() time.Time
}

func New(repo ports.LeadRepository) *Service {
    return &Service{repo: repo, now: time.Now}
}

// LeadInput carries the caller-settable lead attributes.
type LeadInput struct {
    Address             string
    OwnerName           string
    PropertyValue       float64
    RepairEstimate      float64
    HasExcessFunds      bool
    ExcessFundsAmount   float64
    Distressed          bool
    DaysUntilExpiration *int
}

func (s *Service) Create(ctx context.Context, in LeadInput) (domain.Lead, error) {
    now := s.now().UTC()
    lead := domain.Lead{
        ID:              uuid.NewString(),
        Status:          domain.StatusNew,
        StatusChangedAt: now,
        CreatedAt:       now,
        UpdatedAt:       now,
    }
    applyInput(&lead, in)
    derive(&lead)
    if err := s.repo.CreateLead(ctx, lead); err != nil {
        return domain.Lead{}, err
    }
    return lead, nil
}

// Update replaces the lead's raw attributes and rescores it.
func (s *Service) Update(ctx context.Context, id string, in LeadInput) (domain.Lead, error) {
    lead, err := s.repo.GetLead(ctx, id)
    if err != nil {
        return domain.Lead{}, err
    }
    applyInput(&lead, in)
    derive(&lead)
    lead.UpdatedAt = s.now().UTC()
    if err := s.repo.UpdateLead(ctx, lead); err != nil {
        return domain.Lead{}, err
    }
    return lead, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Lead, error) {
    return s.repo.GetLead(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Lead, error) {
    return s.repo.ListLeads(ctx)
}

// RecordContact bumps the contact-attempt counter and stamps the time.
func (s *Service) RecordContact(ctx context.Context, id string) (domain.Lead, error) {
    return s.repo.RecordContactAttempt(ctx, id)
}

// UrgentBoard is the filtered, sorted view the dashboard's urgency panel
// renders, plus the cumulative revenue at risk across it.
type UrgentBoard struct {
    Leads         []domain.Lead
    RevenueAtRisk decimal.Decimal
}

// Urgent returns leads in the immediate / this-week / critical tiers, sorted
// ascending by days remaining with unknown expirations last, and sums the
// excess funds exposed across the set.
func (s *Service) Urgent(ctx context.Context) (UrgentBoard, error) {
    all, err := s.repo.ListLeads(ctx)
    if err != nil {
        return UrgentBoard{}, err
    }
    board := UrgentBoard{RevenueAtRisk: decimal.Zero}
    for _, l := range all {
        if engine.UrgentTiers[l.Urgency] {
            board.Leads = append(board.Leads, l)
            board.RevenueAtRisk = board.RevenueAtRisk.Add(decimal.NewFromFloat(l.ExcessFundsAmount))
        }
    }
    sort.SliceStable(board.Leads, func(i, j int) bool {
        a, b := board.Leads[i].DaysUntilExpiration, board.Leads[j].DaysUntilExpiration
        if a == nil {
            return false // nils sort last
        }
        if b == nil {
            return true
        }
        return *a < *b
    })
    return board, nil
}

func applyInput(lead *domain.Lead, in LeadInput) {
    lead.Address = in.Address
    lead.OwnerName = in.OwnerName
    lead.PropertyValue = in.PropertyValue
    lead.RepairEstimate = in.RepairEstimate
    lead.HasExcessFunds = in.HasExcessFunds
    lead.ExcessFundsAmount = in.ExcessFundsAmount
    lead.Distressed = in.Distressed
    lead.DaysUntilExpiration = in.DaysUntilExpiration
}

func derive(lead *domain.Lead) {
    res := engine.Score(engine.ScoreInput{
        PropertyValue:       lead.PropertyValue,
        RepairEstimate:      lead.RepairEstimate,
        HasExcessFunds:      lead.HasExcessFunds,
        ExcessFundsAmount:   lead.ExcessFundsAmount,
        Distressed:          lead.Distressed,
        DaysUntilExpiration: lead.DaysUntilExpiration,
    })
    lead.Score = res.Score
    lead.Grade = res.Grade
    lead.Golden = res.IsDualOpportunity
    lead.Urgency = engine.Urgency(lead.DaysUntilExpiration)
}
