package contracts

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"

    "dealdesk/internal/domain"
    "dealdesk/internal/engine"
    "dealdesk/internal/ports"
)

var ErrBadDealType = errors.New("unknown deal type")

// Service creates and reads contracts. The fee breakdown is computed exactly
// once here, at creation, and persisted with the row; later reads never
// recompute it, so renegotiated rates cannot silently rewrite old deals.
type Service struct {
    repo  ports.ContractRepository
    leads ports.LeadRepository
    now   func() time.Time
}

func New(repo ports.ContractRepository, leads ports.LeadRepository) *Service {
    return &Service{repo: repo, leads: leads, now: time.Now}
}

type ContractInput struct {
    LeadID            string
    BuyerID           string
    DealType          domain.DealType
    ExcessFundsAmount decimal.Decimal
    WholesaleAmount   decimal.Decimal
}

func (s *Service) Create(ctx context.Context, in ContractInput) (domain.Contract, error) {
    if !domain.ValidDealType(in.DealType) {
        return domain.Contract{}, fmt.Errorf("%w: %q", ErrBadDealType, in.DealType)
    }
    if _, err := s.leads.GetLead(ctx, in.LeadID); err != nil {
        return domain.Contract{}, fmt.Errorf("lead %s: %w", in.LeadID, err)
    }

    fees := engine.ComputeFee(engine.FeeInput{
        DealType:        in.DealType,
        ExcessAmount:    in.ExcessFundsAmount,
        WholesaleAmount: in.WholesaleAmount,
    })
    c := domain.Contract{
        ID:                uuid.NewString(),
        LeadID:            in.LeadID,
        BuyerID:           in.BuyerID,
        DealType:          in.DealType,
        ExcessFundsAmount: in.ExcessFundsAmount,
        WholesaleAmount:   in.WholesaleAmount,
        ExcessFee:         fees.ExcessFee,
        WholesaleFee:      fees.WholesaleFee,
        TotalFee:          fees.TotalFee,
        PartyACut:         fees.PartyACut,
        PartyBCut:         fees.PartyBCut,
        CreatedAt:         s.now().UTC(),
    }
    if err := s.repo.CreateContract(ctx, c); err != nil {
        return domain.Contract{}, err
    }
    return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Contract, error) {
    return s.repo.GetContract(ctx, id)
}

func (s *Service) ListByLead(ctx context.Context, leadID string) ([]domain.Contract, error) {
    return s.repo.ListContractsByLead(ctx, leadID)
}
