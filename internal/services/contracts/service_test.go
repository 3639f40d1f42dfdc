package contracts

import (
    "context"
    "errors"
    "testing"

    "github.com/shopspring/decimal"

    "dealdesk/internal/domain"
)

type fakeContractRepo struct {
    contracts map[string]domain.Contract
}

func (f *fakeContractRepo) CreateContract(ctx context.Context, c domain.Contract) error {
    f.contracts[c.ID] = c
    return nil
}

func (f *fakeContractRepo) GetContract(ctx context.Context, id string) (domain.Contract, error) {
    c, ok := f.contracts[id]
    if !ok {
        return domain.Contract{}, errors.New("not found")
    }
    return c, nil
}

func (f *fakeContractRepo) ListContractsByLead(ctx context.Context, leadID string) ([]domain.Contract, error) {
    var out []domain.Contract
    for _, c := range f.contracts {
        if c.LeadID == leadID {
            out = append(out, c)
        }
    }
    return out, nil
}

type fakeLeadLookup struct {
    known map[string]bool
}

func (f *fakeLeadLookup) GetLead(ctx context.Context, id string) (domain.Lead, error) {
    if !f.known[id] {
        return domain.Lead{}, errors.New("not found")
    }
    return domain.Lead{ID: id}, nil
}

func (f *fakeLeadLookup) CreateLead(ctx context.Context, lead domain.Lead) error { return nil }
func (f *fakeLeadLookup) ListLeads(ctx context.Context) ([]domain.Lead, error) { return nil, nil }
func (f *fakeLeadLookup) UpdateLead(ctx context.Context, lead domain.Lead) error { return nil }
func (f *fakeLeadLookup) UpdateLeadStatus(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, error) {
    return domain.Lead{}, nil
}
func (f *fakeLeadLookup) RecordContactAttempt(ctx context.Context, id string) (domain.Lead, error) {
    return domain.Lead{}, nil
}

func newTestService() (*Service, *fakeContractRepo) {
    repo := &fakeContractRepo{contracts: map[string]domain.Contract{}}
    leads := &fakeLeadLookup{known: map[string]bool{"lead-1": true}}
    return New(repo, leads), repo
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCreatePersistsFeeBreakdown(t *testing.T) {
    svc, repo := newTestService()

    c, err := svc.Create(context.Background(), ContractInput{
        LeadID:            "lead-1",
        BuyerID:           "buyer-9",
        DealType:          domain.DealDual,
        ExcessFundsAmount: dec(40_000),
        WholesaleAmount:   dec(400_000),
    })
    if err != nil {
        t.Fatalf("Create: %v", err)
    }
    if !c.TotalFee.Equal(dec(50_000)) {
        t.Errorf("total = %s, want 50000", c.TotalFee)
    }
    if !c.PartyACut.Equal(dec(32_500)) || !c.PartyBCut.Equal(dec(17_500)) {
        t.Errorf("split = %s / %s", c.PartyACut, c.PartyBCut)
    }

    stored := repo.contracts[c.ID]
    if !stored.TotalFee.Equal(c.TotalFee) {
        t.Error("persisted breakdown differs from returned contract")
    }
}

func TestCreateExcessOnlyIgnoresWholesale(t *testing.T) {
    svc, _ := newTestService()
    c, err := svc.Create(context.Background(), ContractInput{
        LeadID:            "lead-1",
        DealType:          domain.DealExcessOnly,
        ExcessFundsAmount: dec(100_000),
        WholesaleAmount:   dec(1_000_000), // stored but must not contribute
    })
    if err != nil {
        t.Fatalf("Create: %v", err)
    }
    if !c.WholesaleFee.IsZero() {
        t.Errorf("wholesaleFee = %s, want 0", c.WholesaleFee)
    }
    if !c.TotalFee.Equal(dec(25_000)) {
        t.Errorf("total = %s, want 25000", c.TotalFee)
    }
    if !c.PartyACut.Equal(dec(20_000)) || !c.PartyBCut.Equal(dec(5_000)) {
        t.Errorf("split = %s / %s, want 80/20", c.PartyACut, c.PartyBCut)
    }
}

func TestCreateRejectsUnknownDealType(t *testing.T) {
    svc, _ := newTestService()
    _, err := svc.Create(context.Background(), ContractInput{LeadID: "lead-1", DealType: "barter"})
    if !errors.Is(err, ErrBadDealType) {
        t.Fatalf("err = %v, want ErrBadDealType", err)
    }
}

func TestCreateRejectsUnknownLead(t *testing.T) {
    svc, _ := newTestService()
    _, err := svc.Create(context.Background(), ContractInput{LeadID: "ghost", DealType: domain.DealWholesale})
    if err == nil {
        t.Fatal("expected error for missing lead")
    }
}

func TestListByLead(t *testing.T) {
    svc, _ := newTestService()
    ctx := context.Background()
    for i := 0; i < 2; i++ {
        if _, err := svc.Create(ctx, ContractInput{LeadID: "lead-1", DealType: domain.DealWholesale, WholesaleAmount: dec(100_000)}); err != nil {
            t.Fatalf("Create: %v", err)
        }
    }
    got, err := svc.ListByLead(ctx, "lead-1")
    if err != nil {
        t.Fatalf("ListByLead: %v", err)
    }
    if len(got) != 2 {
        t.Errorf("len = %d, want 2", len(got))
    }
}
