package pipeline

import (
    "context"
    "errors"
    "fmt"

    "dealdesk/internal/domain"
    "dealdesk/internal/ports"
)

var ErrUnknownStatus = errors.New("unknown pipeline status")

// TransitionPolicy decides whether a stage change is allowed. The shipped
// policy allows any stage to move to any other (kanban drag-and-drop sets the
// target column directly); a guard table can replace it without touching
// callers.
type TransitionPolicy interface {
    Allow(from, to domain.LeadStatus) error
}

// AllowAny permits every transition between known stages.
type AllowAny struct{}

func (AllowAny) Allow(from, to domain.LeadStatus) error { return nil }

// Service moves leads between pipeline stages. The store write happens before
// the new state is reported back, so a caller holding the returned lead knows
// the transition is committed; on error nothing changed server-side and an
// optimistic UI must roll back.
type Service struct {
    repo   ports.LeadRepository
    policy TransitionPolicy
}

func New(repo ports.LeadRepository, policy TransitionPolicy) *Service {
    if policy == nil {
        policy = AllowAny{}
    }
    return &Service{repo: repo, policy: policy}
}

// Transition sets the lead's stage to target and stamps the change time.
func (s *Service) Transition(ctx context.Context, leadID string, target domain.LeadStatus) (domain.Lead, error) {
    if !domain.ValidStatus(target) {
        return domain.Lead{}, fmt.Errorf("%w: %q", ErrUnknownStatus, target)
    }
    lead, err := s.repo.GetLead(ctx, leadID)
    if err != nil {
        return domain.Lead{}, err
    }
    if err := s.policy.Allow(lead.Status, target); err != nil {
        return domain.Lead{}, err
    }
    return s.repo.UpdateLeadStatus(ctx, leadID, target)
}
