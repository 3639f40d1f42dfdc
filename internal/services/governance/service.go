package governance

import (
    "context"
    "errors"
    "fmt"
    "time"

    "dealdesk/internal/config"
    "dealdesk/internal/domain"
    "dealdesk/internal/ports"
)

var (
    // ErrGateNotFound indicates drift between the automation catalog and the
    // seeded gate rows. It is never treated as an implicit allow or deny.
    ErrGateNotFound      = errors.New("gate not found")
    ErrUnknownAutomation = errors.New("unknown automation key")
    ErrReasonRequired    = errors.New("reason required")
    ErrBadAutonomyLevel  = errors.New("autonomy level must be between 0 and 3")
)

// Denial layer names carried on a Decision.
const (
    DeniedByKillSwitch   = "kill_switch"
    DeniedByCategoryGate = "category_gate"
    DeniedByWorkflowGate = "workflow_gate"
    DeniedByAutonomy     = "autonomy_level"
)

// Service resolves whether automations may run and owns every write to gate
// rows and the system config singleton.
type Service struct {
    gates   ports.GateRepository
    sysconf ports.ConfigRepository
    catalog *config.Catalog
    now     func() time.Time
}

func New(gates ports.GateRepository, sysconf ports.ConfigRepository, catalog *config.Catalog) *Service {
    return &Service{gates: gates, sysconf: sysconf, catalog: catalog, now: time.Now}
}

// CanExecute resolves the gate hierarchy for one automation key. The checks
// short-circuit with the most restrictive layer winning: kill switch, then
// the category gate, then the per-workflow gate, then the autonomy level.
func (s *Service) CanExecute(ctx context.Context, automationKey string) (ports.Decision, error) {
    cfg, err := s.sysconf.GetSystemConfig(ctx)
    if err != nil {
        return ports.Decision{}, fmt.Errorf("load system config: %w", err)
    }
    if cfg.SystemKilled {
        reason := ""
        if cfg.KillReason != nil {
            reason = *cfg.KillReason
        }
        return ports.Decision{DeniedBy: DeniedByKillSwitch, Reason: reason}, nil
    }

    auto, ok := s.catalog.Lookup(automationKey)
    if !ok {
        return ports.Decision{}, fmt.Errorf("%w: %s", ErrUnknownAutomation, automationKey)
    }

    category, err := s.lookupGate(ctx, auto.Category.GateKey())
    if err != nil {
        return ports.Decision{}, err
    }
    if !category.Enabled {
        return ports.Decision{DeniedBy: DeniedByCategoryGate, Reason: gateReason(category)}, nil
    }

    workflow, err := s.lookupGate(ctx, automationKey)
    if err != nil {
        return ports.Decision{}, err
    }
    if !workflow.Enabled {
        return ports.Decision{DeniedBy: DeniedByWorkflowGate, Reason: gateReason(workflow)}, nil
    }

    if cfg.AutonomyLevel == 0 {
        return ports.Decision{DeniedBy: DeniedByAutonomy, Reason: "manual-only mode"}, nil
    }
    return ports.Decision{Allowed: true}, nil
}

// lookupGate translates a store miss into ErrGateNotFound. Any other store
// error (timeout, lost connection) passes through untouched: an outage must
// surface as an outage, not as a missing gate row.
func (s *Service) lookupGate(ctx context.Context, key string) (domain.GovernanceGate, error) {
    gate, err := s.gates.GetGate(ctx, key)
    if errors.Is(err, ports.ErrNotFound) {
        return domain.GovernanceGate{}, fmt.Errorf("%w: %s", ErrGateNotFound, key)
    }
    if err != nil {
        return domain.GovernanceGate{}, fmt.Errorf("load gate %s: %w", key, err)
    }
    return gate, nil
}

func gateReason(g domain.GovernanceGate) string {
    if g.DisabledReason != nil {
        return *g.DisabledReason
    }
    return ""
}

// SetGate toggles one gate. Disabling records who and when, plus the reason
// if one was given; re-enabling clears all three. Unlike the kill switch, a
// gate may be disabled without a reason.
func (s *Service) SetGate(ctx context.Context, key string, enabled bool, actor, reason string) (domain.GovernanceGate, error) {
    gate, err := s.lookupGate(ctx, key)
    if err != nil {
        return domain.GovernanceGate{}, err
    }
    if gate.Enabled == enabled {
        return gate, nil
    }
    if enabled {
        gate.Enabled = true
        gate.DisabledBy = nil
        gate.DisabledAt = nil
        gate.DisabledReason = nil
    } else {
        at := s.now().UTC()
        gate.Enabled = false
        gate.DisabledBy = &actor
        gate.DisabledAt = &at
        gate.DisabledReason = nil
        if reason != "" {
            gate.DisabledReason = &reason
        }
    }
    if err := s.gates.UpdateGate(ctx, gate); err != nil {
        return domain.GovernanceGate{}, err
    }
    return gate, nil
}

// ListGates returns all gate rows for the operator console.
func (s *Service) ListGates(ctx context.Context) ([]domain.GovernanceGate, error) {
    return s.gates.ListGates(ctx)
}

// Config returns the current system config.
func (s *Service) Config(ctx context.Context) (domain.SystemConfig, error) {
    return s.sysconf.GetSystemConfig(ctx)
}

// Kill engages the global kill switch. A non-empty reason is mandatory;
// killing an already-killed system is a no-op that keeps the original reason.
func (s *Service) Kill(ctx context.Context, actor, reason string) (domain.SystemConfig, error) {
    if reason == "" {
        return domain.SystemConfig{}, ErrReasonRequired
    }
    cfg, err := s.sysconf.GetSystemConfig(ctx)
    if err != nil {
        return domain.SystemConfig{}, err
    }
    if cfg.SystemKilled {
        return cfg, nil
    }
    at := s.now().UTC()
    cfg.SystemKilled = true
    cfg.KillReason = &reason
    cfg.KilledBy = &actor
    cfg.KilledAt = &at
    if err := s.sysconf.UpdateSystemConfig(ctx, cfg); err != nil {
        return domain.SystemConfig{}, err
    }
    return cfg, nil
}

// Revive disengages the kill switch and clears its metadata. Reviving a
// running system is a no-op.
func (s *Service) Revive(ctx context.Context, actor string) (domain.SystemConfig, error) {
    cfg, err := s.sysconf.GetSystemConfig(ctx)
    if err != nil {
        return domain.SystemConfig{}, err
    }
    if !cfg.SystemKilled {
        return cfg, nil
    }
    cfg.SystemKilled = false
    cfg.KillReason = nil
    cfg.KilledBy = nil
    cfg.KilledAt = nil
    if err := s.sysconf.UpdateSystemConfig(ctx, cfg); err != nil {
        return domain.SystemConfig{}, err
    }
    return cfg, nil
}

// SetAutonomy sets the autonomy level, 0 (manual-only) through 3.
func (s *Service) SetAutonomy(ctx context.Context, level int) (domain.SystemConfig, error) {
    if level < 0 || level > 3 {
        return domain.SystemConfig{}, ErrBadAutonomyLevel
    }
    cfg, err := s.sysconf.GetSystemConfig(ctx)
    if err != nil {
        return domain.SystemConfig{}, err
    }
    cfg.AutonomyLevel = level
    if err := s.sysconf.UpdateSystemConfig(ctx, cfg); err != nil {
        return domain.SystemConfig{}, err
    }
    return cfg, nil
}

// SeedGates inserts an enabled gate row for every category and automation in
// the catalog. Existing rows keep their operator-set state.
func (s *Service) SeedGates(ctx context.Context) error {
    for _, cat := range s.catalog.Categories() {
        g := domain.GovernanceGate{Key: cat.GateKey(), Category: cat, Enabled: true}
        if err := s.gates.SeedGate(ctx, g); err != nil {
            return fmt.Errorf("seed %s: %w", g.Key, err)
        }
    }
    for _, a := range s.catalog.Automations {
        g := domain.GovernanceGate{Key: a.Key, Category: a.Category, Enabled: true}
        if err := s.gates.SeedGate(ctx, g); err != nil {
            return fmt.Errorf("seed %s: %w", g.Key, err)
        }
    }
    return nil
}
