package domain

// LeadStatus is the pipeline stage a lead currently occupies. The set is
// deliberately unordered: stages are kanban columns, not a monotonic ladder,
// and a lead may be dragged between any two of them.
type LeadStatus string

const (
    StatusNew            LeadStatus = "new"
    StatusContacted      LeadStatus = "contacted"
    StatusInConversation LeadStatus = "in_conversation"
    StatusAgreementSent  LeadStatus = "agreement_sent"
    StatusSigned         LeadStatus = "signed"
    StatusContractSent   LeadStatus = "contract_sent"
    StatusFiled          LeadStatus = "filed"
    StatusPaid           LeadStatus = "paid"
    StatusConverted      LeadStatus = "converted"
    StatusOptedOut       LeadStatus = "opted_out"
    StatusRejected       LeadStatus = "rejected"
)

var leadStatuses = map[LeadStatus]bool{
    StatusNew:            true,
    StatusContacted:      true,
    StatusInConversation: true,
    StatusAgreementSent:  true,
    StatusSigned:         true,
    StatusContractSent:   true,
    StatusFiled:          true,
    StatusPaid:           true,
    StatusConverted:      true,
    StatusOptedOut:       true,
    StatusRejected:       true,
}

// ValidStatus reports whether s names a known pipeline stage.
func ValidStatus(s LeadStatus) bool { return leadStatuses[s] }

// DealType selects which fee streams a contract monetizes.
type DealType string

const (
    DealExcessOnly DealType = "excess_only"
    DealWholesale  DealType = "wholesale"
    DealDual       DealType = "dual"
)

func ValidDealType(d DealType) bool {
    return d == DealExcessOnly || d == DealWholesale || d == DealDual
}

// Grade is the letter classification derived deterministically from a score.
type Grade string

const (
    GradeS Grade = "S"
    GradeA Grade = "A"
    GradeB Grade = "B"
    GradeC Grade = "C"
    GradeD Grade = "D"
    GradeF Grade = "F"
)

// UrgencyTier buckets a lead by days remaining until its expiration.
type UrgencyTier string

const (
    UrgencyImmediate UrgencyTier = "immediate" // <= 3 days
    UrgencyThisWeek  UrgencyTier = "this_week" // <= 7 days
    UrgencyCritical  UrgencyTier = "critical"  // <= 14 days
    UrgencyWarning30 UrgencyTier = "warning_30"
    UrgencyWarning90 UrgencyTier = "warning_90"
    UrgencyNormal    UrgencyTier = "normal"
)

// Category groups automations under one category gate.
type Category string

const (
    CategoryIntake    Category = "intake"
    CategoryOutreach  Category = "outreach"
    CategoryContracts Category = "contracts"
    CategoryPayments  Category = "payments"
)

// GateKey returns the category gate key for c, e.g. "gate_outreach".
func (c Category) GateKey() string { return "gate_" + string(c) }

func ValidCategory(c Category) bool {
    switch c {
    case CategoryIntake, CategoryOutreach, CategoryContracts, CategoryPayments:
        return true
    }
    return false
}
