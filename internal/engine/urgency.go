package engine

import "dealdesk/internal/domain"

// Urgency buckets days-until-expiration into a tier. An unknown expiration is
// "normal": absence of a deadline must never be promoted to an emergency.
// Already-expired leads (negative days) land in the tightest bucket.
func Urgency(days *int) domain.UrgencyTier {
    if days == nil {
        return domain.UrgencyNormal
    }
    d := *days
    switch {
    case d <= 3:
        return domain.UrgencyImmediate
    case d <= 7:
        return domain.UrgencyThisWeek
    case d <= 14:
        return domain.UrgencyCritical
    case d <= 30:
        return domain.UrgencyWarning30
    case d <= 90:
        return domain.UrgencyWarning90
    default:
        return domain.UrgencyNormal
    }
}

// UrgentTiers are the tiers the dashboard's urgent board surfaces.
var UrgentTiers = map[domain.UrgencyTier]bool{
    domain.UrgencyImmediate: true,
    domain.UrgencyThisWeek:  true,
    domain.UrgencyCritical:  true,
}
