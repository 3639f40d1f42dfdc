package engine

import (
    "math"

    "dealdesk/internal/domain"
)

// Package engine holds the pure calculators: lead scoring, urgency tiers and
// the fee/split math. Nothing here touches a clock, a store or a network;
// every function is total over its inputs and safe to call from any handler.

const (
    baseScore = 50

    bonusDualOpportunity = 30
    bonusLargeExcess     = 15
    bonusDistressed      = 10
    bonusExpiresSoon     = 20 // <= 60 days
    bonusExpiresLater    = 10 // <= 120 days
    bonusHighEquity      = 10

    largeExcessThreshold = 10_000
    highEquityPercent    = 30
)

// ScoreInput carries the raw lead attributes the score derives from.
type ScoreInput struct {
    PropertyValue       float64
    RepairEstimate      float64
    HasExcessFunds      bool
    ExcessFundsAmount   float64
    Distressed          bool
    DaysUntilExpiration *int
}

type ScoreResult struct {
    Score             int
    Grade             domain.Grade
    EquityPercent     float64
    IsDualOpportunity bool
}

// Score converts raw lead attributes into a 0-100 priority score and grade.
// Missing or non-numeric amounts coerce to zero rather than erroring, so the
// function is total: a half-filled intake form still renders a number.
func Score(in ScoreInput) ScoreResult {
    value := coerce(in.PropertyValue)
    repairs := coerce(in.RepairEstimate)
    excess := coerce(in.ExcessFundsAmount)

    var equity float64
    if value > 0 {
        equity = (value - repairs) / value * 100
    }

    dual := in.HasExcessFunds && in.Distressed

    score := baseScore
    if dual {
        score += bonusDualOpportunity
    }
    if excess > largeExcessThreshold {
        score += bonusLargeExcess
    }
    if in.Distressed {
        score += bonusDistressed
    }
    days := 0
    if in.DaysUntilExpiration != nil {
        days = *in.DaysUntilExpiration
    }
    if days <= 60 {
        score += bonusExpiresSoon
    } else if days <= 120 {
        score += bonusExpiresLater
    }
    if equity > highEquityPercent {
        score += bonusHighEquity
    }

    if score > 100 {
        score = 100
    }
    if score < 0 {
        score = 0
    }

    return ScoreResult{
        Score:             score,
        Grade:             GradeFor(score),
        EquityPercent:     equity,
        IsDualOpportunity: dual,
    }
}

// GradeFor maps a score to its letter grade. Thresholds are evaluated
// highest-first and cover every integer, so the mapping is total.
func GradeFor(score int) domain.Grade {
    switch {
    case score >= 95:
        return domain.GradeS
    case score >= 85:
        return domain.GradeA
    case score >= 75:
        return domain.GradeB
    case score >= 65:
        return domain.GradeC
    case score >= 50:
        return domain.GradeD
    default:
        return domain.GradeF
    }
}

// coerce implements the defensive-default policy: NaN, infinite and negative
// amounts count as zero.
func coerce(f float64) float64 {
    if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
        return 0
    }
    return f
}
