package engine

import (
    "math"
    "testing"

    "dealdesk/internal/domain"
)

func intp(v int) *int { return &v }

func TestScoreTable(t *testing.T) {
    tests := []struct {
        name      string
        in        ScoreInput
        wantScore int
        wantGrade domain.Grade
        wantDual  bool
    }{
        {
            // base 50 + expiration bonus (unknown coerces to 0 days)
            name:      "empty lead",
            in:        ScoreInput{},
            wantScore: 70,
            wantGrade: domain.GradeC,
        },
        {
            name: "everything firing clamps to 100",
            in: ScoreInput{
                PropertyValue:       200_000,
                RepairEstimate:      50_000,
                HasExcessFunds:      true,
                ExcessFundsAmount:   15_000,
                Distressed:          true,
                DaysUntilExpiration: intp(30),
            },
            wantScore: 100,
            wantGrade: domain.GradeS,
            wantDual:  true,
        },
        {
            // 50 + 10 (distressed) + 10 (<=120 days)
            name: "distressed only, mid expiration",
            in: ScoreInput{
                Distressed:          true,
                DaysUntilExpiration: intp(90),
            },
            wantScore: 70,
            wantGrade: domain.GradeC,
        },
        {
            // 50 + 10 (equity 60%) — far expiration adds nothing
            name: "high equity, far expiration",
            in: ScoreInput{
                PropertyValue:       500_000,
                RepairEstimate:      200_000,
                DaysUntilExpiration: intp(365),
            },
            wantScore: 60,
            wantGrade: domain.GradeD,
        },
        {
            // excess flag without distress is not a dual opportunity
            name: "excess funds alone",
            in: ScoreInput{
                HasExcessFunds:      true,
                ExcessFundsAmount:   50_000,
                DaysUntilExpiration: intp(200),
            },
            wantScore: 65,
            wantGrade: domain.GradeC,
        },
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            got := Score(tt.in)
            if got.Score != tt.wantScore {
                t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
            }
            if got.Grade != tt.wantGrade {
                t.Errorf("grade = %s, want %s", got.Grade, tt.wantGrade)
            }
            if got.IsDualOpportunity != tt.wantDual {
                t.Errorf("dual = %v, want %v", got.IsDualOpportunity, tt.wantDual)
            }
        })
    }
}

func TestScoreClamped(t *testing.T) {
    // Brute-force a grid of inputs; every score must stay inside [0,100].
    amounts := []float64{-1e9, -1, 0, 9_999, 10_001, 1e12, math.NaN(), math.Inf(1)}
    days := []*int{nil, intp(-10), intp(0), intp(61), intp(120), intp(10_000)}
    for _, v := range amounts {
        for _, r := range amounts {
            for _, e := range amounts {
                for _, d := range days {
                    got := Score(ScoreInput{
                        PropertyValue:       v,
                        RepairEstimate:      r,
                        HasExcessFunds:      true,
                        ExcessFundsAmount:   e,
                        Distressed:          true,
                        DaysUntilExpiration: d,
                    })
                    if got.Score < 0 || got.Score > 100 {
                        t.Fatalf("score %d out of range for value=%v repairs=%v excess=%v", got.Score, v, r, e)
                    }
                }
            }
        }
    }
}

func TestScoreMonotonicAcrossExcessThreshold(t *testing.T) {
    base := ScoreInput{HasExcessFunds: true, DaysUntilExpiration: intp(400)}

    below := base
    below.ExcessFundsAmount = 10_000
    above := base
    above.ExcessFundsAmount = 10_001

    lo, hi := Score(below), Score(above)
    if hi.Score < lo.Score {
        t.Fatalf("score decreased across 10k threshold: %d -> %d", lo.Score, hi.Score)
    }
    if hi.Score-lo.Score != 15 {
        t.Errorf("threshold bonus = %d, want 15", hi.Score-lo.Score)
    }
}

func TestScoreCoercesGarbageInputs(t *testing.T) {
    got := Score(ScoreInput{
        PropertyValue:     math.NaN(),
        RepairEstimate:    -50_000,
        ExcessFundsAmount: math.Inf(-1),
    })
    if got.EquityPercent != 0 {
        t.Errorf("equity = %v, want 0 for NaN property value", got.EquityPercent)
    }
    if got.Score != 70 { // same as the empty lead
        t.Errorf("score = %d, want 70", got.Score)
    }
}

func TestGradeBoundaries(t *testing.T) {
    tests := []struct {
        score int
        want  domain.Grade
    }{
        {100, domain.GradeS}, {95, domain.GradeS},
        {94, domain.GradeA}, {85, domain.GradeA},
        {84, domain.GradeB}, {75, domain.GradeB},
        {74, domain.GradeC}, {65, domain.GradeC},
        {64, domain.GradeD}, {50, domain.GradeD},
        {49, domain.GradeF}, {0, domain.GradeF},
    }
    for _, tt := range tests {
        if got := GradeFor(tt.score); got != tt.want {
            t.Errorf("GradeFor(%d) = %s, want %s", tt.score, got, tt.want)
        }
    }
}

func TestGradeTotal(t *testing.T) {
    // Every integer score maps to exactly one known grade.
    known := map[domain.Grade]bool{
        domain.GradeS: true, domain.GradeA: true, domain.GradeB: true,
        domain.GradeC: true, domain.GradeD: true, domain.GradeF: true,
    }
    for s := 0; s <= 100; s++ {
        if !known[GradeFor(s)] {
            t.Fatalf("GradeFor(%d) = %q, not a known grade", s, GradeFor(s))
        }
    }
}
