package engine

import (
    "github.com/shopspring/decimal"

    "dealdesk/internal/domain"
)

// Fee rates and split ratios. Money math runs on decimals so the split
// completeness invariant (partyA + partyB == totalFee) holds exactly.
var (
    excessFeeRate    = decimal.NewFromFloat(0.25)
    wholesaleFeeRate = decimal.NewFromFloat(0.10)

    splitAExcessOnly = decimal.NewFromFloat(0.80)
    splitBExcessOnly = decimal.NewFromFloat(0.20)
    splitAWholesale  = decimal.NewFromFloat(0.65)
    splitBWholesale  = decimal.NewFromFloat(0.35)
)

type FeeInput struct {
    DealType        domain.DealType
    ExcessAmount    decimal.Decimal
    WholesaleAmount decimal.Decimal
}

type FeeBreakdown struct {
    ExcessFee    decimal.Decimal
    WholesaleFee decimal.Decimal
    TotalFee     decimal.Decimal
    PartyACut    decimal.Decimal
    PartyBCut    decimal.Decimal
}

// ComputeFee derives the total fee and the two-party split for a deal.
// Which amount contributes depends only on the deal type: excess_only ignores
// the wholesale amount, wholesale ignores excess funds, dual takes both.
// Negative amounts coerce to zero; the function never rejects input.
func ComputeFee(in FeeInput) FeeBreakdown {
    excess := coerceDecimal(in.ExcessAmount)
    wholesale := coerceDecimal(in.WholesaleAmount)

    var out FeeBreakdown
    if in.DealType == domain.DealExcessOnly || in.DealType == domain.DealDual {
        out.ExcessFee = excess.Mul(excessFeeRate)
    } else {
        out.ExcessFee = decimal.Zero
    }
    if in.DealType == domain.DealWholesale || in.DealType == domain.DealDual {
        out.WholesaleFee = wholesale.Mul(wholesaleFeeRate)
    } else {
        out.WholesaleFee = decimal.Zero
    }
    out.TotalFee = out.ExcessFee.Add(out.WholesaleFee)

    ratioA, ratioB := splitRatio(in.DealType)
    out.PartyACut = out.TotalFee.Mul(ratioA)
    out.PartyBCut = out.TotalFee.Mul(ratioB)
    return out
}

// splitRatio depends only on the deal type, never on the amounts. The two
// ratios sum to 1 exactly.
func splitRatio(dt domain.DealType) (a, b decimal.Decimal) {
    if dt == domain.DealExcessOnly {
        return splitAExcessOnly, splitBExcessOnly
    }
    return splitAWholesale, splitBWholesale
}

func coerceDecimal(d decimal.Decimal) decimal.Decimal {
    if d.IsNegative() {
        return decimal.Zero
    }
    return d
}
