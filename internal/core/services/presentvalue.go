package services

import (
	"fmt"
	"math"

	"github.com/gallusnever/asc842-calculator/internal/apperrors"
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// PresentValue discounts a level monthly payment stream at the given annual
// rate over numPeriods monthly periods.
//
// Arrears: PV = payment * (1 - (1+r)^-n) / r
// Advance: PV = arrears PV * (1+r)
//
// The closed form is undefined at r=0, where the limit is payment * n.
func PresentValue(payment, annualRate decimal.Decimal, numPeriods int, timing domain.PaymentTiming) (decimal.Decimal, error) {
	if payment.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: payment must be positive", apperrors.ErrValidation)
	}
	if annualRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: discount rate must not be negative", apperrors.ErrValidation)
	}
	if numPeriods <= 0 {
		return decimal.Zero, fmt.Errorf("%w: number of periods must be positive", apperrors.ErrValidation)
	}

	monthlyRate := annualRate.Div(decimal.NewFromInt(12))
	if monthlyRate.IsZero() {
		return payment.Mul(decimal.NewFromInt(int64(numPeriods))), nil
	}

	// (1+r)^n is computed through float64; everything else stays decimal.
	rf, _ := monthlyRate.Float64()
	factor := decimal.NewFromFloat(math.Pow(1+rf, float64(numPeriods)))

	pv := payment.Mul(one.Sub(one.Div(factor))).Div(monthlyRate)
	if timing == domain.Advance {
		pv = pv.Mul(one.Add(monthlyRate))
	}
	return pv, nil
}
