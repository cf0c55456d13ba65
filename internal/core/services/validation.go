package services

import (
	"fmt"

	"github.com/gallusnever/asc842-calculator/internal/apperrors"
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// validateInputs checks the cross-field rules that binding tags cannot
// express. Every failure names the offending field; nothing is silently
// defaulted here — optional amounts default to zero at the DTO layer, and
// missing fair value / asset life legitimately skip their tests.
func validateInputs(in domain.LeaseInputs) error {
	if in.MonthlyPayment.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: monthly_payment must be positive", apperrors.ErrValidation)
	}
	if in.LeaseTermMonths <= 0 {
		return fmt.Errorf("%w: lease_term_months must be positive", apperrors.ErrValidation)
	}
	if in.DiscountRate.IsNegative() {
		return fmt.Errorf("%w: discount_rate must not be negative", apperrors.ErrValidation)
	}
	if in.PaymentTiming != domain.Advance && in.PaymentTiming != domain.Arrears {
		return fmt.Errorf("%w: payment_timing must be ADVANCE or ARREARS", apperrors.ErrValidation)
	}
	if in.FairValue != nil && in.FairValue.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: fair_value must be positive when supplied", apperrors.ErrValidation)
	}
	if in.AssetLifeMonths != nil && *in.AssetLifeMonths <= 0 {
		return fmt.Errorf("%w: asset_life_months must be positive when supplied", apperrors.ErrValidation)
	}
	if in.PrepaidRent.IsNegative() {
		return fmt.Errorf("%w: prepaid_rent must not be negative", apperrors.ErrValidation)
	}
	if in.InitialDirectCosts.IsNegative() {
		return fmt.Errorf("%w: initial_direct_costs must not be negative", apperrors.ErrValidation)
	}
	if in.LeaseIncentives.IsNegative() {
		return fmt.Errorf("%w: lease_incentives must not be negative", apperrors.ErrValidation)
	}
	return nil
}
