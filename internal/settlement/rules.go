package settlement

import (
	"github.com/shopspring/decimal"

	"severance-engine/internal/model"
)

// terminationRule holds what a termination type entitles the employee to
// beyond the amounts every type receives.
type terminationRule struct {
	// NoticeEligible types pay the notice period when it is indemnified.
	NoticeEligible bool
	// Shares of the FGTS balance released for withdrawal and paid as penalty.
	WithdrawalShare decimal.Decimal
	PenaltyShare    decimal.Decimal
}

var registry = map[model.TerminationType]terminationRule{
	model.TerminationWithoutCause: {
		NoticeEligible:  true,
		WithdrawalShare: decimal.NewFromInt(1),
		PenaltyShare:    decimal.RequireFromString("0.40"),
	},
	model.TerminationMutualAgreement: {
		NoticeEligible:  true,
		WithdrawalShare: decimal.RequireFromString("0.80"),
		PenaltyShare:    decimal.RequireFromString("0.20"),
	},
	model.TerminationResignation: {},
	model.TerminationForCause:    {},
}

func ruleFor(t model.TerminationType) (terminationRule, bool) {
	r, ok := registry[t]
	return r, ok
}

// NoticeApplies reports whether the notice type changes the settlement for
// the given termination type.
func NoticeApplies(t model.TerminationType) bool {
	r, _ := ruleFor(t)
	return r.NoticeEligible
}
