// Package service orchestrates the settlement pipeline over validated
// input. It holds no state: every request is computed from scratch.
package service

import (
	"context"
	"log/slog"

	"billsplit/internal/calculator"
	"billsplit/internal/models"
)

// SplitService runs the full pipeline: allocate each bill, aggregate net
// balances, settle, and format payment plans.
type SplitService struct{}

// NewSplitService creates a new SplitService.
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ComputePlans converts a set of bills into payment plans, one per person
// who owes money. The bills are validated up front; any invalid bill
// rejects the whole request with a models.ValidationError. A settlement
// that fails the zero-sum invariant surfaces calculator.ErrUnbalanced,
// which is an internal defect rather than a caller error.
func (s *SplitService) ComputePlans(ctx context.Context, bills []models.Bill) ([]calculator.Plan, error) {
	if len(bills) == 0 {
		return nil, &models.ValidationError{Field: "bills", Reason: "must contain at least one bill"}
	}

	seen := make(map[string]bool, len(bills))
	for _, bill := range bills {
		if bill.ID != "" && seen[bill.ID] {
			return nil, &models.ValidationError{BillID: bill.ID, Field: "id", Reason: "duplicate bill id"}
		}
		seen[bill.ID] = true
	}

	var contributions []calculator.Contribution
	for _, bill := range bills {
		cs, err := calculator.Allocate(bill)
		if err != nil {
			slog.Debug("Bill rejected", "bill_id", bill.ID, "error", err)
			return nil, err
		}
		contributions = append(contributions, cs...)
	}

	balances := calculator.Aggregate(contributions)
	transfers, err := calculator.Settle(balances)
	if err != nil {
		slog.Error("Settlement invariant violated", "bills", len(bills), "error", err)
		return nil, err
	}

	plans := calculator.BuildPlans(transfers)
	slog.Debug("Plans computed",
		"bills", len(bills),
		"people", len(balances),
		"transfers", len(transfers),
		"plans", len(plans),
	)
	return plans, nil
}
