package calculator

import (
	"errors"
	"fmt"

	"billsplit/internal/money"
)

// ErrUnbalanced reports that net balances do not sum to zero within
// tolerance before matching begins. This signals a defect in allocation
// or aggregation, not bad caller input.
var ErrUnbalanced = errors.New("net balances do not sum to zero")

// Transfer is one direct payment: From pays To the Amount.
type Transfer struct {
	From   string
	To     string
	Amount money.Amount
}

// party is a creditor or debtor still carrying balance during matching.
// amount is always positive regardless of side.
type party struct {
	name   string
	amount money.Amount
}

// Settle converts net balances into direct payments using greedy
// largest-to-largest matching: repeatedly pay as much as possible from the
// largest debtor to the largest creditor, breaking ties lexicographically
// by name. The result is deterministic and emits at most n−1 transfers for
// n people with nonzero balance; it is not guaranteed to be the global
// minimum number of transactions.
//
// Residual balance smaller than one minor unit never produces a payment.
// The input map is not modified.
func Settle(balances map[string]money.Amount) ([]Transfer, error) {
	var sum money.Amount
	var creditors, debtors []party
	for name, balance := range balances {
		sum += balance
		switch {
		case balance > 0:
			creditors = append(creditors, party{name: name, amount: balance})
		case balance < 0:
			debtors = append(debtors, party{name: name, amount: -balance})
		}
	}

	// Tolerance of one minor unit per person bounds legitimate rounding
	// drift; anything beyond it is an upstream bug.
	if tolerance := money.Amount(len(balances)); sum.Abs() > tolerance {
		return nil, fmt.Errorf("%w: residual %s across %d people", ErrUnbalanced, sum, len(balances))
	}

	var transfers []Transfer
	for len(creditors) > 0 && len(debtors) > 0 {
		ci := largest(creditors)
		di := largest(debtors)

		amount := creditors[ci].amount
		if debtors[di].amount < amount {
			amount = debtors[di].amount
		}
		transfers = append(transfers, Transfer{
			From:   debtors[di].name,
			To:     creditors[ci].name,
			Amount: amount,
		})

		creditors[ci].amount -= amount
		debtors[di].amount -= amount
		if creditors[ci].amount == 0 {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
		if debtors[di].amount == 0 {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
	}

	// Whatever one side still carries is within tolerance; drop it rather
	// than emit a payment below the minimum currency unit.
	return transfers, nil
}

// largest returns the index of the party with the greatest remaining
// amount, breaking ties by name so the result does not depend on map
// iteration order.
func largest(parties []party) int {
	best := 0
	for i := 1; i < len(parties); i++ {
		switch {
		case parties[i].amount > parties[best].amount:
			best = i
		case parties[i].amount == parties[best].amount && parties[i].name < parties[best].name:
			best = i
		}
	}
	return best
}
