// Package calculator implements the settlement pipeline: allocating bill
// costs to consumers, aggregating net balances, and netting balances into
// a small set of direct payments.
//
// All arithmetic runs in currency minor units (money.Amount) so sums are
// exact. Every function is pure: inputs are never mutated and no state is
// kept between calls, so concurrent use is safe.
package calculator

import (
	"github.com/shopspring/decimal"

	"billsplit/internal/models"
	"billsplit/internal/money"
)

// Contribution records that Consumer owes Payer Amount for one bill.
type Contribution struct {
	Payer    string
	Consumer string
	Amount   money.Amount
}

// Allocate distributes one bill's cost across the people who consumed it.
//
// Each item's total (price × quantity) is split equally among its consumers
// in minor units; when the division leaves a remainder, the first consumers
// in declared order absorb one extra unit each, so item shares always sum
// exactly to the item total. Each consumer's aggregate item share is then
// inflated by (1 + tax_rate + service_charge), making fees proportional to
// consumption rather than split evenly.
//
// The payer never owes themselves: their own share is not emitted.
// Invalid bills are rejected wholesale with a models.ValidationError.
func Allocate(bill models.Bill) ([]Contribution, error) {
	if err := bill.Validate(); err != nil {
		return nil, err
	}

	// Raw item shares per consumer, keyed by name but walked in first-seen
	// order to keep output deterministic.
	shares := make(map[string]money.Amount)
	var order []string

	for _, item := range bill.Items {
		total := money.FromFloat(item.Price) * money.Amount(item.Quantity)
		n := money.Amount(len(item.ConsumedBy))
		base, remainder := total/n, total%n

		for i, name := range item.ConsumedBy {
			if _, seen := shares[name]; !seen {
				order = append(order, name)
			}
			share := base
			if money.Amount(i) < remainder {
				share++
			}
			shares[name] += share
		}
	}

	fees := decimal.NewFromInt(1).
		Add(decimal.NewFromFloat(bill.TaxRate)).
		Add(decimal.NewFromFloat(bill.ServiceCharge))

	contributions := make([]Contribution, 0, len(order))
	for _, name := range order {
		if name == bill.PaidBy {
			continue
		}
		contributions = append(contributions, Contribution{
			Payer:    bill.PaidBy,
			Consumer: name,
			Amount:   shares[name].Scale(fees),
		})
	}
	return contributions, nil
}
