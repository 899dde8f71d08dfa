package calculator

import "billsplit/internal/money"

// Aggregate merges contributions from all bills into one net balance per
// person: what they are owed minus what they owe. Positive means the
// person is owed money, negative means they owe money.
//
// Because every contribution credits the payer and debits the consumer by
// the same amount, the balances always sum to exactly zero.
func Aggregate(contributions []Contribution) map[string]money.Amount {
	balances := make(map[string]money.Amount)
	for _, c := range contributions {
		if c.Payer == c.Consumer {
			continue
		}
		balances[c.Payer] += c.Amount
		balances[c.Consumer] -= c.Amount
	}
	return balances
}
