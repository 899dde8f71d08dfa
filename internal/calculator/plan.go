package calculator

import (
	"sort"

	"billsplit/internal/money"
)

// Payment is one payment within a debtor's plan.
type Payment struct {
	To     string
	Amount money.Amount
}

// Plan lists everything one debtor has to pay. A person who owes nothing
// gets no plan.
type Plan struct {
	Name     string
	Payments []Payment
}

// Total returns the sum of the plan's payments.
func (p Plan) Total() money.Amount {
	var total money.Amount
	for _, payment := range p.Payments {
		total += payment.Amount
	}
	return total
}

// BuildPlans groups transfers by debtor into one payment plan per person
// who owes money. Payments within a plan are ordered by descending amount
// (recipient name ascending on ties); plans are ordered by descending
// total owed (debtor name ascending on ties).
func BuildPlans(transfers []Transfer) []Plan {
	byDebtor := make(map[string][]Payment)
	var debtors []string
	for _, t := range transfers {
		if t.Amount == 0 {
			continue
		}
		if _, seen := byDebtor[t.From]; !seen {
			debtors = append(debtors, t.From)
		}
		byDebtor[t.From] = append(byDebtor[t.From], Payment{To: t.To, Amount: t.Amount})
	}

	plans := make([]Plan, 0, len(debtors))
	for _, name := range debtors {
		payments := byDebtor[name]
		sort.Slice(payments, func(i, j int) bool {
			if payments[i].Amount != payments[j].Amount {
				return payments[i].Amount > payments[j].Amount
			}
			return payments[i].To < payments[j].To
		})
		plans = append(plans, Plan{Name: name, Payments: payments})
	}

	sort.Slice(plans, func(i, j int) bool {
		ti, tj := plans[i].Total(), plans[j].Total()
		if ti != tj {
			return ti > tj
		}
		return plans[i].Name < plans[j].Name
	})
	return plans
}
