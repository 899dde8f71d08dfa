package models

// Item represents a single line item on a bill.
// The item's total cost (Price × Quantity) is split equally among ConsumedBy.
type Item struct {
	// Name is the item description (e.g., "Pizza", "Beer").
	Name string `json:"name"`

	// Price is the per-unit price before tax and service charge.
	Price float64 `json:"price"`

	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`

	// ConsumedBy is the list of people sharing this item, in declaration
	// order. The order matters: when a split does not land on an exact
	// minor unit, the first consumers absorb the remainder.
	ConsumedBy []string `json:"consumed_by"`
}

// Total returns the item's total cost before fees.
func (i Item) Total() float64 {
	return i.Price * float64(i.Quantity)
}

// Bill represents one bill paid by a single person.
// Tax and service charge are fractions in [0, 1], not percentages,
// and apply to the bill's subtotal.
type Bill struct {
	// ID is a caller-supplied identifier, unique within a request and
	// stable across edits.
	ID string `json:"id"`

	// PaidBy is the name of the person who paid the bill.
	PaidBy string `json:"paid_by"`

	// TaxRate is the tax fraction applied to the subtotal.
	TaxRate float64 `json:"tax_rate"`

	// ServiceCharge is the service-charge fraction applied to the subtotal.
	ServiceCharge float64 `json:"service_charge"`

	// Items are the line items on the bill. Every item must have at
	// least one consumer.
	Items []Item `json:"items"`
}

// Validate checks the bill against the input contract. It returns a
// ValidationError locating the first offending field; a bill with any
// invalid item is rejected wholesale so the caller can fix it.
func (b Bill) Validate() error {
	if b.PaidBy == "" {
		return &ValidationError{BillID: b.ID, Field: "paid_by", Reason: "must not be empty"}
	}
	if b.TaxRate < 0 || b.TaxRate > 1 {
		return &ValidationError{BillID: b.ID, Field: "tax_rate", Reason: "must be a fraction between 0 and 1"}
	}
	if b.ServiceCharge < 0 || b.ServiceCharge > 1 {
		return &ValidationError{BillID: b.ID, Field: "service_charge", Reason: "must be a fraction between 0 and 1"}
	}
	if len(b.Items) == 0 {
		return &ValidationError{BillID: b.ID, Field: "items", Reason: "must contain at least one item"}
	}
	for i, item := range b.Items {
		if err := item.validate(b.ID, i+1); err != nil {
			return err
		}
	}
	return nil
}

func (i Item) validate(billID string, pos int) error {
	if i.Name == "" {
		return &ValidationError{BillID: billID, Item: pos, Field: "name", Reason: "must not be empty"}
	}
	if i.Price <= 0 {
		return &ValidationError{BillID: billID, Item: pos, Field: "price", Reason: "must be positive"}
	}
	if i.Quantity <= 0 {
		return &ValidationError{BillID: billID, Item: pos, Field: "quantity", Reason: "must be positive"}
	}
	if len(i.ConsumedBy) == 0 {
		return &ValidationError{BillID: billID, Item: pos, Field: "consumed_by", Reason: "must name at least one consumer"}
	}
	seen := make(map[string]bool, len(i.ConsumedBy))
	for _, name := range i.ConsumedBy {
		if name == "" {
			return &ValidationError{BillID: billID, Item: pos, Field: "consumed_by", Reason: "consumer names must not be empty"}
		}
		if seen[name] {
			return &ValidationError{BillID: billID, Item: pos, Field: "consumed_by", Reason: "duplicate consumer " + name}
		}
		seen[name] = true
	}
	return nil
}
