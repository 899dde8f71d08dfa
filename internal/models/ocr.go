package models

// OCRItem is one line item recognized on a scanned receipt.
type OCRItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OCRBill is the best-effort result of extracting a receipt image.
// It deliberately has no paid_by and no per-item consumers: the scanner
// cannot know who consumed what, so the caller must assign consumers
// before submitting the bill for settlement.
type OCRBill struct {
	Items         []OCRItem `json:"items"`
	TaxRate       float64   `json:"tax_rate"`
	ServiceCharge float64   `json:"service_charge"`
}
