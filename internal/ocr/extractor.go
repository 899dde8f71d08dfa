// Package ocr extracts bill details from receipt images.
//
// Extraction is best-effort: the result is a starting point the user must
// review and correct, and it never includes consumer assignments. The core
// settlement pipeline does not depend on this package.
package ocr

import (
	"context"

	"billsplit/internal/models"
)

// Extractor turns a receipt image into a best-effort bill guess.
type Extractor interface {
	// Extract analyzes the image and returns recognized items plus the
	// tax and service-charge rates, defaulting both rates to zero when
	// they are not visible on the receipt.
	Extract(ctx context.Context, image []byte, mimeType string) (*models.OCRBill, error)
}
