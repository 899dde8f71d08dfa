// Package models defines the core domain models for the bill splitter.
//
// The following models are actively used:
//   - Bill: a bill paid by one person, with items consumed by named people
//   - Item: an individual line item on a bill with its consumers
//   - OCRBill / OCRItem: the best-effort result of scanning a receipt image
//
// Participants are identified by name strings; there are no user accounts.
// Bills are supplied in full on every request and never stored, so models
// carry no persistence concerns.
//
// Validation lives here: a Bill is checked at the boundary via Validate,
// which reports a ValidationError locating the offending bill and item.
// The allocation code downstream assumes bills have already passed.
package models
