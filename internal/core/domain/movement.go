// internal/core/domain/movement.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a ledger entry.
type MovementType string

const (
	MovementIn     MovementType = "IN"
	MovementOut    MovementType = "OUT"
	MovementReturn MovementType = "RETURN"
)

// IsValid reports whether t is a known movement type.
func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementReturn:
		return true
	}
	return false
}

// StockDelta returns the signed multiplier applied to item quantities
// when updating on-hand stock. IN and RETURN add, OUT subtracts.
func (t MovementType) StockDelta() int {
	if t == MovementOut {
		return -1
	}
	return 1
}

// Movement is an append-only ledger header. Once posted it is never
// updated or deleted; corrections are posted as new movements.
type Movement struct {
	ID           int64        `json:"id"`
	MovementType MovementType `json:"movement_type"`
	MovementDate time.Time    `json:"movement_date"`
	Notes        *string      `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Validate performs domain validation on the movement header.
func (m *Movement) Validate() error {
	if !m.MovementType.IsValid() {
		return NewValidationError("movement_type", "must be IN, OUT or RETURN")
	}
	return nil
}

// MovementItem is a single line of a movement. TotalPrice is always
// derived, never accepted from the caller.
type MovementItem struct {
	ID               int64           `json:"id"`
	MovementID       int64           `json:"movement_id"`
	ProductVariantID int64           `json:"product_variant_id"`
	Quantity         int             `json:"quantity"`
	PricePerUnit     decimal.Decimal `json:"price_per_unit"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Validate performs domain validation on a movement line.
func (i *MovementItem) Validate() error {
	if i.ProductVariantID <= 0 {
		return NewValidationError("product_variant_id", "is required")
	}
	if i.Quantity <= 0 {
		return NewValidationError("quantity", "must be greater than zero")
	}
	if i.PricePerUnit.IsNegative() {
		return NewValidationError("price_per_unit", "cannot be negative")
	}
	return nil
}

// ComputeTotal derives and stores the line total.
func (i *MovementItem) ComputeTotal() {
	i.TotalPrice = i.PricePerUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// MovementItemDetail is a movement line joined with catalog display
// fields for history and detail views.
type MovementItemDetail struct {
	MovementItem
	ProductName   string `json:"product_name"`
	VariantHandle string `json:"variant_handle"`
}

// MovementHistoryEntry is one ledger line of a variant's history,
// carrying the header fields it was posted under.
type MovementHistoryEntry struct {
	ItemID       int64           `json:"item_id"`
	MovementID   int64           `json:"movement_id"`
	MovementType MovementType    `json:"movement_type"`
	MovementDate time.Time       `json:"movement_date"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Notes        *string         `json:"notes,omitempty"`
}

// MovementFilter narrows movement listings. Zero values mean "no
// constraint"; dates are inclusive.
type MovementFilter struct {
	MovementType *MovementType `json:"movement_type,omitempty"`
	DateFrom     *time.Time    `json:"date_from,omitempty"`
	DateTo       *time.Time    `json:"date_to,omitempty"`
	Limit        int           `json:"limit,omitempty"`
	Offset       int           `json:"offset,omitempty"`
}

// StockLevel is the derived on-hand quantity for a variant, joined with
// catalog display fields. A variant with no ledger activity has no row;
// readers treat that as zero.
type StockLevel struct {
	ProductVariantID int64     `json:"product_variant_id"`
	Quantity         int       `json:"quantity"`
	ProductID        int64     `json:"product_id"`
	ProductName      string    `json:"product_name"`
	VariantHandle    string    `json:"variant_handle"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AvailabilityRequest asks whether a variant can cover a quantity.
type AvailabilityRequest struct {
	ProductVariantID int64 `json:"product_variant_id"`
	Quantity         int   `json:"quantity"`
}

// InsufficientStock describes a shortfall found during an availability
// check, with display fields for user-facing messages.
type InsufficientStock struct {
	ProductVariantID int64  `json:"product_variant_id"`
	Requested        int    `json:"requested"`
	Available        int    `json:"available"`
	ProductName      string `json:"product_name"`
	VariantHandle    string `json:"variant_handle"`
}

// ValuationLine values one in-stock variant at the product's current
// selling price.
type ValuationLine struct {
	ProductVariantID int64           `json:"product_variant_id"`
	ProductName      string          `json:"product_name"`
	VariantHandle    string          `json:"variant_handle"`
	Quantity         int             `json:"quantity"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	TotalValue       decimal.Decimal `json:"total_value"`
}

// ValuationReport aggregates valuation lines. TotalUnits and TotalValue
// are sums over all lines; VariantCount is the number of lines.
type ValuationReport struct {
	Lines        []ValuationLine `json:"lines"`
	VariantCount int             `json:"variant_count"`
	TotalUnits   int             `json:"total_units"`
	TotalValue   decimal.Decimal `json:"total_value"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

// NewValuationReport builds a report from its lines, computing the
// aggregate totals.
func NewValuationReport(lines []ValuationLine) *ValuationReport {
	report := &ValuationReport{
		Lines:        lines,
		VariantCount: len(lines),
		TotalValue:   decimal.Zero,
		GeneratedAt:  time.Now().UTC(),
	}
	for _, line := range lines {
		report.TotalUnits += line.Quantity
		report.TotalValue = report.TotalValue.Add(line.TotalValue)
	}
	return report
}

// VariantWithHistory pairs a variant with its full movement history for
// the detail view.
type VariantWithHistory struct {
	Variant ProductVariant         `json:"variant"`
	Stock   int                    `json:"stock"`
	History []MovementHistoryEntry `json:"history"`
}
