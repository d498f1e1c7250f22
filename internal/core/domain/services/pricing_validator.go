package services

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// Product is the authoritative catalog view of a purchasable item: who sells
// it and at what price. Names and prices snapshotted into orders come from
// here, never from the client.
type Product struct {
	ID       kernel.UUID
	VendorID kernel.UUID
	Name     string
	Price    kernel.Money
}

// ProductCatalog supplies authoritative product data for integrity checks.
type ProductCatalog interface {
	// GetProduct returns the product with the given id, or
	// errs.ErrObjectNotFound when no such product exists.
	GetProduct(ctx context.Context, id kernel.UUID) (Product, error)
}

// ProposedLine is one client-supplied order line before validation. The unit
// price is what the client displayed and is only compared, never persisted.
type ProposedLine struct {
	ProductID kernel.UUID
	UnitPrice kernel.Money
	Quantity  int
}

// PricingValidator is the domain service that verifies a proposed order
// against the authoritative catalog before any money moves. The client is
// untrusted: every referenced product must exist, belong to the order's
// vendor, and carry a price matching the catalog within tolerance, and the
// claimed total must match the server recomputation. On success it returns
// the server-trusted items and total that get persisted.
type PricingValidator struct {
	catalog ProductCatalog
}

// NewPricingValidator creates a PricingValidator backed by the given catalog.
func NewPricingValidator(catalog ProductCatalog) (*PricingValidator, error) {
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	return &PricingValidator{catalog: catalog}, nil
}

// Validate checks every proposed line and the claimed total against the
// catalog. It returns the server-trusted items and recomputed total
// (items subtotal plus delivery fee), or an IntegrityViolationError naming
// the first offending product or amount.
func (v *PricingValidator) Validate(
	ctx context.Context,
	vendorID kernel.UUID,
	lines []ProposedLine,
	deliveryFee kernel.Money,
	claimedTotal kernel.Money,
) ([]order.Item, kernel.Money, error) {
	if len(lines) == 0 {
		return nil, kernel.Money{}, errs.NewValueIsRequiredError("items")
	}
	if deliveryFee.IsNegative() {
		return nil, kernel.Money{}, errs.NewValueIsInvalidError("deliveryFee")
	}

	items := make([]order.Item, 0, len(lines))
	var subtotal kernel.Money

	for _, line := range lines {
		product, err := v.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, kernel.Money{}, errs.NewIntegrityViolationError(
				fmt.Sprintf("product %s not found", line.ProductID))
		}

		if !product.VendorID.IsEqual(vendorID) {
			return nil, kernel.Money{}, errs.NewIntegrityViolationError(
				fmt.Sprintf("product %s does not belong to vendor %s", product.ID, vendorID))
		}

		if !line.UnitPrice.WithinToleranceOf(product.Price) {
			return nil, kernel.Money{}, errs.NewIntegrityViolationError(
				fmt.Sprintf("price mismatch for product %s: client sent %s, authoritative price is %s",
					product.ID, line.UnitPrice, product.Price))
		}

		item, err := order.NewItem(product.ID, product.Name, product.Price, line.Quantity)
		if err != nil {
			return nil, kernel.Money{}, err
		}

		items = append(items, item)
		subtotal = subtotal.Add(item.Subtotal())
	}

	total := subtotal.Add(deliveryFee)
	if !claimedTotal.WithinToleranceOf(total) {
		return nil, kernel.Money{}, errs.NewIntegrityViolationError(
			fmt.Sprintf("total mismatch: client sent %s, server computed %s", claimedTotal, total))
	}

	return items, total, nil
}
