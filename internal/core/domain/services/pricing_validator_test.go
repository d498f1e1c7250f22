package services_test

import (
	"context"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	products map[kernel.UUID]services.Product
}

func (s *stubCatalog) GetProduct(_ context.Context, id kernel.UUID) (services.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return services.Product{}, errs.NewObjectNotFoundError("productID", id.String())
	}
	return p, nil
}

func catalogWith(products ...services.Product) *stubCatalog {
	c := &stubCatalog{products: make(map[kernel.UUID]services.Product)}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func TestNewPricingValidator(t *testing.T) {
	t.Run("requires a catalog", func(t *testing.T) {
		_, err := services.NewPricingValidator(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPricingValidator_Validate(t *testing.T) {
	vendorID := kernel.NewUUID()
	jollof := services.Product{
		ID: kernel.NewUUID(), VendorID: vendorID,
		Name: "Jollof Rice", Price: kernel.MoneyFromMinorUnits(250000),
	}
	suya := services.Product{
		ID: kernel.NewUUID(), VendorID: vendorID,
		Name: "Suya", Price: kernel.MoneyFromMinorUnits(150000),
	}
	fee := kernel.MoneyFromMinorUnits(50000)

	t.Run("accepts matching prices and total", func(t *testing.T) {
		validator, err := services.NewPricingValidator(catalogWith(jollof, suya))
		require.NoError(t, err)

		lines := []services.ProposedLine{
			{ProductID: jollof.ID, UnitPrice: jollof.Price, Quantity: 2},
			{ProductID: suya.ID, UnitPrice: suya.Price, Quantity: 1},
		}
		claimed := kernel.MoneyFromMinorUnits(2*250000 + 150000 + 50000)

		items, total, err := validator.Validate(context.Background(), vendorID, lines, fee, claimed)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, claimed.MinorUnits(), total.MinorUnits())
		assert.Equal(t, "Jollof Rice", items[0].Name())
		assert.Equal(t, jollof.Price.MinorUnits(), items[0].UnitPrice().MinorUnits())
	})

	t.Run("tolerates one minor unit of drift", func(t *testing.T) {
		validator, err := services.NewPricingValidator(catalogWith(jollof))
		require.NoError(t, err)

		lines := []services.ProposedLine{
			{ProductID: jollof.ID, UnitPrice: kernel.MoneyFromMinorUnits(250001), Quantity: 1},
		}
		claimed := kernel.MoneyFromMinorUnits(250000 + 50000 - 1)

		items, _, err := validator.Validate(context.Background(), vendorID, lines, fee, claimed)

		require.NoError(t, err)
		// Persisted price is the authoritative one, not the client's.
		assert.Equal(t, int64(250000), items[0].UnitPrice().MinorUnits())
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		validator, err := services.NewPricingValidator(catalogWith(jollof))
		require.NoError(t, err)

		lines := []services.ProposedLine{
			{ProductID: kernel.NewUUID(), UnitPrice: jollof.Price, Quantity: 1},
		}

		_, _, err = validator.Validate(context.Background(), vendorID, lines, fee, jollof.Price)

		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("rejects product of another vendor", func(t *testing.T) {
		foreign := services.Product{
			ID: kernel.NewUUID(), VendorID: kernel.NewUUID(),
			Name: "Shawarma", Price: kernel.MoneyFromMinorUnits(100000),
		}
		validator, err := services.NewPricingValidator(catalogWith(foreign))
		require.NoError(t, err)

		lines := []services.ProposedLine{
			{ProductID: foreign.ID, UnitPrice: foreign.Price, Quantity: 1},
		}

		_, _, err = validator.Validate(context.Background(), vendorID, lines, fee, foreign.Price)

		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
		assert.Contains(t, err.Error(), "does not belong to vendor")
	})

	t.Run("rejects drifted unit price", func(t *testing.T) {
		validator, err := services.NewPricingValidator(catalogWith(jollof))
		require.NoError(t, err)

		lines := []services.ProposedLine{
			{ProductID: jollof.ID, UnitPrice: kernel.MoneyFromMinorUnits(200000), Quantity: 1},
		}

		_, _, err = validator.Validate(context.Background(), vendorID, lines, fee,
			kernel.MoneyFromMinorUnits(250000))

		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
		assert.Contains(t, err.Error(), "price mismatch")
	})

	t.Run("rejects drifted total", func(t *testing.T) {
		validator, err := services.NewPricingValidator(catalogWith(jollof))
		require.NoError(t, err)

		lines := []services.ProposedLine{
			{ProductID: jollof.ID, UnitPrice: jollof.Price, Quantity: 2},
		}
		claimed := kernel.MoneyFromMinorUnits(500000) // misses the delivery fee

		_, _, err = validator.Validate(context.Background(), vendorID, lines, fee, claimed)

		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
		assert.Contains(t, err.Error(), "total mismatch")
	})

	t.Run("rejects empty line list", func(t *testing.T) {
		validator, err := services.NewPricingValidator(catalogWith(jollof))
		require.NoError(t, err)

		_, _, err = validator.Validate(context.Background(), vendorID, nil, fee, fee)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
