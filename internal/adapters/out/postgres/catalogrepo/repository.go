// Package catalogrepo reads the authoritative product catalog. Checkout
// pricing is validated against these rows, never against client input.
package catalogrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDTO represents the database structure for catalog products.
// The price holds minor currency units.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Price    int64
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// GormProductCatalog implements the pricing validator's catalog port on the
// products table.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetProduct retrieves one product by ID.
func (c *GormProductCatalog) GetProduct(ctx context.Context, id kernel.UUID) (services.Product, error) {
	if err := id.Validate(); err != nil {
		return services.Product{}, err
	}

	var dto ProductDTO
	err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return services.Product{}, err
	}

	return toDomain(dto)
}

func toDomain(dto ProductDTO) (services.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return services.Product{}, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return services.Product{}, err
	}

	return services.Product{
		ID:       id,
		VendorID: vendorID,
		Name:     dto.Name,
		Price:    kernel.MoneyFromMinorUnits(dto.Price),
	}, nil
}
