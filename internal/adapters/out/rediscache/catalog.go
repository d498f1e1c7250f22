// Package rediscache adds a read-through Redis cache in front of the product
// catalog. Checkout validates every line against the catalog, so the hot
// products are read far more often than they change.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// CachedCatalog decorates a ProductCatalog with a Redis read-through cache.
// Cache errors fall through to the underlying catalog; a broken cache slows
// checkout down, it never breaks it.
type CachedCatalog struct {
	inner  services.ProductCatalog
	client *redis.Client
	ttl    time.Duration
}

// NewCachedCatalog wraps the given catalog. A zero ttl uses the default.
func NewCachedCatalog(
	inner services.ProductCatalog, client *redis.Client, ttl time.Duration,
) (*CachedCatalog, error) {
	if inner == nil {
		return nil, errs.NewValueIsRequiredError("inner catalog")
	}
	if client == nil {
		return nil, errs.NewValueIsRequiredError("redis client")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &CachedCatalog{inner: inner, client: client, ttl: ttl}, nil
}

// cachedProduct is the Redis value format.
type cachedProduct struct {
	ID       string `json:"id"`
	VendorID string `json:"vendor_id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
}

// GetProduct returns the cached product, falling back to the underlying
// catalog on a miss or any cache error. Misses populate the cache.
func (c *CachedCatalog) GetProduct(ctx context.Context, id kernel.UUID) (services.Product, error) {
	if err := id.Validate(); err != nil {
		return services.Product{}, err
	}

	key := cacheKey(id)
	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		if product, decodeErr := decode(raw); decodeErr == nil {
			return product, nil
		}
		// A corrupt entry behaves like a miss.
	} else if !errors.Is(err, redis.Nil) {
		return c.inner.GetProduct(ctx, id)
	}

	product, err := c.inner.GetProduct(ctx, id)
	if err != nil {
		return services.Product{}, err
	}

	if encoded, encodeErr := encode(product); encodeErr == nil {
		c.client.Set(ctx, key, encoded, c.ttl)
	}
	return product, nil
}

func cacheKey(id kernel.UUID) string {
	return "product:" + id.String()
}

func encode(product services.Product) (string, error) {
	raw, err := json.Marshal(cachedProduct{
		ID:       product.ID.String(),
		VendorID: product.VendorID.String(),
		Name:     product.Name,
		Price:    product.Price.MinorUnits(),
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decode(raw string) (services.Product, error) {
	var cached cachedProduct
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return services.Product{}, err
	}

	id, err := kernel.UUIDFromString(cached.ID)
	if err != nil {
		return services.Product{}, err
	}
	vendorID, err := kernel.UUIDFromString(cached.VendorID)
	if err != nil {
		return services.Product{}, err
	}

	return services.Product{
		ID:       id,
		VendorID: vendorID,
		Name:     cached.Name,
		Price:    kernel.MoneyFromMinorUnits(cached.Price),
	}, nil
}
