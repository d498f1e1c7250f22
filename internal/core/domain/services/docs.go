// Package services contains stateless domain services that span aggregates:
// catalog-backed order integrity validation and payout settlement math.
package services
