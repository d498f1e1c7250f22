package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// CardMetadata is the reusable-card information the gateway returns with a
// verified charge.
type CardMetadata struct {
	AuthorizationCode string
	Last4             string
	CardType          string
	Bank              string
	ExpMonth          string
	ExpYear           string
}

// VerifyResult is the gateway's answer for a charge reference.
type VerifyResult struct {
	// Success reports whether the gateway confirmed the charge.
	Success bool

	// Amount is the amount the gateway actually settled. Callers credit
	// this figure, never the client-claimed one.
	Amount kernel.Money

	// Card carries reusable-card metadata, present only on success.
	Card CardMetadata
}

// PaymentGateway verifies charges against the external payment provider.
// The call is made with a bounded timeout and never while holding a database
// transaction open.
type PaymentGateway interface {
	// Verify asks the gateway whether the charge behind reference succeeded.
	// Transport and gateway failures surface GatewayVerificationFailed.
	Verify(ctx context.Context, reference string) (VerifyResult, error)
}
