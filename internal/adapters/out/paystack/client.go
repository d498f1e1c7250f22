// Package paystack verifies charges against the Paystack REST API. The
// adapter only reads: charging happens on the client side, and the server
// trusts nothing but the gateway's own answer for a reference.
package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

const defaultBaseURL = "https://api.paystack.co"

// Client implements the PaymentGateway port against Paystack's transaction
// verify endpoint.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a gateway client. baseURL may be empty to use the
// production endpoint; the secret key is required.
func NewClient(baseURL, secretKey string) (*Client, error) {
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("secretKey")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// verifyResponse mirrors the gateway's transaction verify payload. Amounts
// arrive in minor currency units already.
type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status        string `json:"status"`
		Amount        int64  `json:"amount"`
		Currency      string `json:"currency"`
		Authorization struct {
			AuthorizationCode string `json:"authorization_code"`
			Last4             string `json:"last4"`
			CardType          string `json:"card_type"`
			Bank              string `json:"bank"`
			ExpMonth          string `json:"exp_month"`
			ExpYear           string `json:"exp_year"`
			Reusable          bool   `json:"reusable"`
		} `json:"authorization"`
	} `json:"data"`
}

// Verify asks the gateway whether the charge behind reference succeeded.
func (c *Client) Verify(ctx context.Context, reference string) (ports.VerifyResult, error) {
	if reference == "" {
		return ports.VerifyResult{}, errs.NewValueIsRequiredError("reference")
	}

	endpoint := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, url.PathEscape(reference))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.VerifyResult{}, errs.NewGatewayVerificationFailedErrorWithCause(reference, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.VerifyResult{}, errs.NewGatewayVerificationFailedErrorWithCause(reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.VerifyResult{}, errs.NewObjectNotFoundError("transaction", reference)
	}
	if resp.StatusCode != http.StatusOK {
		return ports.VerifyResult{}, errs.NewGatewayVerificationFailedErrorWithCause(
			reference, fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	var payload verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.VerifyResult{}, errs.NewGatewayVerificationFailedErrorWithCause(reference, err)
	}

	result := ports.VerifyResult{
		Success: payload.Status && payload.Data.Status == "success",
		Amount:  kernel.MoneyFromMinorUnits(payload.Data.Amount),
	}
	if result.Success && payload.Data.Authorization.Reusable {
		result.Card = ports.CardMetadata{
			AuthorizationCode: payload.Data.Authorization.AuthorizationCode,
			Last4:             payload.Data.Authorization.Last4,
			CardType:          payload.Data.Authorization.CardType,
			Bank:              payload.Data.Authorization.Bank,
			ExpMonth:          payload.Data.Authorization.ExpMonth,
			ExpYear:           payload.Data.Authorization.ExpYear,
		}
	}

	return result, nil
}
