package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PaymentMethod selects how a placed order is settled.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentWallet debits the customer's wallet atomically with order creation.
	PaymentWallet

	// PaymentCard verifies a gateway charge reference before creating the order.
	PaymentCard

	// PaymentDeferred creates the order unpaid; the customer settles it later
	// through the wallet payment operation.
	PaymentDeferred
)

// String returns the wire-format name of the payment method.
func (p PaymentMethod) String() string {
	switch p {
	case PaymentWallet:
		return "wallet"
	case PaymentCard:
		return "card"
	case PaymentDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Validate checks that the method is one of the defined values.
func (p PaymentMethod) Validate() error {
	if p != PaymentWallet && p != PaymentCard && p != PaymentDeferred {
		return errs.NewValueIsInvalidError("payment method")
	}
	return nil
}

// ParsePaymentMethod converts a wire-format payment method name into the enum.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "wallet":
		return PaymentWallet, nil
	case "card":
		return PaymentCard, nil
	case "deferred":
		return PaymentDeferred, nil
	default:
		return PaymentMethodUnknown, errs.NewValueIsInvalidError("payment method " + s)
	}
}

// PlaceOrderCommand represents a customer's checkout: the proposed lines and
// claimed total as displayed by the client, plus the chosen payment method.
// Everything money-related in here is untrusted until the pricing validator
// has reconciled it against the catalog.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       kernel.UUID
	vendorID         kernel.UUID
	lines            []services.ProposedLine
	deliveryFee      kernel.Money
	claimedTotal     kernel.Money
	deliveryAddress  string
	deliveryLocation *kernel.GeoPoint
	payment          PaymentMethod
	gatewayReference string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command. A card payment requires the
// gateway charge reference; other methods must not carry one.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	lines []services.ProposedLine,
	deliveryFee kernel.Money,
	claimedTotal kernel.Money,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	payment PaymentMethod,
	gatewayReference string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		deliveryFee:      deliveryFee,
		claimedTotal:     claimedTotal,
		deliveryLocation: deliveryLocation,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setVendorID(vendorID),
		cmd.setLines(lines),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPayment(payment, gatewayReference),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the client-generated identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the buyer placing the order.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID returns the merchant the order is placed against.
func (c PlaceOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Lines returns the client-proposed order lines.
func (c PlaceOrderCommand) Lines() []services.ProposedLine {
	lines := make([]services.ProposedLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// DeliveryFee returns the delivery fee the client was quoted.
func (c PlaceOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// ClaimedTotal returns the total the client displayed at checkout.
func (c PlaceOrderCommand) ClaimedTotal() kernel.Money {
	return c.claimedTotal
}

// DeliveryAddress returns the destination address text.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryLocation returns the optional destination coordinates.
func (c PlaceOrderCommand) DeliveryLocation() *kernel.GeoPoint {
	return c.deliveryLocation
}

// Payment returns the chosen payment method.
func (c PlaceOrderCommand) Payment() PaymentMethod {
	return c.payment
}

// GatewayReference returns the gateway charge reference for card payments.
func (c PlaceOrderCommand) GatewayReference() string {
	return c.gatewayReference
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []services.ProposedLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.lines = make([]services.ProposedLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *PlaceOrderCommand) setPayment(payment PaymentMethod, gatewayReference string) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	if payment == PaymentCard && gatewayReference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	if payment != PaymentCard && gatewayReference != "" {
		return errs.NewValueIsInvalidError("reference")
	}

	c.payment = payment
	c.gatewayReference = gatewayReference
	return nil
}
