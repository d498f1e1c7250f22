// Package http implements the REST API on top of the command and query
// handlers. Handlers translate transport concerns only: identity comes from
// the verified JWT, money figures pass through as minor units, and domain
// errors map centrally onto status codes.
package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payout"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the generated ServerInterface. It coordinates between
// HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler    commands.PlaceOrderCommandHandler
	updateStatusHandler  commands.UpdateOrderStatusCommandHandler
	claimOrderHandler    commands.ClaimOrderCommandHandler
	payOrderHandler      commands.PayOrderCommandHandler
	verifyTopUpHandler   commands.VerifyTopUpCommandHandler
	requestPayoutHandler commands.RequestPayoutCommandHandler
	processPayoutHandler commands.ProcessPayoutCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getWalletHandler         queries.GetWalletStatementQueryHandler
	getPendingPayoutsHandler queries.GetPendingPayoutsQueryHandler
	getNotificationsHandler  queries.GetNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	verifyTopUpHandler commands.VerifyTopUpCommandHandler,
	requestPayoutHandler commands.RequestPayoutCommandHandler,
	processPayoutHandler commands.ProcessPayoutCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getWalletHandler queries.GetWalletStatementQueryHandler,
	getPendingPayoutsHandler queries.GetPendingPayoutsQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		claimOrderHandler:        claimOrderHandler,
		payOrderHandler:          payOrderHandler,
		verifyTopUpHandler:       verifyTopUpHandler,
		requestPayoutHandler:     requestPayoutHandler,
		processPayoutHandler:     processPayoutHandler,
		getOrderHandler:          getOrderHandler,
		getWalletHandler:         getWalletHandler,
		getPendingPayoutsHandler: getPendingPayoutsHandler,
		getNotificationsHandler:  getNotificationsHandler,
	}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if principal.Role != order.ActorCustomer {
		return forbidden(ctx, "only customers can place orders")
	}

	var req servers.PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID, err := kernel.UUIDFromBytes(req.VendorId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]services.ProposedLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductId[:])
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		lines = append(lines, services.ProposedLine{
			ProductID: productID,
			UnitPrice: kernel.MoneyFromMinorUnits(item.UnitPrice),
			Quantity:  item.Quantity,
		})
	}

	var location *kernel.GeoPoint
	if req.DeliveryLocation != nil {
		point, locErr := kernel.NewGeoPoint(req.DeliveryLocation.Lat, req.DeliveryLocation.Lng)
		if locErr != nil {
			return writeError(ctx, locErr)
		}
		location = &point
	}

	payment, err := commands.ParsePaymentMethod(string(req.PaymentMethod))
	if err != nil {
		return writeError(ctx, err)
	}
	var gatewayReference string
	if req.GatewayReference != nil {
		gatewayReference = *req.GatewayReference
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, principal.UserID, vendorID, lines,
		kernel.MoneyFromMinorUnits(req.DeliveryFee),
		kernel.MoneyFromMinorUnits(req.Total),
		req.DeliveryAddress, location, payment, gatewayReference,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if payment != commands.PaymentDeferred {
		recordPayment(payment.String(), err)
	}
	if err != nil {
		return writeError(ctx, err)
	}
	recordOrderPlaced()

	status := order.PendingAcceptance
	if payment == commands.PaymentDeferred {
		status = order.StatusNewOrder
	}
	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Id:     orderID.Bytes(),
		Status: status.String(),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	if _, ok := principalFrom(ctx); !ok {
		return unauthorized(ctx)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(result))
}

// UpdateOrderStatus handles POST /api/v1/orders/{orderId}/status. The acting
// role is taken from the token, never from the request.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req servers.UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	to, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, to, principal.Role, principal.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	recordStatusTransition(to.String())
	return ctx.NoContent(http.StatusNoContent)
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim.
func (s *Server) ClaimOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if principal.Role != order.ActorRider {
		return forbidden(ctx, "only riders can claim orders")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewClaimOrderCommand(id, principal.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /api/v1/orders/{orderId}/pay.
func (s *Server) PayOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if principal.Role != order.ActorCustomer {
		return forbidden(ctx, "only customers can pay for orders")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewPayOrderCommand(id, principal.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	recordPayment("wallet", err)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetWalletStatement handles GET /api/v1/wallet.
func (s *Server) GetWalletStatement(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetWalletStatementQuery(principal.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	statement, err := s.getWalletHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	transactions := make([]servers.Transaction, len(statement.Transactions))
	for i, tx := range statement.Transactions {
		var reference *string
		if tx.Reference != "" {
			ref := tx.Reference
			reference = &ref
		}
		transactions[i] = servers.Transaction{
			Id:          tx.ID.Bytes(),
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			Reference:   reference,
			CreatedAt:   tx.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.WalletStatement{
		Balance:      statement.Balance,
		Transactions: transactions,
	})
}

// VerifyTopUp handles POST /api/v1/wallet/topup/verify.
func (s *Server) VerifyTopUp(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req servers.VerifyTopUpRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyTopUpCommand(principal.UserID, req.Reference)
	if err != nil {
		return writeError(ctx, err)
	}

	balance, err := s.verifyTopUpHandler.Handle(ctx.Request().Context(), cmd)
	recordPayment("card", err)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.TopUpResult{
		NewBalance: balance.MinorUnits(),
	})
}

// RequestPayout handles POST /api/v1/payouts.
func (s *Server) RequestPayout(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req servers.RequestPayoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	earnerType, err := payout.ParseEarnerType(string(req.EarnerType))
	if err != nil {
		return writeError(ctx, err)
	}
	if !roleMayWithdraw(principal.Role, earnerType) {
		return forbidden(ctx, "earner type does not match caller role")
	}

	cmd, err := commands.NewRequestPayoutCommand(
		kernel.NewUUID(), principal.UserID, earnerType,
		kernel.MoneyFromMinorUnits(req.Amount),
		payout.BankDetails{
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			AccountName:   req.AccountName,
		},
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.requestPayoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetPendingPayouts handles GET /api/v1/payouts/pending.
func (s *Server) GetPendingPayouts(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if principal.Role != order.ActorAdmin {
		return forbidden(ctx, "only administrators can list pending payouts")
	}

	pending, err := s.getPendingPayoutsHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingPayoutsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.PayoutRequest, len(pending))
	for i, request := range pending {
		response[i] = servers.PayoutRequest{
			Id:            request.ID.Bytes(),
			UserId:        request.UserID.Bytes(),
			EarnerType:    request.EarnerType,
			Amount:        request.Amount,
			BankName:      request.BankName,
			AccountNumber: request.AccountNumber,
			AccountName:   request.AccountName,
			RequestedAt:   request.RequestedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ProcessPayout handles POST /api/v1/payouts/{payoutId}/process.
func (s *Server) ProcessPayout(ctx echo.Context, payoutId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if principal.Role != order.ActorAdmin {
		return forbidden(ctx, "only administrators can process payouts")
	}

	var req servers.ProcessPayoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(payoutId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var decision payout.Status
	switch req.Decision {
	case servers.Processed:
		decision = payout.Processed
	case servers.Rejected:
		decision = payout.Rejected
	default:
		return badRequest(ctx, "Invalid decision")
	}

	var notes string
	if req.Notes != nil {
		notes = *req.Notes
	}

	cmd, err := commands.NewProcessPayoutCommand(id, decision, notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.processPayoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetNotifications handles GET /api/v1/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetNotificationsQuery(principal.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Notification, len(notifications))
	for i, n := range notifications {
		var orderID *openapi_types.UUID
		if n.OrderID != nil {
			raw := n.OrderID.Bytes()
			orderID = &raw
		}
		response[i] = servers.Notification{
			Id:        n.ID.Bytes(),
			Kind:      n.Kind,
			Title:     n.Title,
			Message:   n.Message,
			OrderId:   orderID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func orderToResponse(result queries.GetOrderQueryResponse) servers.Order {
	var riderID *openapi_types.UUID
	if result.RiderID != nil {
		raw := result.RiderID.Bytes()
		riderID = &raw
	}

	items := make([]servers.OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	return servers.Order{
		Id:              result.ID.Bytes(),
		CustomerId:      result.CustomerID.Bytes(),
		VendorId:        result.VendorID.Bytes(),
		RiderId:         riderID,
		Items:           items,
		TotalAmount:     result.TotalAmount,
		DeliveryFee:     result.DeliveryFee,
		Status:          result.Status,
		DeliveryAddress: result.DeliveryAddress,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}
}

func roleMayWithdraw(role order.Actor, earnerType payout.EarnerType) bool {
	switch earnerType {
	case payout.EarnerVendor:
		return role == order.ActorVendor
	case payout.EarnerRider:
		return role == order.ActorRider
	default:
		return false
	}
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing authentication",
	})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, servers.Error{
		Code:    http.StatusForbidden,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
