// Package http exposes the order workflow over REST using echo.
// The adapter translates HTTP requests into commands and queries and maps the
// domain error taxonomy onto status codes. Authentication is external; the
// acting actor arrives pre-verified in the X-Actor-ID header.
package http

import (
	"errors"
	"net/http"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorIDHeader carries the authenticated actor's identifier.
const ActorIDHeader = "X-Actor-ID"

// Error is the JSON error payload returned by every failing endpoint.
type Error struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	CurrentStatus string `json:"currentStatus,omitempty"`
}

// NewOrderRequest is the payload for creating an order.
type NewOrderRequest struct {
	ProductRef     string `json:"productRef"`
	Quantity       int    `json:"quantity"`
	ManufacturerID string `json:"manufacturerId"`
}

// StatusChangeRequest is the payload for transitions that keep custody in place.
type StatusChangeRequest struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// CustodyChangeRequest is the payload for transitions that hand the order over.
type CustodyChangeRequest struct {
	Status       string `json:"status"`
	NewCustodian string `json:"newCustodianId"`
	Description  string `json:"description"`
}

// Order is the JSON representation of an order's current state.
type Order struct {
	ID          string    `json:"id"`
	ProductRef  string    `json:"productRef"`
	Quantity    int       `json:"quantity"`
	OriginID    string    `json:"originId"`
	CustodianID string    `json:"custodianId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int       `json:"version"`
}

// HistoryEvent is the JSON representation of one audit trail entry.
type HistoryEvent struct {
	ID              string    `json:"id"`
	Sequence        int       `json:"sequence"`
	RecordedAt      time.Time `json:"recordedAt"`
	ActorID         string    `json:"actorId"`
	FromStatus      string    `json:"fromStatus"`
	ToStatus        string    `json:"toStatus"`
	FromCustodianID string    `json:"fromCustodianId"`
	ToCustodianID   string    `json:"toCustodianId"`
	Description     string    `json:"description"`
}

// Actor is the JSON representation of a directory entry.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getActorOrdersHandler  queries.GetActorOrdersQueryHandler
	getActorsHandler       queries.GetActorsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getActorOrdersHandler queries.GetActorOrdersQueryHandler,
	getActorsHandler queries.GetActorsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		getOrderHandler:        getOrderHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		getActorOrdersHandler:  getActorOrdersHandler,
		getActorsHandler:       getActorsHandler,
	}
}

// RegisterRoutes wires the REST surface onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.PUT("/orders/:id/custody", s.TransferOrderCustody)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.GET("/orders/made", s.GetOrdersMade)
	api.GET("/orders/received", s.GetOrdersReceived)
	api.GET("/actors", s.GetActors)
}

// CreateOrder handles POST /api/v1/orders - places a new order with a manufacturer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actingID, err := actorID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request NewOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	manufacturerID, err := kernel.UUIDFromString(request.ManufacturerID)
	if err != nil {
		return badRequest(ctx, "Invalid manufacturer id")
	}

	cmd, err := commands.NewCreateOrderCommand(request.ProductRef, request.Quantity, actingID, manufacturerID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderJSON(created))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - applies a
// transition that keeps custody in place (accept, reject, complete).
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var request StatusChangeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transition(ctx, request.Status, "", request.Description)
}

// TransferOrderCustody handles PUT /api/v1/orders/:id/custody - applies a
// transition that hands the order to a new custodian (ship, deliver).
func (s *Server) TransferOrderCustody(ctx echo.Context) error {
	var request CustodyChangeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if request.NewCustodian == "" {
		return badRequest(ctx, "newCustodianId is required")
	}

	return s.transition(ctx, request.Status, request.NewCustodian, request.Description)
}

func (s *Server) transition(ctx echo.Context, status, newCustodian, description string) error {
	actingID, err := actorID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	requested, err := order.StatusFromString(status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+status)
	}

	var custodianID *kernel.UUID
	if newCustodian != "" {
		id, custodianErr := kernel.UUIDFromString(newCustodian)
		if custodianErr != nil {
			return badRequest(ctx, "Invalid custodian id")
		}
		custodianID = &id
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, requested, custodianID, actingID, description)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderJSON(updated))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves an order's current state.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewJSON(view))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - retrieves the audit
// trail, oldest first unless ?order=desc.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	descending := ctx.QueryParam("order") == "desc"

	query, err := queries.NewGetOrderHistoryQuery(orderID, descending)
	if err != nil {
		return badRequest(ctx, "Invalid history request")
	}

	trail, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]HistoryEvent, len(trail))
	for i, entry := range trail {
		response[i] = HistoryEvent{
			ID:              entry.ID.String(),
			Sequence:        entry.Sequence,
			RecordedAt:      entry.RecordedAt,
			ActorID:         entry.ActorID.String(),
			FromStatus:      entry.FromStatus.String(),
			ToStatus:        entry.ToStatus.String(),
			FromCustodianID: entry.FromCustodianID.String(),
			ToCustodianID:   entry.ToCustodianID.String(),
			Description:     entry.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersMade handles GET /api/v1/orders/made - lists orders the acting actor created.
func (s *Server) GetOrdersMade(ctx echo.Context) error {
	return s.actorOrders(ctx, queries.RelationMade)
}

// GetOrdersReceived handles GET /api/v1/orders/received - lists orders the
// acting actor currently holds custody of.
func (s *Server) GetOrdersReceived(ctx echo.Context) error {
	return s.actorOrders(ctx, queries.RelationReceived)
}

func (s *Server) actorOrders(ctx echo.Context, relation queries.OrderRelation) error {
	actingID, err := actorID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetActorOrdersQuery(actingID, relation)
	if err != nil {
		return badRequest(ctx, "Invalid request")
	}

	orders, err := s.getActorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, view := range orders {
		response[i] = orderViewJSON(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActors handles GET /api/v1/actors - lists directory entries, optionally
// filtered with ?role=.
func (s *Server) GetActors(ctx echo.Context) error {
	query := queries.NewGetActorsQuery()

	if roleName := ctx.QueryParam("role"); roleName != "" {
		role, err := actor.RoleFromString(roleName)
		if err != nil {
			return badRequest(ctx, "Invalid role: "+roleName)
		}

		query, err = queries.NewGetActorsQueryWithRole(role)
		if err != nil {
			return badRequest(ctx, "Invalid role: "+roleName)
		}
	}

	actors, err := s.getActorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Actor, len(actors))
	for i, entry := range actors {
		response[i] = Actor{
			ID:    entry.ID.String(),
			Name:  entry.Name,
			Email: entry.Email,
			Role:  entry.Role.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderJSON(aggregate *order.Order) Order {
	return Order{
		ID:          aggregate.ID().String(),
		ProductRef:  aggregate.ProductRef(),
		Quantity:    aggregate.Quantity(),
		OriginID:    aggregate.OriginID().String(),
		CustodianID: aggregate.CustodianID().String(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		Version:     aggregate.Version(),
	}
}

func orderViewJSON(view queries.OrderResponse) Order {
	return Order{
		ID:          view.ID.String(),
		ProductRef:  view.ProductRef,
		Quantity:    view.Quantity,
		OriginID:    view.OriginID.String(),
		CustodianID: view.CustodianID.String(),
		Status:      view.Status.String(),
		CreatedAt:   view.CreatedAt,
		Version:     view.Version,
	}
}

func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(ActorIDHeader))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing or malformed " + ActorIDHeader + " header",
	})
}

// domainError maps the domain error taxonomy onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var conflictErr *commands.TransitionConflictError

	switch {
	case errors.As(err, &conflictErr):
		return ctx.JSON(http.StatusConflict, Error{
			Code:          http.StatusConflict,
			Message:       "Order was transitioned concurrently",
			CurrentStatus: conflictErr.CurrentStatus.String(),
		})
	case errors.Is(err, commands.ErrTransitionConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order was transitioned concurrently",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, services.ErrNotCustodian):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Acting actor does not hold custody of this order",
		})
	case errors.Is(err, order.ErrOrderTerminal),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCustodianRoleNotEligible):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal error",
	})
}
