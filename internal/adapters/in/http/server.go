// Package http exposes the pizzeria's use cases over a REST API.
// Customer endpoints work with tracking codes only; staff endpoints live
// under /api/v1/pizzeria.
package http

import (
	"errors"
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	takeNextOrderHandler  commands.TakeNextOrderCommandHandler
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	// Query handlers
	getOrderStatusHandler queries.GetOrderStatusQueryHandler
	getOrderQueueHandler  queries.GetOrderQueueQueryHandler
	getMenuHandler        queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	takeNextOrderHandler commands.TakeNextOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getOrderQueueHandler queries.GetOrderQueueQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		takeNextOrderHandler:  takeNextOrderHandler,
		markOrderReadyHandler: markOrderReadyHandler,
		completeOrderHandler:  completeOrderHandler,
		getOrderStatusHandler: getOrderStatusHandler,
		getOrderQueueHandler:  getOrderQueueHandler,
		getMenuHandler:        getMenuHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Customer endpoints
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:code/status", s.GetOrderStatus)
	api.GET("/menu/pizzas", s.GetMenu)

	// Staff endpoints
	api.GET("/pizzeria/queue", s.GetOrderQueue)
	api.POST("/pizzeria/orders/next", s.TakeNextOrder)
	api.PUT("/pizzeria/orders/:code/ready", s.MarkOrderReady)
	api.PUT("/pizzeria/orders/:code/complete", s.CompleteOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		pizzaID, err := kernel.UUIDFromString(item.PizzaID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid pizza id: "+item.PizzaID)
		}

		line, err := commands.NewOrderLine(pizzaID, item.Quantity, item.Notes)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order line: "+err.Error())
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateOrderCommand(lines)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrderStatus handles GET /api/v1/orders/{code}/status - customer status lookup.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tracking code")
	}

	query, err := queries.NewGetOrderStatusQuery(code)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tracking code")
	}

	status, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse(status))
}

// GetMenu handles GET /api/v1/menu/pizzas - lists orderable pizzas.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve menu")
	}

	return ctx.JSON(http.StatusOK, toMenuResponse(menu))
}

// GetOrderQueue handles GET /api/v1/pizzeria/queue - the active queue view.
func (s *Server) GetOrderQueue(ctx echo.Context) error {
	queue, err := s.getOrderQueueHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQueueQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve queue")
	}

	return ctx.JSON(http.StatusOK, toQueueResponse(queue))
}

// TakeNextOrder handles POST /api/v1/pizzeria/orders/next - claims the queue head.
func (s *Server) TakeNextOrder(ctx echo.Context) error {
	claimed, err := s.takeNextOrderHandler.Handle(ctx.Request().Context(), commands.NewTakeNextOrderCommand())
	if err != nil {
		return commandErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(claimed))
}

// MarkOrderReady handles PUT /api/v1/pizzeria/orders/{code}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tracking code")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(code)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tracking code")
	}

	updated, err := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// CompleteOrder handles PUT /api/v1/pizzeria/orders/{code}/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tracking code")
	}

	cmd, err := commands.NewCompleteOrderCommand(code)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tracking code")
	}

	updated, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// commandErrorResponse maps use-case errors onto HTTP status codes:
// missing orders, pizzas and an empty queue become 404, rejected state
// transitions and invalid values 400, and an unabsorbed claim conflict 409.
func commandErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrPizzaNotFound),
		errors.Is(err, commands.ErrNoPendingOrders),
		errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrVersionConflict):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, ErrorResponse{
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}
