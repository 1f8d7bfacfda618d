package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Items []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is a single pizza line in an order request.
type CreateOrderItemRequest struct {
	PizzaID  string `json:"pizza_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// OrderResponse is the full order view returned by order-mutating endpoints.
// The tracking code is the only identifier exposed to customers.
type OrderResponse struct {
	Code        string              `json:"code"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	StartedAt   *time.Time          `json:"started_at,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
}

// OrderItemResponse is a single pizza line of an order view.
type OrderItemResponse struct {
	PizzaName string `json:"pizza_name"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// OrderStatusResponse is the customer-facing status view returned by
// GET /api/v1/orders/{code}/status.
type OrderStatusResponse struct {
	Code        string `json:"code"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

// QueueEntryResponse is one entry of the active queue view.
type QueueEntryResponse struct {
	Code      string              `json:"code"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	StartedAt *time.Time          `json:"started_at,omitempty"`
	Items     []OrderItemResponse `json:"items"`
}

// PizzaResponse is one menu entry returned by GET /api/v1/menu/pizzas.
type PizzaResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// ErrorResponse is the JSON error body for every non-2xx response.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			PizzaName: item.PizzaName(),
			Quantity:  item.Quantity(),
			Notes:     item.Notes(),
		})
	}

	return OrderResponse{
		Code:        aggregate.Code().String(),
		Status:      aggregate.Status().String(),
		Items:       items,
		CreatedAt:   aggregate.CreatedAt(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

func toQueueResponse(entries []queries.GetOrderQueueQueryResponse) []QueueEntryResponse {
	response := make([]QueueEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items := make([]OrderItemResponse, 0, len(entry.Items))
		for _, item := range entry.Items {
			items = append(items, OrderItemResponse{
				PizzaName: item.PizzaName,
				Quantity:  item.Quantity,
				Notes:     item.Notes,
			})
		}

		response = append(response, QueueEntryResponse{
			Code:      entry.Code,
			Status:    entry.Status,
			CreatedAt: entry.CreatedAt,
			StartedAt: entry.StartedAt,
			Items:     items,
		})
	}

	return response
}

func toMenuResponse(pizzas []queries.GetMenuQueryResponse) []PizzaResponse {
	response := make([]PizzaResponse, 0, len(pizzas))
	for _, pizza := range pizzas {
		response = append(response, PizzaResponse{
			ID:          pizza.ID,
			Name:        pizza.Name,
			Description: pizza.Description,
			Price:       pizza.Price,
		})
	}

	return response
}
