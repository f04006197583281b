package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "sareeta/internal/delivery/context"
	"sareeta/internal/delivery/http/response"
	"sareeta/internal/domain/entity"
	"sareeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	orders usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// OrderLineResponse is one snapshot line of an order.
type OrderLineResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
}

// OrderResponse is the public shape of an order. Prices are in cents.
type OrderResponse struct {
	ID        uuid.UUID            `json:"id"`
	Items     []*OrderLineResponse `json:"items"`
	Total     int64                `json:"total"`
	CreatedAt time.Time            `json:"createdAt"`
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	lines := make([]*OrderLineResponse, 0, len(order.Items))
	for _, line := range order.Items {
		lines = append(lines, &OrderLineResponse{
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return &OrderResponse{
		ID:        order.ID,
		Items:     lines,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
}

// SubmitOrder handles converting the authenticated user's cart into an order.
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	username := deliverycontext.GetUsername(c)
	if username == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	order, err := h.orders.SubmitOrder(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order submitted successfully")
}

// OrderHistory handles listing the authenticated user's past orders.
func (h *OrderHandler) OrderHistory(c echo.Context) error {
	username := deliverycontext.GetUsername(c)
	if username == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	orders, err := h.orders.OrderHistory(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// OrderPickupCode serves the PNG QR code for an order pickup.
func (h *OrderHandler) OrderPickupCode(c echo.Context) error {
	username := deliverycontext.GetUsername(c)
	if username == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	png, err := h.orders.OrderPickupCode(c.Request().Context(), username, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
