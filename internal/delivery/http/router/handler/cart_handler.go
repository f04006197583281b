package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "sareeta/internal/delivery/context"
	"sareeta/internal/delivery/http/response"
	"sareeta/internal/domain/entity"
	"sareeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	carts  usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(carts usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger,
	}
}

// ModifyCartRequest is the payload for cart add and remove operations.
type ModifyCartRequest struct {
	ItemID   string `json:"itemId" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// CartLineResponse is one line of the cart.
type CartLineResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	Name      string    `json:"name,omitempty"`
	UnitPrice int64     `json:"unitPrice,omitempty"`
	Quantity  int       `json:"quantity"`
}

// CartResponse is the public shape of a cart.
type CartResponse struct {
	ID    uuid.UUID           `json:"id"`
	Items []*CartLineResponse `json:"items"`
	Total int64               `json:"total"`
}

func toCartResponse(cart *entity.Cart) *CartResponse {
	lines := make([]*CartLineResponse, 0, len(cart.Items))
	for _, line := range cart.Items {
		lr := &CartLineResponse{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
		if line.Item != nil {
			lr.Name = line.Item.Name
			lr.UnitPrice = line.Item.Price
		}
		lines = append(lines, lr)
	}

	return &CartResponse{
		ID:    cart.ID,
		Items: lines,
		Total: cart.Total(),
	}
}

func (h *CartHandler) bindModifyRequest(c echo.Context) (*usecase.ModifyCartInput, error) {
	username := deliverycontext.GetUsername(c)
	if username == "" {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var input ModifyCartRequest
	if err := c.Bind(&input); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return nil, errors.WithStack(err)
	}

	itemID, err := uuid.Parse(input.ItemID)
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	return &usecase.ModifyCartInput{
		Username: username,
		ItemID:   itemID,
		Quantity: input.Quantity,
	}, nil
}

// AddToCart handles adding items to the authenticated user's cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	input, err := h.bindModifyRequest(c)
	if input == nil {
		return err
	}

	cart, err := h.carts.AddToCart(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "Items added to cart")
}

// RemoveFromCart handles removing items from the authenticated user's cart.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	input, err := h.bindModifyRequest(c)
	if input == nil {
		return err
	}

	cart, err := h.carts.RemoveFromCart(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "Items removed from cart")
}

// GetCart handles fetching the authenticated user's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	username := deliverycontext.GetUsername(c)
	if username == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	cart, err := h.carts.GetCart(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "")
}
