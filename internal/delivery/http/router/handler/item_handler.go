package handler

import (
	"log/slog"
	"net/http"

	"sareeta/internal/delivery/http/response"
	"sareeta/internal/domain/entity"
	"sareeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for catalog handlers.
type ItemHandler struct {
	items  usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(items usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		items:  items,
		logger: logger,
	}
}

// ItemResponse is the public shape of a catalog item. Price is in cents.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
}

func toItemResponse(item *entity.Item) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
	}
}

func toItemResponses(items []*entity.Item) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}

	return out
}

// ListItems handles listing the whole catalog.
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.items.ListItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponses(items), "")
}

// GetItemByID handles lookup of a single catalog item.
func (h *ItemHandler) GetItemByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	item, err := h.items.GetItemByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item), "")
}

// GetItemsByName handles lookup of catalog items by name.
func (h *ItemHandler) GetItemsByName(c echo.Context) error {
	items, err := h.items.GetItemsByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponses(items), "")
}
