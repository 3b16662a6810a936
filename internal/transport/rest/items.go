package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/service/wardrobe"
)

type itemService interface {
	List(ctx context.Context, c domain.Collection) ([]domain.Item, error)
	Get(ctx context.Context, c domain.Collection, id string) (domain.Item, error)
	Add(ctx context.Context, c domain.Collection, input wardrobe.AddInput) (domain.Item, error)
	Update(ctx context.Context, c domain.Collection, input wardrobe.UpdateInput) (domain.Item, error)
	Retire(ctx context.Context, c domain.Collection, input wardrobe.RetireInput) (domain.Item, error)
	Delete(ctx context.Context, c domain.Collection, id string) error
}

// ItemsHandler serves the item endpoints of both collections.
type ItemsHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemsHandler creates an ItemsHandler.
func NewItemsHandler(svc itemService, logger *slog.Logger) *ItemsHandler {
	return &ItemsHandler{svc: svc, log: logger.With("handler", "items")}
}

type addItemRequest struct {
	Name         string   `json:"name"`
	MainCategory string   `json:"mainCategory"`
	SubCategory  string   `json:"subCategory"`
	Season       string   `json:"season"`
	PurchaseDate string   `json:"purchaseDate"`
	Price        *float64 `json:"price"`
	Frequency    string   `json:"frequency"`
	Color        string   `json:"color"`
}

type updateItemRequest struct {
	Name         *string  `json:"name"`
	MainCategory *string  `json:"mainCategory"`
	SubCategory  *string  `json:"subCategory"`
	Season       *string  `json:"season"`
	PurchaseDate *string  `json:"purchaseDate"`
	Price        *float64 `json:"price"`
	ClearPrice   bool     `json:"clearPrice"`
	Frequency    *string  `json:"frequency"`
	Color        *string  `json:"color"`
}

type retireItemRequest struct {
	Reason string     `json:"reason"`
	Date   *time.Time `json:"date"`
}

type listResponse struct {
	Collection domain.Collection `json:"collection"`
	Items      []domain.Item     `json:"items"`
}

// List handles GET /v1/{collection}/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), c)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}

	writeJSON(w, http.StatusOK, listResponse{Collection: c, Items: items})
}

// Get handles GET /v1/{collection}/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	it, err := h.svc.Get(r.Context(), c, r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, it)
}

// Add handles POST /v1/{collection}/items.
func (h *ItemsHandler) Add(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	it, err := h.svc.Add(r.Context(), c, wardrobe.AddInput{
		Name:         req.Name,
		MainCategory: req.MainCategory,
		SubCategory:  req.SubCategory,
		Season:       req.Season,
		PurchaseDate: req.PurchaseDate,
		Price:        req.Price,
		Frequency:    req.Frequency,
		Color:        req.Color,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, it)
}

// Update handles PATCH /v1/{collection}/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	it, err := h.svc.Update(r.Context(), c, wardrobe.UpdateInput{
		ID:           r.PathValue("id"),
		Name:         req.Name,
		MainCategory: req.MainCategory,
		SubCategory:  req.SubCategory,
		Season:       req.Season,
		PurchaseDate: req.PurchaseDate,
		Price:        req.Price,
		ClearPrice:   req.ClearPrice,
		Frequency:    req.Frequency,
		Color:        req.Color,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, it)
}

// Retire handles POST /v1/{collection}/items/{id}/retire.
func (h *ItemsHandler) Retire(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req retireItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	it, err := h.svc.Retire(r.Context(), c, wardrobe.RetireInput{
		ID:     r.PathValue("id"),
		Reason: req.Reason,
		Date:   req.Date,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, it)
}

// Delete handles DELETE /v1/{collection}/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), c, r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
