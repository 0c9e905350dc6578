package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/repticare/storefront/internal/auth"
	"github.com/repticare/storefront/internal/cart"
	"github.com/repticare/storefront/internal/clients"
	"github.com/repticare/storefront/internal/http/dto"
	"github.com/repticare/storefront/internal/notify"
)

// CartCookieName identifies anonymous carts. Authenticated users are keyed by
// the token subject instead, so their cart follows them across devices.
const CartCookieName = "cart_id"

type CartHandler struct {
	repo     cart.Repository
	notifier *notify.Transient
	catalog  *clients.CatalogClient
	logger   *log.Logger
}

func NewCartHandler(repo cart.Repository, notifier *notify.Transient, catalog *clients.CatalogClient, logger *log.Logger) *CartHandler {
	return &CartHandler{repo: repo, notifier: notifier, catalog: catalog, logger: logger}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.store(w, r)
	WriteJSON(w, http.StatusOK, dto.NewCartView(s.Cart()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		WriteError(w, r, http.StatusBadRequest, "missing productId")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	if body.Quantity < 1 {
		WriteError(w, r, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	p, err := h.catalog.FetchProduct(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, clients.ErrUpstreamStatus) {
			WriteError(w, r, http.StatusNotFound, "product not found")
			return
		}
		WriteError(w, r, http.StatusBadGateway, "catalog request failed: "+err.Error())
		return
	}

	s := h.store(w, r)
	out := s.AddItem(r.Context(), cart.Product{
		ID:            p.ProductID,
		Name:          p.Name,
		Price:         p.Price,
		ImageURL:      p.FirstImage(),
		StockQuantity: p.StockQuantity,
	}, body.Quantity)

	h.writeMutation(w, s, out)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	s := h.store(w, r)
	out := s.UpdateQuantity(r.Context(), chi.URLParam(r, "productId"), body.Quantity)
	h.writeMutation(w, s, out)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s := h.store(w, r)
	out := s.RemoveItem(r.Context(), chi.URLParam(r, "productId"))
	h.writeMutation(w, s, out)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	s := h.store(w, r)
	out := s.Clear(r.Context())
	h.writeMutation(w, s, out)
}

// Notices drains the owner's pending transient messages.
func (h *CartHandler) Notices(w http.ResponseWriter, r *http.Request) {
	msgs := h.notifier.Drain(h.owner(w, r), time.Now())
	if msgs == nil {
		msgs = []notify.Message{}
	}
	WriteJSON(w, http.StatusOK, msgs)
}

// store builds a per-request view over the owner's durable cart. Carts are
// single-writer per owner; concurrent tabs follow last-writer-wins.
func (h *CartHandler) store(w http.ResponseWriter, r *http.Request) *cart.Store {
	s := cart.NewStore(h.owner(w, r), h.repo, h.notifier, h.logger)
	s.Load(r.Context())
	return s
}

func (h *CartHandler) owner(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(auth.CookieName); err == nil {
		if sub := auth.Subject(c.Value); sub != "" {
			return sub
		}
	}
	if c, err := r.Cookie(CartCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   180 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *CartHandler) writeMutation(w http.ResponseWriter, s *cart.Store, out cart.Outcome) {
	resp := dto.CartMutationResponse{
		Outcome: string(out.Kind),
		Cart:    dto.NewCartView(s.Cart()),
	}

	if out.Kind == cart.OutcomeRejectedStock {
		resp.Message = fmt.Sprintf("Estoque insuficiente de %s: apenas %d disponíveis", out.Name, out.Stock)
		WriteJSON(w, http.StatusConflict, resp)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}
