package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/repticare/storefront/internal/clients"
)

type CatalogHandler struct{ c *clients.CatalogClient }

func NewCatalogHandler(c *clients.CatalogClient) *CatalogHandler { return &CatalogHandler{c: c} }

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.ListProducts(r.Context(), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "catalog request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.GetProduct(r.Context(), chi.URLParam(r, "id"), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "catalog request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}
