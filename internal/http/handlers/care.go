package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/repticare/storefront/internal/clients"
)

type CareHandler struct{ c *clients.CareClient }

func NewCareHandler(c *clients.CareClient) *CareHandler { return &CareHandler{c: c} }

func (h *CareHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.ListLocations(r.Context(), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "care locations request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}

func (h *CareHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.GetLocation(r.Context(), chi.URLParam(r, "id"), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "care locations request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}
