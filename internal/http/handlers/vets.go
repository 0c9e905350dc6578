package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/repticare/storefront/internal/clients"
)

type VetsHandler struct{ c *clients.VetsClient }

func NewVetsHandler(c *clients.VetsClient) *VetsHandler { return &VetsHandler{c: c} }

func (h *VetsHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.ListVeterinarians(r.Context(), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "veterinarians request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}

func (h *VetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.GetVeterinarian(r.Context(), chi.URLParam(r, "id"), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "veterinarians request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}
