package handlers

import (
	"net/http"
	"sync"

	"github.com/repticare/storefront/internal/clients"
)

type HealthHandler struct {
	Probes []clients.HealthProbe
}

func (h *HealthHandler) Storefront(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "storefront",
	})
}

func (h *HealthHandler) Upstreams(w http.ResponseWriter, r *http.Request) {
	results := make([]clients.HealthResult, len(h.Probes))

	var wg sync.WaitGroup
	wg.Add(len(h.Probes))
	for i := range h.Probes {
		go func(i int) {
			defer wg.Done()
			results[i] = clients.CheckHealth(r.Context(), h.Probes[i])
		}(i)
	}
	wg.Wait()

	WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"service":  "storefront",
		"upstream": results,
	})
}
