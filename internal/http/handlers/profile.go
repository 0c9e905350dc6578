package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/repticare/storefront/internal/clients"
	"github.com/repticare/storefront/internal/http/dto"
	"github.com/repticare/storefront/internal/profile"
)

type ProfileHandler struct{ c *clients.ProfileClient }

func NewProfileHandler(c *clients.ProfileClient) *ProfileHandler { return &ProfileHandler{c: c} }

// Get proxies the backend profile, replacing the raw role/situation strings
// with the parsed enumeration plus display labels. Values the enumeration
// does not know come back as the explicit unknown variant.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.Get(r.Context(), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "profile request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		CopyUpstreamResponse(w, resp)
		return
	}

	var bp dto.BackendProfile
	if err := json.NewDecoder(resp.Body).Decode(&bp); err != nil {
		WriteError(w, r, http.StatusBadGateway, "profile response undecodable: "+err.Error())
		return
	}

	role := profile.ParseRole(bp.Role)
	situation := profile.ParseSituation(bp.Situation)
	WriteJSON(w, http.StatusOK, dto.Profile{
		ID:             bp.ID,
		Name:           bp.Name,
		Email:          bp.Email,
		Role:           string(role),
		RoleLabel:      role.Label(),
		Situation:      string(situation),
		SituationLabel: situation.Label(),
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.Update(r.Context(), r.Body, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "profile request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}
