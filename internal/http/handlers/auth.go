package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/repticare/storefront/internal/auth"
	"github.com/repticare/storefront/internal/clients"
	"github.com/repticare/storefront/internal/http/dto"
)

type AuthHandler struct{ c *clients.AuthClient }

func NewAuthHandler(c *clients.AuthClient) *AuthHandler { return &AuthHandler{c: c} }

// Login forwards the credentials to the backend and, on success, plants the
// bearer token in the token cookie. The storefront never mints or verifies
// tokens itself.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.Login(r.Context(), r.Body, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "auth request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		CopyUpstreamResponse(w, resp)
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "auth response unreadable: "+err.Error())
		return
	}

	var lr dto.LoginResponse
	if err := json.Unmarshal(body, &lr); err != nil || lr.Token == "" {
		WriteError(w, r, http.StatusBadGateway, "auth response missing token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    lr.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.Register(r.Context(), r.Body, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "auth request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}

// Logout clears the token cookie. The token itself stays valid until it
// expires; revocation is the backend's concern.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
