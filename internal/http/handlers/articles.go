package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/repticare/storefront/internal/clients"
)

type ArticlesHandler struct{ c *clients.ArticlesClient }

func NewArticlesHandler(c *clients.ArticlesClient) *ArticlesHandler { return &ArticlesHandler{c: c} }

func (h *ArticlesHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.ListArticles(r.Context(), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "articles request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}

func (h *ArticlesHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.GetArticle(r.Context(), chi.URLParam(r, "id"), r.URL.RawQuery, r.Header)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "articles request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	CopyUpstreamResponse(w, resp)
}
