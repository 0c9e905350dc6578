package httpapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repticare/storefront/internal/cart"
	"github.com/repticare/storefront/internal/clients"
	"github.com/repticare/storefront/internal/config"
	"github.com/repticare/storefront/internal/http/dto"
	"github.com/repticare/storefront/internal/middleware"
	"github.com/repticare/storefront/internal/notify"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
}

// newStubBackend answers like the real REST backend for the routes the tests
// exercise and records everything it sees.
func newStubBackend(t *testing.T) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, recordedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone()})
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/api/products/p1":
			_ = json.NewEncoder(w).Encode(dto.Product{
				ProductID:     "p1",
				Name:          "Ração para lagartos 500g",
				Price:         49.90,
				Images:        []string{"https://cdn.example.com/racao.png"},
				StockQuantity: 5,
			})
		case strings.HasPrefix(r.URL.Path, "/api/products/"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		case r.URL.Path == "/api/auth/login":
			_, _ = w.Write([]byte(`{"token":"hdr.eyJzdWIiOiJ1LTEifQ.sig"}`))
		case r.URL.Path == "/api/users/me":
			_, _ = w.Write([]byte(`{"id":"u-1","name":"Ana","email":"ana@example.com","role":"veterinarian","situation":"active"}`))
		default:
			_, _ = w.Write([]byte(`{"ok":true}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newTestRouter(t *testing.T, backendURL string) http.Handler {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	base := clients.NewClient("backend", backendURL, &http.Client{Timeout: 5 * time.Second})

	return NewRouter(Deps{
		Logger:   logger,
		Cfg:      config.Config{CORSAllowOrigins: []string{"*"}},
		CartRepo: cart.NewMemoryRepository(),
		Notifier: notify.NewTransient(time.Minute),
		Auth:     clients.NewAuthClient(base),
		Catalog:  clients.NewCatalogClient(base),
		Vets:     clients.NewVetsClient(base),
		Care:     clients.NewCareClient(base),
		Articles: clients.NewArticlesClient(base),
		Profile:  clients.NewProfileClient(base),
	})
}

func TestHealthRoute(t *testing.T) {
	backend, _ := newStubBackend(t)
	router := newTestRouter(t, backend.URL)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "storefront", body["service"])
}

func TestListProductsProxiesBackend(t *testing.T) {
	backend, seen := newStubBackend(t)
	router := newTestRouter(t, backend.URL)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/produtos?page=2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, *seen, 1)
	assert.Equal(t, "/api/products", (*seen)[0].Path)
	// Correlation id generated by the storefront is propagated downstream.
	assert.NotEmpty(t, (*seen)[0].Header.Get(middleware.HeaderCorrelationID))
}

func TestCartFlow(t *testing.T) {
	backend, _ := newStubBackend(t)
	router := newTestRouter(t, backend.URL)

	var cartCookie *http.Cookie

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var rd io.Reader
		if body != "" {
			rd = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, rd)
		if cartCookie != nil {
			req.AddCookie(cartCookie)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		for _, c := range rr.Result().Cookies() {
			if c.Name == "cart_id" {
				cartCookie = c
			}
		}
		return rr
	}

	// First add succeeds and plants the anonymous cart cookie.
	rr := do(http.MethodPost, "/carrinho/itens", `{"productId":"p1","quantity":3}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, cartCookie)

	var mut dto.CartMutationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mut))
	assert.Equal(t, "added", mut.Outcome)
	assert.Equal(t, 3, mut.Cart.ItemCount)

	// Second add would exceed stock 5: rejected, cart unchanged.
	rr = do(http.MethodPost, "/carrinho/itens", `{"productId":"p1","quantity":3}`)
	require.Equal(t, http.StatusConflict, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mut))
	assert.Equal(t, "rejected_stock", mut.Outcome)
	assert.NotEmpty(t, mut.Message)
	assert.Equal(t, 3, mut.Cart.ItemCount)

	// The cart survives across requests.
	rr = do(http.MethodGet, "/carrinho", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var view dto.CartView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.InDelta(t, 3*49.90, view.TotalPrice, 1e-9)

	// Quantity zero removes the line.
	rr = do(http.MethodPut, "/carrinho/itens/p1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mut))
	assert.Equal(t, "removed", mut.Outcome)
	assert.Equal(t, 0, mut.Cart.ItemCount)

	// The mutations left notices behind; draining returns them once.
	rr = do(http.MethodGet, "/carrinho/avisos", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var msgs []notify.Message
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msgs))
	require.NotEmpty(t, msgs)
}

func TestAddUnknownProduct(t *testing.T) {
	backend, _ := newStubBackend(t)
	router := newTestRouter(t, backend.URL)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/carrinho/itens",
		strings.NewReader(`{"productId":"ghost","quantity":1}`)))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLoginSetsTokenCookie(t *testing.T) {
	backend, _ := newStubBackend(t)
	router := newTestRouter(t, backend.URL)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"ana@example.com","password":"s3cret"}`)))

	require.Equal(t, http.StatusOK, rr.Code)

	var token *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == "token" {
			token = c
		}
	}
	require.NotNil(t, token, "login must set the token cookie")
	assert.True(t, token.HttpOnly)
	assert.Equal(t, "hdr.eyJzdWIiOiJ1LTEifQ.sig", token.Value)
}

func TestProfileMapsRoleLabels(t *testing.T) {
	backend, _ := newStubBackend(t)
	router := newTestRouter(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	// /perfil is protected: a structurally valid token without exp passes.
	req.AddCookie(&http.Cookie{Name: "token", Value: "hdr.eyJzdWIiOiJ1LTEifQ.sig"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var p dto.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "veterinarian", p.Role)
	assert.Equal(t, "Veterinário(a)", p.RoleLabel)
	assert.Equal(t, "Ativo", p.SituationLabel)
}

func TestProtectedRouteRedirects(t *testing.T) {
	backend, _ := newStubBackend(t)
	router := newTestRouter(t, backend.URL)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/perfil", nil))

	require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/login?next=%2Fperfil", rr.Header().Get("Location"))
}

func TestAuthenticatedCartFollowsSubject(t *testing.T) {
	backend, _ := newStubBackend(t)
	router := newTestRouter(t, backend.URL)

	token := &http.Cookie{Name: "token", Value: "hdr.eyJzdWIiOiJ1LTEifQ.sig"}

	req := httptest.NewRequest(http.MethodPost, "/carrinho/itens",
		strings.NewReader(`{"productId":"p1","quantity":2}`))
	req.AddCookie(token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// Same subject, no cart cookie: same cart.
	req = httptest.NewRequest(http.MethodGet, "/carrinho", nil)
	req.AddCookie(token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var view dto.CartView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}
