package httpapi

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/repticare/storefront/internal/cart"
	"github.com/repticare/storefront/internal/clients"
	"github.com/repticare/storefront/internal/config"
	"github.com/repticare/storefront/internal/http/handlers"
	"github.com/repticare/storefront/internal/middleware"
	"github.com/repticare/storefront/internal/notify"
)

type Deps struct {
	Logger *log.Logger
	Cfg    config.Config

	CartRepo cart.Repository
	Notifier *notify.Transient

	Auth     *clients.AuthClient
	Catalog  *clients.CatalogClient
	Vets     *clients.VetsClient
	Care     *clients.CareClient
	Articles *clients.ArticlesClient
	Profile  *clients.ProfileClient

	HealthProbes []clients.HealthProbe
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Outermost first. The guard runs after CORS so preflights never get
	// redirected, and ahead of every route handler.
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Recover(d.Logger))
	r.Use(middleware.CORS(d.Cfg.CORSAllowOrigins))
	r.Use(middleware.RouteGuard(middleware.DefaultGuardPaths()))

	health := &handlers.HealthHandler{Probes: d.HealthProbes}
	r.Get("/health", health.Storefront)
	r.Get("/health/upstreams", health.Upstreams)

	authh := handlers.NewAuthHandler(d.Auth)
	r.Post("/login", authh.Login)
	r.Post("/cadastro", authh.Register)
	r.Post("/logout", authh.Logout)

	cat := handlers.NewCatalogHandler(d.Catalog)
	r.Get("/produtos", cat.ListProducts)
	r.Get("/produtos/{id}", cat.GetProduct)

	vets := handlers.NewVetsHandler(d.Vets)
	r.Get("/veterinarios", vets.List)
	r.Get("/veterinarios/{id}", vets.Get)

	care := handlers.NewCareHandler(d.Care)
	r.Get("/locais-de-saude", care.List)
	r.Get("/locais-de-saude/{id}", care.Get)

	articles := handlers.NewArticlesHandler(d.Articles)
	r.Get("/artigos", articles.List)
	r.Get("/artigos/{id}", articles.Get)

	cartH := handlers.NewCartHandler(d.CartRepo, d.Notifier, d.Catalog, d.Logger)
	r.Route("/carrinho", func(r chi.Router) {
		r.Get("/", cartH.Get)
		r.Delete("/", cartH.Clear)
		r.Get("/avisos", cartH.Notices)
		r.Post("/itens", cartH.AddItem)
		r.Put("/itens/{productId}", cartH.UpdateItem)
		r.Delete("/itens/{productId}", cartH.RemoveItem)
	})

	prof := handlers.NewProfileHandler(d.Profile)
	r.Get("/perfil", prof.Get)
	r.Put("/perfil", prof.Update)

	if d.Cfg.WebDir != "" {
		fs := http.FileServer(http.Dir(d.Cfg.WebDir))
		r.Handle("/assets/*", fs)
		r.Handle("/static/*", fs)
		r.Get("/favicon.ico", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(d.Cfg.WebDir, "favicon.ico"))
		})
	}

	// Page paths (/home, /perfil-page, ...) fall through to the SPA shell;
	// the guard already decided whether the request may see it.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if d.Cfg.WebDir != "" && req.Method == http.MethodGet {
			index := filepath.Join(d.Cfg.WebDir, "index.html")
			if _, err := os.Stat(index); err == nil {
				http.ServeFile(w, req, index)
				return
			}
		}
		handlers.WriteError(w, req, http.StatusNotFound, "not found")
	})

	return r
}
