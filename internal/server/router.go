// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/metrics"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps holds everything the router needs. Nil delay strategies disable
// latency injection for that route group.
type Deps struct {
	Catalog        *catalog.Catalog
	Logger         *slog.Logger
	StaticRoot     string
	RequestTimeout time.Duration
	APIDelay       middleware.DelayStrategy
	AssetDelay     middleware.DelayStrategy
}

// NewRouter builds the HTTP handler for the catalog API
func NewRouter(d Deps) http.Handler {
	apiDelay, assetDelay := d.APIDelay, d.AssetDelay
	if apiDelay == nil {
		apiDelay = middleware.NoDelay{}
	}
	if assetDelay == nil {
		assetDelay = middleware.NoDelay{}
	}

	repo := repository.NewInMemoryCatalogRepository(d.Catalog)
	productHandler := handlers.NewProductHandler(service.NewCatalogService(repo), d.Logger)
	orderHandler := handlers.NewOrderHandler(service.NewOrderService(), d.Logger)
	healthHandler := handlers.NewHealthHandler(d.Logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(d.Logger))
	r.Use(metrics.Middleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(d.RequestTimeout))
	r.Use(chimiddleware.GetHead)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "POST", "DELETE", "PATCH"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{handlers.OrderReferenceHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", handlers.RootHandler(d.Logger))
	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LatencyInjector(apiDelay, "api"))

		r.Route("/v1", func(r chi.Router) {
			r.Get("/categories", productHandler.ListCategories)
			r.Get("/products", productHandler.ListProducts)
			r.Post("/orders", orderHandler.CreateOrder)
		})
	})

	r.Route("/public", func(r chi.Router) {
		r.Use(middleware.LatencyInjector(assetDelay, "public"))
		r.Handle("/*", staticFiles(d.StaticRoot))
	})

	return r
}

// staticFiles serves <root>/public under /public, so /public/img.jpg maps
// to <root>/public/img.jpg. Directories are not listed and paths with ".."
// segments are refused, so nothing outside <root>/public is reachable.
func staticFiles(root string) http.Handler {
	fs := http.StripPrefix("/public", http.FileServer(http.Dir(filepath.Join(root, "public"))))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") || hasDotDot(r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}

func hasDotDot(p string) bool {
	segments := strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' })
	for _, seg := range segments {
		if seg == ".." {
			return true
		}
	}
	return false
}
