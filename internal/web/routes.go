package web

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/shashiranjanraj/altindan/config"
	"github.com/shashiranjanraj/altindan/pkg/metrics"
	"github.com/shashiranjanraj/altindan/pkg/middleware"
	"github.com/shashiranjanraj/altindan/pkg/reqid"
	"github.com/shashiranjanraj/altindan/pkg/router"
	"github.com/shashiranjanraj/altindan/pkg/session"
)

// Routes builds the full HTTP surface: shop pages, admin panel, JSON API,
// static assets, and operational endpoints.
func (s *Server) Routes() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		session.Middleware(session.DefaultOptions()),
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)

	r.Get("/", "home", s.handleHome)
	r.Get("/order/{product_id}", "order.form", s.handleOrderForm)
	r.Post("/order/{product_id}", "order.submit", s.handleOrderSubmit)

	admin := r.Group("/admin")
	admin.Get("/login", "admin.login", s.handleLoginForm)
	admin.Post("/login", "admin.login.submit", s.handleLoginSubmit)
	admin.Get("/logout", "admin.logout", s.handleLogout)
	admin.Get("/", "admin.panel", s.handlePanel, middleware.AdminPage)
	admin.Get("/export", "admin.export", s.handleExportCSV, middleware.AdminPage)

	api := r.Group("/api")
	api.Post("/login", "api.login", s.handleAPILogin)
	api.Get("/products", "api.products", s.handleAPIProducts)
	api.Post("/products", "api.products.create", s.handleAPIProductCreate, middleware.AdminAuth)
	api.Get("/orders", "api.orders", s.handleAPIOrders, middleware.AdminAuth)
	api.Get("/report", "api.report", s.handleAPIReport, middleware.AdminAuth)
	api.Post("/upload", "api.upload", s.handleAPIUpload, middleware.AdminAuth)

	r.HandleFunc("/metrics", metrics.Handler())

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Locally stored product images. The S3 disk serves its own URLs.
	root := http.Dir(config.StorageLocalRoot())
	r.Handle("/storage/*", http.StripPrefix("/storage/", http.FileServer(root)))

	return r
}
