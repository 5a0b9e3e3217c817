// Package web serves the customer-facing shop pages and the admin surface.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/internal/settings"
	"github.com/shashiranjanraj/altindan/pkg/logger"
)

//go:embed views/*.html
var viewFS embed.FS

//go:embed static
var staticFS embed.FS

// Server holds the handler dependencies.
type Server struct {
	catalog  *catalog.Provider
	store    *order.Store
	intake   *order.Intake
	settings *settings.Store
	views    *template.Template
}

// NewServer parses the embedded views and wires the handlers.
func NewServer(c *catalog.Provider, s *order.Store, in *order.Intake, st *settings.Store) *Server {
	views := template.Must(template.New("").Funcs(template.FuncMap{
		"money": formatMoney,
	}).ParseFS(viewFS, "views/*.html"))

	return &Server{catalog: c, store: s, intake: in, settings: st, views: views}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.views.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("web: render", "view", name, "error", err)
	}
}

// pageLang resolves the display language: explicit query param, then the
// hidden form field, then the default.
func pageLang(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = r.FormValue("lang")
	}
	switch lang {
	case "uz", "ru":
		return lang
	default:
		return catalog.DefaultLang
	}
}

func formatMoney(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
