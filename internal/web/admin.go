package web

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/pkg/auth"
	"github.com/shashiranjanraj/altindan/pkg/bind"
	"github.com/shashiranjanraj/altindan/pkg/logger"
	"github.com/shashiranjanraj/altindan/pkg/response"
	"github.com/shashiranjanraj/altindan/pkg/session"
	"github.com/shashiranjanraj/altindan/pkg/storage"
)

// ── HTML panel ───────────────────────────────────────────────────────────────

type loginPage struct {
	Error string
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if admin, ok := session.FromCtx(r).GetString("admin"); ok && admin != "" {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	s.render(w, http.StatusOK, "login.html", loginPage{})
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "login.html", loginPage{Error: "Некорректный запрос"})
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	admin, ok := s.settings.FindAdmin(username)
	if !ok || !auth.CheckPassword(admin.Password, password) {
		logger.Warn("admin: login rejected", "username", username)
		s.render(w, http.StatusUnauthorized, "login.html", loginPage{Error: "Неверный логин или пароль"})
		return
	}

	sess := session.FromCtx(r)
	sess.Set("admin", admin.Username)
	if err := sess.Save(w); err != nil {
		logger.Error("admin: session save", "error", err)
		s.render(w, http.StatusInternalServerError, "login.html", loginPage{Error: "Не удалось создать сессию"})
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	if err := sess.Save(w); err != nil {
		logger.Error("admin: session save", "error", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

type adminPage struct {
	Username string
	Products []catalog.Product
	Orders   []order.Order
	Report   order.Report
}

func (s *Server) handlePanel(w http.ResponseWriter, r *http.Request) {
	username, _ := session.FromCtx(r).GetString("admin")

	orders := s.store.ListAll()
	s.render(w, http.StatusOK, "admin.html", adminPage{
		Username: username,
		Products: s.catalog.List(),
		Orders:   orders,
		Report:   order.BuildReport(orders),
	})
}

// handleExportCSV streams the order history as a CSV download.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := order.ExportCSV(s.store.ListAll())
	if err != nil {
		logger.Error("admin: export", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	w.Write(data) //nolint:errcheck
}

// ── JSON API ─────────────────────────────────────────────────────────────────

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// handleAPILogin exchanges admin credentials for a JWT.
func (s *Server) handleAPILogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	admin, ok := s.settings.FindAdmin(req.Username)
	if !ok || !auth.CheckPassword(admin.Password, req.Password) {
		response.Unauthorized(w)
		return
	}

	token, err := auth.GenerateToken(admin.Username)
	if err != nil {
		logger.Error("admin: token", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	response.Success(w, map[string]string{"token": token})
}

func (s *Server) handleAPIProducts(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.catalog.List())
}

type productRequest struct {
	Name  map[string]string `json:"name" validate:"required"`
	Desc  map[string]string `json:"desc"`
	Price float64           `json:"price" validate:"required,gt=0"`
	Image string            `json:"image"`
}

func (s *Server) handleAPIProductCreate(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product := catalog.Product{
		ID:    catalog.NewID(),
		Name:  req.Name,
		Desc:  req.Desc,
		Price: req.Price,
		Image: req.Image,
	}
	if err := s.catalog.Add(product); err != nil {
		logger.Error("admin: product create", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not save product")
		return
	}

	response.Created(w, product)
}

func (s *Server) handleAPIOrders(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.store.ListAll())
}

func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	response.Success(w, order.BuildReport(s.store.ListAll()))
}

// handleAPIUpload stores a product image and returns its public URL.
func (s *Server) handleAPIUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	name := fmt.Sprintf("images/%d%s", time.Now().UnixNano(), path.Ext(header.Filename))
	if err := storage.PutStream(name, io.LimitReader(file, 10<<20)); err != nil {
		logger.Error("admin: upload", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	response.Created(w, map[string]string{"path": name, "url": storage.URL(name)})
}
