package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/pkg/logger"
)

type productView struct {
	ID    string
	Name  string
	Desc  string
	Price float64
	Image string
}

type listingPage struct {
	Lang     string
	Products []productView
}

// handleHome renders the product listing.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	lang := pageLang(r)

	products := s.catalog.List()
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{
			ID:    p.ID,
			Name:  p.DisplayName(lang),
			Desc:  p.Description(lang),
			Price: p.Price,
			Image: p.Image,
		})
	}

	s.render(w, http.StatusOK, "index.html", listingPage{Lang: lang, Products: views})
}

type orderPage struct {
	Lang    string
	Product productView
}

// handleOrderForm shows the order form for one product.
func (s *Server) handleOrderForm(w http.ResponseWriter, r *http.Request) {
	lang := pageLang(r)

	product, ok := s.catalog.Find(chi.URLParam(r, "product_id"))
	if !ok {
		s.renderNotFound(w, lang)
		return
	}

	s.render(w, http.StatusOK, "order.html", orderPage{
		Lang: lang,
		Product: productView{
			ID:    product.ID,
			Name:  product.DisplayName(lang),
			Desc:  product.Description(lang),
			Price: product.Price,
			Image: product.Image,
		},
	})
}

type confirmationPage struct {
	Lang  string
	Order order.Order
	Total float64
}

// handleOrderSubmit accepts the form post. When it answers 200 the order is
// already durable; the notification result is invisible here.
func (s *Server) handleOrderSubmit(w http.ResponseWriter, r *http.Request) {
	lang := pageLang(r)

	if err := r.ParseForm(); err != nil {
		s.renderError(w, lang, http.StatusBadRequest)
		return
	}

	o, err := s.intake.Submit(r.Context(), order.Submission{
		ProductID: chi.URLParam(r, "product_id"),
		Qty:       r.PostFormValue("qty"),
		Name:      r.PostFormValue("name"),
		Phone:     r.PostFormValue("phone"),
		Note:      r.PostFormValue("note"),
		Lang:      lang,
		Channel:   "web",
	})
	if err != nil {
		if errors.Is(err, order.ErrProductNotFound) {
			s.renderNotFound(w, lang)
			return
		}
		logger.WithCtx(r.Context()).Error("web: order submit", "error", err)
		s.renderError(w, lang, http.StatusInternalServerError)
		return
	}

	s.render(w, http.StatusOK, "ordered.html", confirmationPage{Lang: lang, Order: o, Total: o.Total()})
}

type errorPage struct {
	Lang    string
	Status  int
	Message string
}

func (s *Server) renderNotFound(w http.ResponseWriter, lang string) {
	msg := "Товар не найден"
	if lang == "uz" {
		msg = "Mahsulot topilmadi"
	}
	s.render(w, http.StatusNotFound, "error.html", errorPage{Lang: lang, Status: http.StatusNotFound, Message: msg})
}

func (s *Server) renderError(w http.ResponseWriter, lang string, status int) {
	msg := "Что-то пошло не так, попробуйте ещё раз"
	if lang == "uz" {
		msg = "Xatolik yuz berdi, qayta urinib ko'ring"
	}
	s.render(w, status, "error.html", errorPage{Lang: lang, Status: status, Message: msg})
}
