package controllers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/ers220/component-compass/api/middleware"
	"github.com/ers220/component-compass/internal/cart"
	"github.com/ers220/component-compass/pkg/logger"
	"github.com/ers220/component-compass/web"
)

// Pages renders the server-side HTML surface.
type Pages struct {
	tmpl  *template.Template
	carts cart.Service
	logg  *logger.Logger
}

// NewPages parses the embedded templates once at startup.
func NewPages(carts cart.Service, logg *logger.Logger) (*Pages, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Pages{tmpl: tmpl, carts: carts, logg: logg}, nil
}

type pageData struct {
	Flash     string
	FullName  string
	Email     string
	CartItems []cart.Item
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, name, data); err != nil && p.logg != nil {
		p.logg.Error(r.Context(), "page.render", err)
	}
}

// Home is the landing page with the login form.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "home.html", pageData{Flash: middleware.PopFlash(w, r)})
}

// SignupPage renders the account creation form.
func (p *Pages) SignupPage(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "signup.html", pageData{Flash: middleware.PopFlash(w, r)})
}

// MainPage is the protected component browser.
func (p *Pages) MainPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p.render(w, r, "main.html", pageData{
		Flash:    middleware.PopFlash(w, r),
		FullName: middleware.FullNameFromContext(ctx),
		Email:    middleware.EmailFromContext(ctx),
	})
}

// ExitPage shows the finalized cart back to the student.
func (p *Pages) ExitPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var items []cart.Item
	if p.carts != nil {
		fetched, err := p.carts.Fetch(ctx, middleware.AccessIDFromContext(ctx))
		if err != nil {
			if p.logg != nil {
				p.logg.Error(ctx, "exit.cart", err)
			}
		} else {
			items = fetched
		}
	}

	p.render(w, r, "exit.html", pageData{
		FullName:  middleware.FullNameFromContext(ctx),
		Email:     middleware.EmailFromContext(ctx),
		CartItems: items,
	})
}
