package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ers220/component-compass/api/controllers"
	"github.com/ers220/component-compass/api/middleware"
	"github.com/ers220/component-compass/internal/auth"
	"github.com/ers220/component-compass/internal/cart"
	"github.com/ers220/component-compass/internal/catalog"
	"github.com/ers220/component-compass/internal/feedback"
	"github.com/ers220/component-compass/internal/receipts"
	"github.com/ers220/component-compass/pkg/config"
	"github.com/ers220/component-compass/pkg/db"
	"github.com/ers220/component-compass/pkg/logger"
)

// RouterParams carries everything the HTTP surface needs.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Sessions        middleware.SessionChecker
	Pages           *controllers.Pages
	AuthService     auth.Service
	RegisterService auth.RegisterService
	CatalogService  catalog.Service
	CartService     cart.Service
	FeedbackService feedback.Service
	ReceiptsService receipts.Service
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
	)

	pageGuard := middleware.AuthRedirect(p.Config.JWT, p.Sessions, p.Logger)
	apiGuard := middleware.Auth(p.Config.JWT, p.Sessions, p.Logger)

	// public pages + auth forms
	r.Get("/", p.Pages.Home)
	r.Get("/signup", p.Pages.SignupPage)
	r.Post("/signup", controllers.Signup(p.RegisterService, p.Logger))
	r.Post("/login", controllers.Login(p.AuthService, p.Logger))
	r.Get("/logout", controllers.Logout(p.AuthService, p.Config.JWT, p.Logger))

	// protected pages
	r.Group(func(r chi.Router) {
		r.Use(pageGuard)
		r.Get("/main", p.Pages.MainPage)
		r.Get("/exit", p.Pages.ExitPage)
	})

	// protected JSON surface
	r.Group(func(r chi.Router) {
		r.Use(apiGuard)
		r.Get("/api/practicals", controllers.Practicals(p.CatalogService, p.Logger))
		r.Get("/api/practical/{pracNumber}/components", controllers.PracticalComponents(p.CatalogService, p.Logger))
		r.Get("/api/component/{componentID}/suppliers", controllers.ComponentSuppliers(p.CatalogService, p.Logger))
		r.Get("/api/alt-component/{altComponentID}/suppliers", controllers.AltComponentSuppliers(p.CatalogService, p.Logger))
		r.Get("/api/suppliers", controllers.Suppliers(p.CatalogService, p.Logger))
		r.Post("/complete_practical", controllers.CompletePractical(p.CartService, p.Logger))
		r.Post("/submit_feedback", controllers.SubmitFeedback(p.FeedbackService, p.Logger))
		r.Post("/export_pdf", controllers.ExportReceipt(p.ReceiptsService, p.Logger))
	})

	// diagnostics
	r.Get("/test_db", controllers.TestDB(p.CatalogService, p.Logger))
	r.Get("/health/live", controllers.HealthLive(p.Config))
	r.Get("/health/ready", controllers.HealthReady(p.Config, p.DB, p.Logger))

	return r
}
