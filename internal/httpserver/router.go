package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"techstore/internal/domain"
	"techstore/internal/session"
)

// ProductCatalog answers the browse queries.
type ProductCatalog interface {
	FilterByCategory(cat domain.Category) []domain.Product
	Search(query string) []domain.Product
	GetByID(id int) (*domain.Product, error)
}

// CartEngine is the cart the handlers mutate.
type CartEngine interface {
	Add(ctx context.Context, p domain.Product, quantity int) error
	Remove(ctx context.Context, productID int)
	UpdateQuantity(ctx context.Context, productID, quantity int)
	Clear(ctx context.Context)
	Lines() []domain.CartLine
	Subtotal() int64
	Tax() int64
	Total() int64
	TotalItems() int
}

// SessionManager exposes the auth flows.
type SessionManager interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, name, email, password string) (*domain.Session, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) *domain.Session
	UpdatePreferences(ctx context.Context, patch session.PreferencesPatch) (*domain.Session, error)
}

// SettingsService exposes the display settings.
type SettingsService interface {
	Theme() domain.Theme
	Language() domain.Language
	SetTheme(ctx context.Context, theme domain.Theme) error
	SetLanguage(ctx context.Context, lang domain.Language) error
	ToggleTheme(ctx context.Context) domain.Theme
}

// CheckoutService places orders and serves the history.
type CheckoutService interface {
	PlaceOrder(ctx context.Context) (*domain.Order, error)
	History(userID int) []domain.Order
}

// ContactService records contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
}

// Deps carries the engines the router serves.
type Deps struct {
	Catalog  ProductCatalog
	Cart     CartEngine
	Sessions SessionManager
	Settings SettingsService
	Checkout CheckoutService
	Contact  ContactService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.Catalog == nil || deps.Cart == nil || deps.Sessions == nil ||
		deps.Settings == nil || deps.Checkout == nil || deps.Contact == nil {
		return nil, errors.New("httpserver: missing dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Catalog))
		api.GET("/products/:id", getProductHandler(deps.Catalog))

		api.GET("/cart", cartHandler(deps.Cart))
		api.POST("/cart/items", cartAddHandler(deps.Cart, deps.Catalog))
		api.PATCH("/cart/items/:id", cartUpdateHandler(deps.Cart))
		api.DELETE("/cart/items/:id", cartRemoveHandler(deps.Cart))
		api.DELETE("/cart", cartClearHandler(deps.Cart))

		api.POST("/auth/login", loginHandler(deps.Sessions))
		api.POST("/auth/register", registerHandler(deps.Sessions))
		api.POST("/auth/logout", logoutHandler(deps.Sessions))
		api.GET("/auth/me", meHandler(deps.Sessions))
		api.PATCH("/auth/preferences", preferencesHandler(deps.Sessions))

		api.POST("/checkout", checkoutHandler(deps.Checkout))
		api.GET("/orders", ordersHandler(deps.Checkout, deps.Sessions))

		api.GET("/settings", settingsHandler(deps.Settings))
		api.PUT("/settings/theme", setThemeHandler(deps.Settings))
		api.POST("/settings/theme/toggle", toggleThemeHandler(deps.Settings))
		api.PUT("/settings/language", setLanguageHandler(deps.Settings))
		api.GET("/translations/:lang", translationsHandler)

		api.POST("/contact", contactHandler(deps.Contact))
	}

	return router, nil
}
