package httpserver

import (
	"context"
	"log"

	"agrimart/internal/domain"
	orderrepo "agrimart/internal/repository/order"
	catalogsvc "agrimart/internal/service/catalog"
	ordersvc "agrimart/internal/service/order"
	usersvc "agrimart/internal/service/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Service interfaces consumed by the handlers. Kept narrow so tests can
// stub each area independently.
type CatalogService interface {
	Create(ctx context.Context, caller domain.User, in catalogsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, caller domain.User, id string, in catalogsvc.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, caller domain.User, id string) error
	ListMine(ctx context.Context, caller domain.User) ([]domain.Product, error)
	Browse(ctx context.Context, category string, criteria catalogsvc.Criteria) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type CartService interface {
	Add(ctx context.Context, shopper domain.User, productID string) error
	Remove(ctx context.Context, shopper domain.User, productID string) error
	SetQuantity(ctx context.Context, shopper domain.User, productID string, quantity int) error
	View(ctx context.Context, shopper domain.User) (*domain.Cart, error)
}

type WishlistService interface {
	Toggle(ctx context.Context, shopper domain.User, productID string) (bool, error)
	List(ctx context.Context, shopper domain.User) ([]domain.Product, error)
}

type OrderService interface {
	Place(ctx context.Context, shopper domain.User, details ordersvc.Details) ([]domain.Order, error)
	PlaceOnline(ctx context.Context, shopper domain.User, details ordersvc.Details) ([]domain.Order, error)
	ListForShopper(ctx context.Context, shopper domain.User) ([]domain.Order, error)
	ListForAdmin(ctx context.Context, caller domain.User) ([]domain.Order, error)
	MarkCompleted(ctx context.Context, caller domain.User, orderID string) error
	Cancel(ctx context.Context, shopper domain.User, orderID string) error
	Stats(ctx context.Context, caller domain.User) (orderrepo.Stats, error)
}

type UserService interface {
	Signup(ctx context.Context, in usersvc.SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	AccessTTLSeconds() int
}

// Deps bundles everything the router needs.
type Deps struct {
	Catalog  CatalogService
	Cart     CartService
	Wishlist WishlistService
	Orders   OrderService
	Users    UserService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/signup", signupHandler(deps.Users))
	router.POST("/login", loginHandler(deps.Users))

	router.GET("/categories", categoriesHandler)
	router.GET("/products", browseHandler(deps.Catalog))
	router.GET("/products/:id", getProductHandler(deps.Catalog))

	authed := router.Group("", authMiddleware(deps.Users))
	{
		authed.GET("/me", meHandler)

		authed.GET("/cart", viewCartHandler(deps.Cart))
		authed.POST("/cart/items", addToCartHandler(deps.Cart))
		authed.PATCH("/cart/items/:productId", setCartQuantityHandler(deps.Cart))
		authed.DELETE("/cart/items/:productId", removeFromCartHandler(deps.Cart))

		authed.GET("/wishlist", listWishlistHandler(deps.Wishlist))
		authed.POST("/wishlist/toggle", toggleWishlistHandler(deps.Wishlist))

		authed.GET("/orders", listOrdersHandler(deps.Orders))
		authed.POST("/orders", placeOrderHandler(deps.Orders))
		authed.POST("/orders/online", placeOrderOnlineHandler(deps.Orders))
		authed.DELETE("/orders/:id", cancelOrderHandler(deps.Orders))
	}

	admin := router.Group("/admin", authMiddleware(deps.Users), requireAdmin())
	{
		admin.GET("/products", listOwnProductsHandler(deps.Catalog))
		admin.POST("/products", createProductHandler(deps.Catalog))
		admin.PATCH("/products/:id", updateProductHandler(deps.Catalog))
		admin.DELETE("/products/:id", deleteProductHandler(deps.Catalog))

		admin.GET("/orders", listAdminOrdersHandler(deps.Orders))
		admin.POST("/orders/:id/complete", completeOrderHandler(deps.Orders))
		admin.GET("/stats", statsHandler(deps.Orders))
	}

	return router, nil
}
