package delivery

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/metrics"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HTML index listing the API, served at /
const apiIndexPage = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Storefront API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 10px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
    </style>
</head>
<body>
    <h1>Storefront API</h1>

    <h2>Catalog</h2>
    <ul>
        <li><span class="method">GET</span> <code><a href="/products">/products</a></code> - List products, newest first. Optional <code>category</code> filter.</li>
        <li><span class="method">POST</span> <code>/products</code> - Create a product: <code>{"name", "description", "price", "category", "image"?, "images"?, ...}</code></li>
        <li><span class="method">GET</span> <code>/products/{id}</code> - Get one product.</li>
        <li><span class="method">PATCH</span> <code>/products/{id}</code> - Update any subset of product fields.</li>
        <li><span class="method">DELETE</span> <code>/products/{id}</code> - Delete a product.</li>
    </ul>

    <h2>Cart and wishlist</h2>
    <ul>
        <li><span class="method">GET</span> <code>/cart?userId=</code> - Current cart.</li>
        <li><span class="method">POST</span> <code>/cart?userId=</code> - Add <code>{"productId", "quantity"?}</code>; merges into an existing line.</li>
        <li><span class="method">PATCH</span> <code>/cart?userId=</code> - Set <code>{"productId", "quantity"}</code>; quantity 0 removes the line.</li>
        <li><span class="method">DELETE</span> <code>/cart?userId=&amp;productId=</code> - Remove a line, or empty the cart without productId.</li>
        <li><span class="method">GET/POST/DELETE</span> <code>/wishlist?userId=</code> - Read, add or remove <code>{"productId"}</code>.</li>
    </ul>

    <h2>Orders</h2>
    <ul>
        <li><span class="method">GET</span> <code>/orders?userId=</code> - Orders of a user, or all orders.</li>
        <li><span class="method">POST</span> <code>/orders?userId=</code> - Place <code>{"items": [{"productId", "quantity"}]}</code>.</li>
        <li><span class="method">GET</span> <code>/orders/{id}</code> - Get one order.</li>
        <li><span class="method">PATCH</span> <code>/orders/{id}/status</code> - Advance or cancel: <code>{"status"}</code>.</li>
    </ul>

    <h2>Admin</h2>
    <ul>
        <li><span class="method">POST</span> <code>/auth/login</code> - <code>{"username", "password"}</code>; sets the adminAuth and adminUser cookies.</li>
        <li><span class="method">POST</span> <code>/auth/logout</code> - Clears both cookies.</li>
        <li><span class="method">GET</span> <code><a href="/healthz">/healthz</a></code>, <code><a href="/metrics">/metrics</a></code></li>
    </ul>
</body>
</html>
`

type RouterConfig struct {
	DefaultUserID      string
	RequireAdmin       bool
	LoginRatePerMinute int
	LoginBurst         int
}

type UseCases struct {
	Products  usecase.ProductUseCase
	Carts     usecase.CartUseCase
	Wishlists usecase.WishlistUseCase
	Orders    usecase.OrderUseCase
	Auth      usecase.AuthUseCase
	Stats     func() domain.StoreStats
}

// NewRouter wires every storefront route onto a fresh gin engine.
func NewRouter(cfg RouterConfig, uc UseCases, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(metrics.GinMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(apiIndexPage))
	})
	router.GET("/healthz", func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if uc.Stats != nil {
			s := uc.Stats()
			body["products"] = s.Products
			body["orders"] = s.Orders
		}
		c.JSON(http.StatusOK, body)
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	var admin []gin.HandlerFunc
	if cfg.RequireAdmin {
		admin = append(admin, AdminGuard(logger))
		logger.Info("Admin guard enabled for catalog mutations and order status changes")
	}

	defaultUser := cfg.DefaultUserID
	if defaultUser == "" {
		defaultUser = "demo-user"
	}

	NewProductHandler(uc.Products, logger).RegisterRoutes(router, admin...)
	NewCartHandler(uc.Carts, defaultUser, logger).RegisterRoutes(router)
	NewWishlistHandler(uc.Wishlists, defaultUser, logger).RegisterRoutes(router)
	NewOrderHandler(uc.Orders, defaultUser, logger).RegisterRoutes(router, admin...)

	var loginLimit []gin.HandlerFunc
	if cfg.LoginRatePerMinute > 0 {
		loginLimit = append(loginLimit, NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst, logger).Middleware())
	}
	NewAuthHandler(uc.Auth, logger).RegisterRoutes(router, loginLimit...)

	return router
}
