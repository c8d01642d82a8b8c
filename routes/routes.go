package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/youssofmousssa/luxestorebackeend/configs"
	"github.com/youssofmousssa/luxestorebackeend/controllers"
	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/middlewares"
	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/repository"
	"github.com/youssofmousssa/luxestorebackeend/services"
	"github.com/youssofmousssa/luxestorebackeend/ws"
)

// Deps are the process-wide collaborators built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *configs.Config
	Payments services.PaymentGateway
	Images   services.ImageHost
	Feed     *ws.OrderFeed // optional
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	bodyLimit := cfg.MaxBodyBytes
	if bodyLimit <= 0 {
		bodyLimit = configs.DefaultMaxBodyBytes
	}
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins), middlewares.BodyLimit(bodyLimit))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "LuxeStore API running"})
	})
	r.NoRoute(func(c *gin.Context) { resp.NotFound(c, "Not found") })

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	productRepo := repository.NewProductRepository(d.DB)
	cartRepo := repository.NewCartRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)
	reviewRepo := repository.NewReviewRepository(d.DB)

	// Services
	var notifier services.OrderNotifier
	if d.Feed != nil {
		notifier = d.Feed
	}
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.BcryptCost)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo)
	orderSvc := services.NewOrderService(orderRepo, d.Payments, notifier)
	reviewSvc := services.NewReviewService(reviewRepo)
	uploadSvc := services.NewUploadService(d.Images)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	uploadCtrl := controllers.NewUploadController(uploadSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret, authSvc)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, authSvc, entity.RoleAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Catalog
	p := r.Group("/products")
	{
		p.GET("", productCtrl.List)
		p.GET("/:id", productCtrl.Detail)
		p.POST("", adminOnly, productCtrl.Create)
		p.PUT("/:id", adminOnly, productCtrl.Update)
		p.DELETE("/:id", adminOnly, productCtrl.Delete)
	}

	// Cart / checkout / orders
	o := r.Group("/orders")
	{
		o.POST("/checkout", orderCtrl.Checkout)
		o.POST("/cart", authed, cartCtrl.Save)
		o.GET("/cart", authed, cartCtrl.Get)
		o.POST("", authed, orderCtrl.Create)
		o.GET("/user/:userId", authed, orderCtrl.ListForUser)
		o.GET("/:id", authed, orderCtrl.Detail)
		o.GET("", adminOnly, orderCtrl.ListAll)
	}

	// Reviews
	r.POST("/reviews", authed, reviewCtrl.Create)
	r.GET("/reviews/:productId", reviewCtrl.ListByProduct)

	// Upload relay
	r.POST("/upload/imgbb", authed, uploadCtrl.ImgBB)

	// Admin
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/products/export", productCtrl.Export)
	}

	if d.Feed != nil {
		r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret, authSvc), d.Feed.HandleWebSocket)
	}
}
