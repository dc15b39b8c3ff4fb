package server

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"velvethome-backend/internal/handler"
	"velvethome-backend/internal/middleware"
	"velvethome-backend/internal/service"
)

type Server struct {
	echo          *echo.Echo
	sessionSecret string

	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	serviceHandler  *handler.ServiceHandler
	orderHandler    *handler.OrderHandler
	reviewHandler   *handler.ReviewHandler
	wishlistHandler *handler.WishlistHandler
	leadHandler     *handler.LeadHandler
	webhookHandler  *handler.WebhookHandler
}

func NewServer(
	sessionSecret string,
	catalogService service.CatalogService,
	orderService service.OrderService,
	reviewService service.ReviewService,
	wishlistService service.WishlistService,
	leadService service.LeadService,
	webhookService service.WebhookService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:            e,
		sessionSecret:   sessionSecret,
		productHandler:  handler.NewProductHandler(catalogService),
		categoryHandler: handler.NewCategoryHandler(catalogService),
		serviceHandler:  handler.NewServiceHandler(catalogService),
		orderHandler:    handler.NewOrderHandler(orderService),
		reviewHandler:   handler.NewReviewHandler(reviewService),
		wishlistHandler: handler.NewWishlistHandler(wishlistService),
		leadHandler:     handler.NewLeadHandler(leadService),
		webhookHandler:  handler.NewWebhookHandler(webhookService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- public catalog --------
	api.GET("/products", s.productHandler.List)
	api.GET("/products/:productId", s.productHandler.Get)
	api.GET("/featured", s.productHandler.Featured)
	api.GET("/categories", s.categoryHandler.List)
	api.GET("/services", s.serviceHandler.List)
	api.GET("/services/:serviceId", s.serviceHandler.Get)

	api.POST("/leads", s.leadHandler.Create)

	// -------- identity-provider webhook --------
	api.POST("/webhooks/user", s.webhookHandler.HandleUserEvent)

	// -------- authenticated --------
	authed := api.Group("", middleware.Auth(s.sessionSecret))
	authed.POST("/products/:productId/review", s.reviewHandler.AddProductReview)
	authed.DELETE("/products/:productId/review", s.reviewHandler.DeleteProductReview)
	authed.POST("/services/:serviceId/review", s.reviewHandler.AddServiceReview)
	authed.DELETE("/services/:serviceId/review", s.reviewHandler.DeleteServiceReview)
	authed.GET("/orders", s.orderHandler.List)
	authed.POST("/orders", s.orderHandler.Create)
	authed.POST("/payment/verify", s.orderHandler.VerifyPayment)
	authed.GET("/wishlist", s.wishlistHandler.Get)
	authed.POST("/wishlist", s.wishlistHandler.Toggle)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
