package server

import (
	"net/http"

	"bookshop/internal/handler"
	"bookshop/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// 全ハンドラをまとめて受け取る
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Admin    *handler.AdminOrderHandler
	Static   *handler.StaticHandler
}

func New(hs Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	hs.Catalog.RegisterRoutes(e)
	hs.Cart.RegisterRoutes(e)
	hs.Checkout.RegisterRoutes(e)
	hs.Admin.RegisterRoutes(e)
	hs.Static.RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
