package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const conditionsText = `Terms and conditions

Orders are confirmed by email. Delivery and payment surcharges are
shown before the order is placed. Goods remain our property until paid
in full.`

const privacyText = `Privacy policy

We store the data entered at checkout (contact email, billing and
shipping address) only to fulfil the order. Nothing is shared with
third parties.`

// 静的な規約・プライバシーページ
type StaticHandler struct{}

func NewStaticHandler() *StaticHandler {
	return &StaticHandler{}
}

func (h *StaticHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/conditions", h.conditions)
	e.GET("/privacy", h.privacy)
}

func (h *StaticHandler) conditions(c echo.Context) error {
	return c.String(http.StatusOK, conditionsText)
}

func (h *StaticHandler) privacy(c echo.Context) error {
	return c.String(http.StatusOK, privacyText)
}
