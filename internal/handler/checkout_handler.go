package handler

import (
	"net/http"

	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP。3ステップ。
type CheckoutHandler struct {
	uc       *usecase.CheckoutUsecase
	sessions SessionOpener
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase, sessions SessionOpener) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, sessions: sessions}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/checkout")

	g.GET("/step1", h.step1)
	g.POST("/step2", h.step2)
	//GETも受ける（ドラフトが無ければ400で再確定はしない）
	g.GET("/step3", h.step3)
	g.POST("/step3", h.step3)
}

func (h *CheckoutHandler) step1(c echo.Context) error {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	out, err := h.uc.Start(c.Request().Context(), sess)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) step2(c echo.Context) error {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	in := usecase.CheckoutInput{
		Email:    c.FormValue("email"),
		Delivery: c.FormValue("delivery"),
		Payment:  c.FormValue("payment"),

		BillingName:    c.FormValue("billing_name"),
		BillingAddress: c.FormValue("billing_address"),
		BillingCity:    c.FormValue("billing_city"),
		BillingZip:     c.FormValue("billing_zip"),

		AnotherAddress:  c.FormValue("another_address") != "",
		ShippingName:    c.FormValue("shipping_name"),
		ShippingAddress: c.FormValue("shipping_address"),
		ShippingCity:    c.FormValue("shipping_city"),
		ShippingZip:     c.FormValue("shipping_zip"),
	}

	out, err := h.uc.PrepareOrder(c.Request().Context(), sess, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) step3(c echo.Context) error {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	out, err := h.uc.ConfirmOrder(c.Request().Context(), sess)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
