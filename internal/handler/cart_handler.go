package handler

import (
	"net/http"
	"strconv"

	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc       *usecase.CartUsecase
	sessions SessionOpener
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, sessions SessionOpener) *CartHandler {
	return &CartHandler{uc: uc, sessions: sessions}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.view)
	g.GET("/add/:id", h.add)
	g.GET("/remove/:id", h.remove)
}

func (h *CartHandler) view(c echo.Context) error {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	out, err := h.uc.View(c.Request().Context(), sess)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) add(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	sess, err := h.sessions.Open(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	if err := h.uc.Add(c.Request().Context(), sess, id); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	sess, err := h.sessions.Open(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
	}

	if err := h.uc.Remove(c.Request().Context(), sess, id); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/cart")
}
