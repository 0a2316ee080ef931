package handler

import (
	"net/http"
	"strconv"

	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// カタログの公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	//POSTはフォームの絞り込み付き一覧
	e.GET("/", h.home)
	e.POST("/", h.home)
	e.GET("/book", h.detail)
	e.POST("/search", h.search)
}

func (h *CatalogHandler) home(c echo.Context) error {
	in := usecase.CatalogInput{}

	if c.Request().Method == http.MethodPost {
		form, err := c.FormParams()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form"})
		}
		//category / author は繰り返しフィールド
		in.Categories = form["category"]
		in.Authors = form["author"]
	}

	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) detail(c echo.Context) error {
	//idは信用しない。数値でなければnot foundにする（落とさない）。
	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	b, err := h.uc.GetBook(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, b)
}

func (h *CatalogHandler) search(c echo.Context) error {
	keyword := c.FormValue("keyword")

	books, err := h.uc.Search(c.Request().Context(), keyword)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, books)
}
