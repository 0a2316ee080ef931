package handler

import (
	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// リクエストから訪問者セッションを開く口。実装はinfra/websession。
type SessionOpener interface {
	Open(c echo.Context) (usecase.CartSession, error)
}
