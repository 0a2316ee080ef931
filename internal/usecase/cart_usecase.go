package usecase

import (
	"context"
	"fmt"
	"net/http"

	"bookshop/internal/domain/model"
	repo "bookshop/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase はセッションカートの業務ロジック。
// カート本体はセッションに置かれ、ここでは本IDを実体に解決する。
type CartUsecase struct {
	bookRepo repo.BookRepository
}

func NewCartUsecase(bookRepo repo.BookRepository) *CartUsecase {
	return &CartUsecase{bookRepo: bookRepo}
}

type CartOutput struct {
	Items    []model.Book    `json:"items"`
	Total    decimal.Decimal `json:"total"`
	Messages []string        `json:"messages,omitempty"`
}

// Add は存在する本だけカートに積む。解決できないIDは404で拒否する。
func (u *CartUsecase) Add(ctx context.Context, sess CartSession, bookID int64) error {
	if bookID <= 0 {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	b, err := u.bookRepo.FindByID(ctx, bookID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	sess.Append(bookID)
	sess.AddFlash(fmt.Sprintf("Added %q to cart.", b.Name))

	if err := sess.Save(); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return nil
}

// Remove は最初の1件だけ消す。入っていなければ何もしない（エラーでもない）。
func (u *CartUsecase) Remove(ctx context.Context, sess CartSession, bookID int64) error {
	if bookID <= 0 {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if !sess.RemoveFirst(bookID) {
		return nil
	}

	//本が消えていてもカートからの除去は成立させる
	if b, err := u.bookRepo.FindByID(ctx, bookID); err == nil {
		sess.AddFlash(fmt.Sprintf("Removed %q from cart.", b.Name))
	}

	if err := sess.Save(); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return nil
}

// View はカート画面用。フラッシュを消費するのでSaveまで行う。
func (u *CartUsecase) View(ctx context.Context, sess CartSession) (CartOutput, error) {
	items, total, err := resolveCart(ctx, u.bookRepo, sess.BookIDs())
	if err != nil {
		return CartOutput{}, err
	}

	messages := sess.Flashes()
	if err := sess.Save(); err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	return CartOutput{Items: items, Total: total, Messages: messages}, nil
}

// Materialize はチェックアウト側が使う読み取り口。フラッシュには触らない。
func (u *CartUsecase) Materialize(ctx context.Context, sess CartSession) (CartOutput, error) {
	items, total, err := resolveCart(ctx, u.bookRepo, sess.BookIDs())
	if err != nil {
		return CartOutput{}, err
	}
	return CartOutput{Items: items, Total: total}, nil
}

// カートのID列を本の列と合計金額に解決する。
// 消えた本が混ざっていたらエラー（落とさずに返す）。
func resolveCart(ctx context.Context, books repo.BookRepository, ids []int64) ([]model.Book, decimal.Decimal, error) {
	items := make([]model.Book, 0, len(ids))
	total := decimal.Zero

	for _, id := range ids {
		b, err := books.FindByID(ctx, id)
		if err == repo.ErrNotFound {
			return nil, decimal.Zero, NewHTTPError(http.StatusNotFound, "book no longer available")
		}
		if err != nil {
			return nil, decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		items = append(items, b)
		total = total.Add(b.Price)
	}
	return items, total, nil
}
