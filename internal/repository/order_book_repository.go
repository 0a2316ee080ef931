package repository

import (
	"context"

	"bookshop/internal/domain/model"
)

type OrderBookRepository interface {
	//カートの並びと重複をそのまま1行ずつ保存する。
	CreateBulk(ctx context.Context, orderID int64, bookIDs []int64) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderBook, error)
}
