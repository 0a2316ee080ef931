package repository

import (
	"context"

	"bookshop/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	//管理画面用。id昇順で全件。
	ListAll(ctx context.Context) ([]model.Order, error)
}
