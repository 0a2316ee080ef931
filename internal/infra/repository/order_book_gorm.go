package repository

import (
	"context"

	"bookshop/internal/domain/model"

	"gorm.io/gorm"
)

type OrderBookGormRepository struct {
	db *gorm.DB
}

func NewOrderBookGormRepository(db *gorm.DB) *OrderBookGormRepository {
	return &OrderBookGormRepository{db: db}
}

func (r *OrderBookGormRepository) CreateBulk(ctx context.Context, orderID int64, bookIDs []int64) error {
	if len(bookIDs) == 0 {
		return nil
	}

	rows := make([]model.OrderBook, 0, len(bookIDs))
	for _, id := range bookIDs {
		rows = append(rows, model.OrderBook{OrderID: orderID, BookID: id})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *OrderBookGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderBook, error) {
	var items []model.OrderBook
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderBook{}, err
	}
	return items, nil
}
