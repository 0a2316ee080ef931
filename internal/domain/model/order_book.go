package model

import "time"

// 注文明細。数量カラムは持たず、同じ本が複数回カートに入っていれば
// その回数ぶん行を作る。
type OrderBook struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	BookID    int64     `gorm:"not null;index" json:"book_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
