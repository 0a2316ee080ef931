package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カタログの1冊。author / category は絞り込みのファセットにも使う。
type Book struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Author      string          `gorm:"type:varchar(255);not null;index" json:"author"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"type:varchar(255);not null;index" json:"category"`
	ImageName   string          `gorm:"type:varchar(255)" json:"image_name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
