package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew OrderStatus = "New"
)

// 確定済みの注文。作成後は更新しない。
// shipping_* は常に埋まっている（別住所指定が無ければbillingを写す）。
type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string      `gorm:"type:varchar(64);not null;uniqueIndex" json:"reference"`
	Email     string      `gorm:"type:varchar(255);not null" json:"email"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	//表示ラベル（Courier など）を確定時の値で保存する
	DeliveryOption string `gorm:"type:varchar(100);not null" json:"delivery_option"`
	PaymentOption  string `gorm:"type:varchar(100);not null" json:"payment_option"`

	//確定時のカート合計と配送・支払の追加料金合計。後から再計算しない。
	BasePrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"base_price"`
	Surcharge decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"surcharge"`

	BillingName    string `gorm:"type:varchar(255);not null" json:"billing_name"`
	BillingAddress string `gorm:"type:varchar(255);not null" json:"billing_address"`
	BillingCity    string `gorm:"type:varchar(255);not null" json:"billing_city"`
	BillingZip     string `gorm:"type:varchar(20);not null" json:"billing_zip"`

	ShippingName    string `gorm:"type:varchar(255);not null" json:"shipping_name"`
	ShippingAddress string `gorm:"type:varchar(255);not null" json:"shipping_address"`
	ShippingCity    string `gorm:"type:varchar(255);not null" json:"shipping_city"`
	ShippingZip     string `gorm:"type:varchar(20);not null" json:"shipping_zip"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
