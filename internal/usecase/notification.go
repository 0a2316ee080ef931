package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

type ConfirmationLine struct {
	Name   string
	Author string
	Price  decimal.Decimal
}

// 確定した注文の確認メールに載せる内容。
type ConfirmationData struct {
	Reference string
	Items     []ConfirmationLine

	BasePrice decimal.Decimal
	Surcharge decimal.Decimal
	Total     decimal.Decimal

	DeliveryLabel string
	PaymentLabel  string

	ShippingName    string
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
}

// 確認メールの送信口。SMTP実装とecoモードのno-op実装がある。
// 送信失敗は注文の永続化を止めない（ベストエフォート）。
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, to string, data ConfirmationData) error
}

// 注文の公開参照番号の採番。mainでuuid実装を渡す。
type IDGenerator interface {
	NewID() string
}
