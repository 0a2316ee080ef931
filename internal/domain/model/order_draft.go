package model

import "github.com/shopspring/decimal"

// チェックアウトのstep2で作られ、step3の確定まで
// セッションに置かれる注文ドラフト。確定後は破棄する。
type OrderDraft struct {
	Email string `json:"email"`

	DeliveryCode  string `json:"delivery_code"`
	DeliveryLabel string `json:"delivery_label"`
	PaymentCode   string `json:"payment_code"`
	PaymentLabel  string `json:"payment_label"`

	//step2時点のカート合計と追加料金。step3でもこの値を使う。
	BasePrice decimal.Decimal `json:"base_price"`
	Surcharge decimal.Decimal `json:"surcharge"`

	BillingName    string `json:"billing_name"`
	BillingAddress string `json:"billing_address"`
	BillingCity    string `json:"billing_city"`
	BillingZip     string `json:"billing_zip"`

	ShippingName    string `json:"shipping_name"`
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingZip     string `json:"shipping_zip"`
}
