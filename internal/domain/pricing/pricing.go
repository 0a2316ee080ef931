package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// 不明なコードはエラーにして400で返す（黙ってデフォルトにしない）。
var ErrUnknownCode = errors.New("unknown option code")

// 配送・支払の選択肢。ラベルと固定の追加料金を持つ。
type Option struct {
	Code      string          `json:"code"`
	Label     string          `json:"label"`
	Surcharge decimal.Decimal `json:"surcharge"`
}

var deliveryOptions = []Option{
	{Code: "personal", Label: "Personal pickup", Surcharge: decimal.Zero},
	{Code: "transport", Label: "Courier", Surcharge: decimal.NewFromInt(99)},
}

var paymentOptions = []Option{
	{Code: "bank_transfer", Label: "Bank transfer", Surcharge: decimal.Zero},
	{Code: "cod", Label: "Cash on delivery", Surcharge: decimal.NewFromInt(30)},
	{Code: "on_spot", Label: "Cash on pickup", Surcharge: decimal.Zero},
}

// DeliveryOptions は表示順のままコピーを返す。
func DeliveryOptions() []Option {
	out := make([]Option, len(deliveryOptions))
	copy(out, deliveryOptions)
	return out
}

func PaymentOptions() []Option {
	out := make([]Option, len(paymentOptions))
	copy(out, paymentOptions)
	return out
}

func Delivery(code string) (Option, error) {
	return find(deliveryOptions, code)
}

func Payment(code string) (Option, error) {
	return find(paymentOptions, code)
}

// Surcharge は配送と支払の追加料金の合計。
func Surcharge(deliveryCode string, paymentCode string) (decimal.Decimal, error) {
	d, err := Delivery(deliveryCode)
	if err != nil {
		return decimal.Zero, err
	}
	p, err := Payment(paymentCode)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Surcharge.Add(p.Surcharge), nil
}

func find(options []Option, code string) (Option, error) {
	for _, o := range options {
		if o.Code == code {
			return o, nil
		}
	}
	return Option{}, ErrUnknownCode
}
