package usecase

import (
	"context"
	"net/http"
	"time"

	"bookshop/internal/domain/model"
	repo "bookshop/internal/repository"

	"github.com/shopspring/decimal"
)

// AdminOrderUsecase は管理画面の注文一覧。
type AdminOrderUsecase struct {
	tx repo.TransactionManager
}

func NewAdminOrderUsecase(tx repo.TransactionManager) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx}
}

type AdminOrderItemOutput struct {
	BookID int64           `json:"book_id"`
	Name   string          `json:"name"`
	Author string          `json:"author"`
	Price  decimal.Decimal `json:"price"`
}

type AdminOrderOutput struct {
	ID             int64           `json:"id"`
	Reference      string          `json:"reference"`
	Email          string          `json:"email"`
	Status         string          `json:"status"`
	DeliveryOption string          `json:"delivery_option"`
	PaymentOption  string          `json:"payment_option"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Surcharge      decimal.Decimal `json:"surcharge"`

	BillingName    string `json:"billing_name"`
	BillingAddress string `json:"billing_address"`
	BillingCity    string `json:"billing_city"`
	BillingZip     string `json:"billing_zip"`

	ShippingName    string `json:"shipping_name"`
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingZip     string `json:"shipping_zip"`

	CreatedAt time.Time              `json:"created_at"`
	Items     []AdminOrderItemOutput `json:"items"`
}

// List は全注文と、その明細を本の情報付きで返す。
// 明細の本が消えていても一覧は落とさず "unknown" で埋める。
func (u *AdminOrderUsecase) List(ctx context.Context) ([]AdminOrderOutput, error) {
	var outs []AdminOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAll(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]AdminOrderOutput, 0, len(orders))
		for _, o := range orders {
			lines, err := r.OrderBooks().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			items := make([]AdminOrderItemOutput, 0, len(lines))
			for _, line := range lines {
				b, err := r.Books().FindByID(ctx, line.BookID)
				if err == repo.ErrNotFound {
					items = append(items, AdminOrderItemOutput{BookID: line.BookID, Name: "unknown"})
					continue
				}
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				items = append(items, AdminOrderItemOutput{
					BookID: b.ID,
					Name:   b.Name,
					Author: b.Author,
					Price:  b.Price,
				})
			}

			outs = append(outs, toAdminOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []AdminOrderOutput{}, err
	}
	return outs, nil
}

func toAdminOrderOutput(o model.Order, items []AdminOrderItemOutput) AdminOrderOutput {
	return AdminOrderOutput{
		ID:             o.ID,
		Reference:      o.Reference,
		Email:          o.Email,
		Status:         string(o.Status),
		DeliveryOption: o.DeliveryOption,
		PaymentOption:  o.PaymentOption,
		BasePrice:      o.BasePrice,
		Surcharge:      o.Surcharge,

		BillingName:    o.BillingName,
		BillingAddress: o.BillingAddress,
		BillingCity:    o.BillingCity,
		BillingZip:     o.BillingZip,

		ShippingName:    o.ShippingName,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingZip:     o.ShippingZip,

		CreatedAt: o.CreatedAt,
		Items:     items,
	}
}
