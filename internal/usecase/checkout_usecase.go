package usecase

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"bookshop/internal/domain/model"
	"bookshop/internal/domain/pricing"
	"bookshop/internal/metrics"
	repo "bookshop/internal/repository"

	"github.com/shopspring/decimal"
)

// CheckoutUsecase は3ステップのチェックアウト。
// step1: 入力フォームのデータ / step2: ドラフト作成 / step3: 確定。
type CheckoutUsecase struct {
	tx       repo.TransactionManager
	bookRepo repo.BookRepository
	sender   ConfirmationSender
	idGen    IDGenerator
	m        *metrics.Metrics

	//確認メール送信の上限時間。DBトランザクションは送信中に開かない。
	mailTimeout time.Duration
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	bookRepo repo.BookRepository,
	sender ConfirmationSender,
	idGen IDGenerator,
	m *metrics.Metrics,
	mailTimeout time.Duration,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:          tx,
		bookRepo:    bookRepo,
		sender:      sender,
		idGen:       idGen,
		m:           m,
		mailTimeout: mailTimeout,
	}
}

type CheckoutStartOutput struct {
	DeliveryOptions []pricing.Option `json:"delivery_options"`
	PaymentOptions  []pricing.Option `json:"payment_options"`
	Items           []model.Book     `json:"items"`
	Total           decimal.Decimal  `json:"total"`
}

// POST /checkout/step2 のフォーム入力。
type CheckoutInput struct {
	Email    string
	Delivery string
	Payment  string

	BillingName    string
	BillingAddress string
	BillingCity    string
	BillingZip     string

	//「別の住所に送る」チェック。無ければshippingはbillingを写す。
	AnotherAddress  bool
	ShippingName    string
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
}

type CheckoutPreview struct {
	Items []model.Book     `json:"items"`
	Draft model.OrderDraft `json:"draft"`
	Total decimal.Decimal  `json:"total"`
}

type OrderOutput struct {
	ID             int64           `json:"id"`
	Reference      string          `json:"reference"`
	Status         string          `json:"status"`
	Email          string          `json:"email"`
	DeliveryOption string          `json:"delivery_option"`
	PaymentOption  string          `json:"payment_option"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Surcharge      decimal.Decimal `json:"surcharge"`
	Total          decimal.Decimal `json:"total"`
}

// Start はstep1表示用。状態は変えない。
func (u *CheckoutUsecase) Start(ctx context.Context, sess CartSession) (CheckoutStartOutput, error) {
	items, total, err := resolveCart(ctx, u.bookRepo, sess.BookIDs())
	if err != nil {
		return CheckoutStartOutput{}, err
	}

	return CheckoutStartOutput{
		DeliveryOptions: pricing.DeliveryOptions(),
		PaymentOptions:  pricing.PaymentOptions(),
		Items:           items,
		Total:           total,
	}, nil
}

// PrepareOrder はstep2。カートを値付けしてドラフトをセッションに置く。
// 再送信は後勝ちで上書き、不正入力は前のドラフトに触らない。
func (u *CheckoutUsecase) PrepareOrder(ctx context.Context, sess CartSession, in CheckoutInput) (CheckoutPreview, error) {
	items, total, err := resolveCart(ctx, u.bookRepo, sess.BookIDs())
	if err != nil {
		return CheckoutPreview{}, err
	}
	if len(items) == 0 {
		return CheckoutPreview{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return CheckoutPreview{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	del, err := pricing.Delivery(in.Delivery)
	if err != nil {
		return CheckoutPreview{}, NewHTTPError(http.StatusBadRequest, "invalid delivery")
	}
	pay, err := pricing.Payment(in.Payment)
	if err != nil {
		return CheckoutPreview{}, NewHTTPError(http.StatusBadRequest, "invalid payment")
	}

	billing, err := requireAddress("billing", in.BillingName, in.BillingAddress, in.BillingCity, in.BillingZip)
	if err != nil {
		return CheckoutPreview{}, err
	}

	shipping := billing
	if in.AnotherAddress {
		shipping, err = requireAddress("shipping", in.ShippingName, in.ShippingAddress, in.ShippingCity, in.ShippingZip)
		if err != nil {
			return CheckoutPreview{}, err
		}
	}

	draft := model.OrderDraft{
		Email:         email,
		DeliveryCode:  del.Code,
		DeliveryLabel: del.Label,
		PaymentCode:   pay.Code,
		PaymentLabel:  pay.Label,
		BasePrice:     total,
		Surcharge:     del.Surcharge.Add(pay.Surcharge),

		BillingName:    billing.name,
		BillingAddress: billing.address,
		BillingCity:    billing.city,
		BillingZip:     billing.zip,

		ShippingName:    shipping.name,
		ShippingAddress: shipping.address,
		ShippingCity:    shipping.city,
		ShippingZip:     shipping.zip,
	}

	sess.SetDraft(draft)
	if err := sess.Save(); err != nil {
		return CheckoutPreview{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	return CheckoutPreview{Items: items, Draft: draft, Total: total.Add(draft.Surcharge)}, nil
}

// ConfirmOrder はstep3。確認メール送信→1トランザクションで注文と明細を
// 保存→カートとドラフトを破棄。リロードしても再確定しない。
func (u *CheckoutUsecase) ConfirmOrder(ctx context.Context, sess CartSession) (OrderOutput, error) {
	draft, ok := sess.Draft()
	if !ok {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "nothing to confirm")
	}

	items, _, err := resolveCart(ctx, u.bookRepo, sess.BookIDs())
	if err != nil {
		return OrderOutput{}, err
	}
	if len(items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	reference := u.idGen.NewID()

	//送信はベストエフォート。失敗しても注文は進める。
	//トランザクションを開く前に、時間を区切って送る。
	nctx, cancel := context.WithTimeout(ctx, u.mailTimeout)
	if err := u.sender.SendConfirmation(nctx, draft.Email, buildConfirmation(reference, draft, items)); err != nil {
		u.m.ConfirmationFailures.Inc()
		log.Printf("confirmation send failed: order_ref=%s err=%v", reference, err)
	}
	cancel()

	//価格はstep2で確定した値を使う（ここで再計算しない）
	order := model.Order{
		Reference:      reference,
		Email:          draft.Email,
		Status:         model.OrderStatusNew,
		DeliveryOption: draft.DeliveryLabel,
		PaymentOption:  draft.PaymentLabel,
		BasePrice:      draft.BasePrice,
		Surcharge:      draft.Surcharge,

		BillingName:    draft.BillingName,
		BillingAddress: draft.BillingAddress,
		BillingCity:    draft.BillingCity,
		BillingZip:     draft.BillingZip,

		ShippingName:    draft.ShippingName,
		ShippingAddress: draft.ShippingAddress,
		ShippingCity:    draft.ShippingCity,
		ShippingZip:     draft.ShippingZip,
	}

	bookIDs := make([]int64, 0, len(items))
	for _, b := range items {
		bookIDs = append(bookIDs, b.ID)
	}

	var orderID int64

	//注文と明細は同じトランザクション。途中で失敗したら両方残らない。
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderBooks().CreateBulk(ctx, id, bookIDs); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		orderID = id
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	u.m.OrdersCreated.Inc()

	sess.ClearCart()
	sess.ClearDraft()
	if err := sess.Save(); err != nil {
		//注文は確定済みなのでエラーにはしない
		log.Printf("session clear failed after order %d: %v", orderID, err)
	}

	return OrderOutput{
		ID:             orderID,
		Reference:      reference,
		Status:         string(model.OrderStatusNew),
		Email:          draft.Email,
		DeliveryOption: draft.DeliveryLabel,
		PaymentOption:  draft.PaymentLabel,
		BasePrice:      draft.BasePrice,
		Surcharge:      draft.Surcharge,
		Total:          draft.BasePrice.Add(draft.Surcharge),
	}, nil
}

type addressFields struct {
	name, address, city, zip string
}

func requireAddress(prefix string, name, address, city, zip string) (addressFields, error) {
	a := addressFields{
		name:    strings.TrimSpace(name),
		address: strings.TrimSpace(address),
		city:    strings.TrimSpace(city),
		zip:     strings.TrimSpace(zip),
	}
	if a.name == "" || a.address == "" || a.city == "" || a.zip == "" {
		return addressFields{}, NewHTTPError(http.StatusBadRequest, "missing "+prefix+" fields")
	}
	return a, nil
}

func buildConfirmation(reference string, draft model.OrderDraft, items []model.Book) ConfirmationData {
	lines := make([]ConfirmationLine, 0, len(items))
	for _, b := range items {
		lines = append(lines, ConfirmationLine{Name: b.Name, Author: b.Author, Price: b.Price})
	}

	return ConfirmationData{
		Reference: reference,
		Items:     lines,
		BasePrice: draft.BasePrice,
		Surcharge: draft.Surcharge,
		Total:     draft.BasePrice.Add(draft.Surcharge),

		DeliveryLabel: draft.DeliveryLabel,
		PaymentLabel:  draft.PaymentLabel,

		ShippingName:    draft.ShippingName,
		ShippingAddress: draft.ShippingAddress,
		ShippingCity:    draft.ShippingCity,
		ShippingZip:     draft.ShippingZip,
	}
}
