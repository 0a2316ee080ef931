package mail

import (
	"context"
	"fmt"
	"strings"

	"bookshop/internal/usecase"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender は注文確認メールをSMTPで送る。
// 送信はDialAndSendWithContextで行い、呼び出し側のタイムアウトに従う。
type SMTPSender struct {
	client *gomail.Client
	from   string
}

func NewSMTPSender(host string, port int, user string, password string, from string) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(user),
			gomail.WithPassword(password),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, err
	}
	return &SMTPSender{client: client, from: from}, nil
}

func (s *SMTPSender) SendConfirmation(ctx context.Context, to string, data usecase.ConfirmationData) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return err
	}
	if err := m.To(to); err != nil {
		return err
	}
	m.Subject("Order confirmation " + data.Reference)
	m.SetBodyString(gomail.TypeTextPlain, renderBody(data))

	return s.client.DialAndSendWithContext(ctx, m)
}

// EcoSender はecoモード用のno-op実装。
type EcoSender struct{}

func NewEcoSender() *EcoSender { return &EcoSender{} }

func (*EcoSender) SendConfirmation(ctx context.Context, to string, data usecase.ConfirmationData) error {
	return nil
}

func renderBody(data usecase.ConfirmationData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Thank you for your order %s.\n\n", data.Reference)
	for _, item := range data.Items {
		fmt.Fprintf(&b, "  %s (%s): %s\n", item.Name, item.Author, item.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nItems total: %s\n", data.BasePrice.StringFixed(2))
	fmt.Fprintf(&b, "Delivery and payment: %s (%s, %s)\n", data.Surcharge.StringFixed(2), data.DeliveryLabel, data.PaymentLabel)
	fmt.Fprintf(&b, "Total: %s\n\n", data.Total.StringFixed(2))
	fmt.Fprintf(&b, "Shipping to: %s, %s, %s %s\n", data.ShippingName, data.ShippingAddress, data.ShippingCity, data.ShippingZip)

	return b.String()
}
