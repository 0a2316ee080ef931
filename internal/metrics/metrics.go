package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	OrdersCreated        prometheus.Counter
	ConfirmationFailures prometheus.Counter
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry はテストで独立したレジストリを使うための口。
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Name:      "orders_created_total",
		Help:      "Total number of committed orders.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Name:      "confirmation_failures_total",
		Help:      "Total number of failed confirmation sends.",
	})

	reg.MustRegister(orders, failures)
	return &Metrics{OrdersCreated: orders, ConfirmationFailures: failures}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
