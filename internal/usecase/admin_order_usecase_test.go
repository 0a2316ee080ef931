package usecase_test

import (
	"context"
	"testing"

	"bookshop/internal/domain/model"
	repo "bookshop/internal/repository"
	"bookshop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminOrderUsecase_List_NestsLineItemsWithBookDetail(t *testing.T) {
	order := model.Order{
		ID:        5,
		Reference: "ref-5",
		Email:     "buyer@example.com",
		Status:    model.OrderStatusNew,
		BasePrice: decimal.NewFromInt(200),
		Surcharge: decimal.NewFromInt(99),
	}

	orders := new(OrderRepoMock)
	orders.On("ListAll", mock.Anything).Return([]model.Order{order}, nil)

	orderBooks := new(OrderBookRepoMock)
	orderBooks.On("ListByOrderID", mock.Anything, int64(5)).Return([]model.OrderBook{
		{ID: 1, OrderID: 5, BookID: 1},
		{ID: 2, OrderID: 5, BookID: 2},
	}, nil)

	books := new(BookRepoMock)
	books.On("FindByID", mock.Anything, int64(1)).Return(bookA(), nil)
	books.On("FindByID", mock.Anything, int64(2)).Return(bookB(), nil)

	tx := &fakeTxManager{repos: &fakeTxRepos{books: books, orders: orders, orderBooks: orderBooks}}
	uc := usecase.NewAdminOrderUsecase(tx)

	out, err := uc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(5), out[0].ID)
	assert.Len(t, out[0].Items, 2)
	assert.Equal(t, "Válka a mír", out[0].Items[0].Name)
	assert.Equal(t, "Jan Bílý", out[0].Items[0].Author)
	assert.True(t, out[0].Items[0].Price.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "1984", out[0].Items[1].Name)
}

func TestAdminOrderUsecase_List_DeletedBookMarkedUnknown(t *testing.T) {
	orders := new(OrderRepoMock)
	orders.On("ListAll", mock.Anything).Return([]model.Order{{ID: 5}}, nil)

	orderBooks := new(OrderBookRepoMock)
	orderBooks.On("ListByOrderID", mock.Anything, int64(5)).Return([]model.OrderBook{
		{ID: 1, OrderID: 5, BookID: 1},
		{ID: 2, OrderID: 5, BookID: 9},
	}, nil)

	books := new(BookRepoMock)
	books.On("FindByID", mock.Anything, int64(1)).Return(bookA(), nil)
	books.On("FindByID", mock.Anything, int64(9)).Return(model.Book{}, repo.ErrNotFound)

	tx := &fakeTxManager{repos: &fakeTxRepos{books: books, orders: orders, orderBooks: orderBooks}}
	uc := usecase.NewAdminOrderUsecase(tx)

	out, err := uc.List(context.Background())

	//消えた本があっても一覧全体は落ちない
	assert.NoError(t, err)
	assert.Len(t, out[0].Items, 2)
	assert.Equal(t, "unknown", out[0].Items[1].Name)
	assert.Equal(t, int64(9), out[0].Items[1].BookID)
}

func TestAdminOrderUsecase_List_Empty(t *testing.T) {
	orders := new(OrderRepoMock)
	orders.On("ListAll", mock.Anything).Return([]model.Order{}, nil)

	tx := &fakeTxManager{repos: &fakeTxRepos{books: new(BookRepoMock), orders: orders, orderBooks: new(OrderBookRepoMock)}}
	uc := usecase.NewAdminOrderUsecase(tx)

	out, err := uc.List(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, out)
}
