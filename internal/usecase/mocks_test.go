package usecase_test

import (
	"context"

	"bookshop/internal/domain/model"
	repo "bookshop/internal/repository"
	"bookshop/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type BookRepoMock struct{ mock.Mock }

func (m *BookRepoMock) ListAll(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Book)
	return items, args.Error(1)
}

func (m *BookRepoMock) ListFiltered(ctx context.Context, f repo.BookFilter) ([]model.Book, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Book)
	return items, args.Error(1)
}

func (m *BookRepoMock) DistinctAuthors(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]string)
	return items, args.Error(1)
}

func (m *BookRepoMock) DistinctCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]string)
	return items, args.Error(1)
}

func (m *BookRepoMock) Search(ctx context.Context, keyword string) ([]model.Book, error) {
	args := m.Called(ctx, keyword)
	items, _ := args.Get(0).([]model.Book)
	return items, args.Error(1)
}

func (m *BookRepoMock) FindByID(ctx context.Context, id int64) (model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Book)
	return b, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

type OrderBookRepoMock struct{ mock.Mock }

func (m *OrderBookRepoMock) CreateBulk(ctx context.Context, orderID int64, bookIDs []int64) error {
	args := m.Called(ctx, orderID, bookIDs)
	return args.Error(0)
}

func (m *OrderBookRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderBook, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderBook)
	return items, args.Error(1)
}

type SenderMock struct{ mock.Mock }

func (m *SenderMock) SendConfirmation(ctx context.Context, to string, data usecase.ConfirmationData) error {
	args := m.Called(ctx, to, data)
	return args.Error(0)
}

// =====================
// Fakes
// =====================

// トランザクションをそのまま実行するだけのTxManager。
type fakeTxRepos struct {
	books      repo.BookRepository
	orders     repo.OrderRepository
	orderBooks repo.OrderBookRepository
}

func (r *fakeTxRepos) Books() repo.BookRepository           { return r.books }
func (r *fakeTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *fakeTxRepos) OrderBooks() repo.OrderBookRepository { return r.orderBooks }

type fakeTxManager struct {
	repos *fakeTxRepos
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f.repos)
}

// セッションのインメモリ実装。
type fakeSession struct {
	ids     []int64
	draft   *model.OrderDraft
	flashes []string
	saves   int
}

func (s *fakeSession) BookIDs() []int64 {
	return append([]int64(nil), s.ids...)
}

func (s *fakeSession) Append(bookID int64) {
	s.ids = append(s.ids, bookID)
}

func (s *fakeSession) RemoveFirst(bookID int64) bool {
	for i, id := range s.ids {
		if id == bookID {
			s.ids = append(append([]int64(nil), s.ids[:i]...), s.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (s *fakeSession) Draft() (model.OrderDraft, bool) {
	if s.draft == nil {
		return model.OrderDraft{}, false
	}
	return *s.draft, true
}

func (s *fakeSession) SetDraft(d model.OrderDraft) {
	s.draft = &d
}

func (s *fakeSession) ClearDraft() {
	s.draft = nil
}

func (s *fakeSession) ClearCart() {
	s.ids = nil
}

func (s *fakeSession) AddFlash(message string) {
	s.flashes = append(s.flashes, message)
}

func (s *fakeSession) Flashes() []string {
	out := s.flashes
	s.flashes = nil
	return out
}

func (s *fakeSession) Save() error {
	s.saves++
	return nil
}

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }
