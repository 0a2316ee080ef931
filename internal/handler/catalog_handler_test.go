package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bookshop/internal/domain/model"
	repo "bookshop/internal/repository"
	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type catalogBookRepoMock struct{ mock.Mock }

func (m *catalogBookRepoMock) ListAll(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Book)
	return items, args.Error(1)
}

func (m *catalogBookRepoMock) ListFiltered(ctx context.Context, f repo.BookFilter) ([]model.Book, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Book)
	return items, args.Error(1)
}

func (m *catalogBookRepoMock) DistinctAuthors(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]string)
	return items, args.Error(1)
}

func (m *catalogBookRepoMock) DistinctCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]string)
	return items, args.Error(1)
}

func (m *catalogBookRepoMock) Search(ctx context.Context, keyword string) ([]model.Book, error) {
	args := m.Called(ctx, keyword)
	items, _ := args.Get(0).([]model.Book)
	return items, args.Error(1)
}

func (m *catalogBookRepoMock) FindByID(ctx context.Context, id int64) (model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Book)
	return b, args.Error(1)
}

func TestCatalogHandler_Detail_NonNumericID(t *testing.T) {
	h := NewCatalogHandler(usecase.NewCatalogUsecase(new(catalogBookRepoMock)))

	req := httptest.NewRequest(http.MethodGet, "/book?id=abc", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.detail(c)

	//数値でないidはnot found。サーバエラーにはしない。
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_Detail_MissingID(t *testing.T) {
	h := NewCatalogHandler(usecase.NewCatalogUsecase(new(catalogBookRepoMock)))

	req := httptest.NewRequest(http.MethodGet, "/book", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.detail(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_Home_PostFormFilters(t *testing.T) {
	bRepo := new(catalogBookRepoMock)
	bRepo.On("DistinctAuthors", mock.Anything).Return([]string{"Jan Bílý"}, nil)
	bRepo.On("DistinctCategories", mock.Anything).Return([]string{"Fiction", "Poetry"}, nil)
	bRepo.On("ListFiltered", mock.Anything, repo.BookFilter{
		Categories: []string{"Fiction", "Poetry"},
	}).Return([]model.Book{{ID: 1}}, nil)

	h := NewCatalogHandler(usecase.NewCatalogUsecase(bRepo))

	form := url.Values{"category": {"Fiction", "Poetry"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.home(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CatalogOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Books, 1)
	bRepo.AssertExpectations(t)
}

func TestCatalogHandler_Search_FormKeyword(t *testing.T) {
	bRepo := new(catalogBookRepoMock)
	bRepo.On("Search", mock.Anything, "prsten").Return([]model.Book{{ID: 9}}, nil)

	h := NewCatalogHandler(usecase.NewCatalogUsecase(bRepo))

	form := url.Values{"keyword": {"prsten"}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.search(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	bRepo.AssertExpectations(t)
}

func TestWriteError_MapsHTTPError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid delivery"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid delivery", body.Error)
}
