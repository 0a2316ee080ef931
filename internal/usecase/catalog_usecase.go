package usecase

import (
	"context"
	"net/http"

	"bookshop/internal/domain/model"
	repo "bookshop/internal/repository"
)

// CatalogUsecase はカタログの閲覧・絞り込み・検索。
type CatalogUsecase struct {
	bookRepo repo.BookRepository
}

func NewCatalogUsecase(bookRepo repo.BookRepository) *CatalogUsecase {
	return &CatalogUsecase{bookRepo: bookRepo}
}

// 絞り込みメニューの1項目。選択中かどうかを持たせて再描画に使う。
type FacetOption struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

type FilterMenu struct {
	Authors    []FacetOption `json:"authors"`
	Categories []FacetOption `json:"categories"`
}

type CatalogInput struct {
	Categories []string
	Authors    []string
}

type CatalogOutput struct {
	Books []model.Book `json:"books"`
	Menu  FilterMenu   `json:"menu"`
}

// List はカタログ一覧。絞り込みは category と author のAND、
// 空の軸は制約しない。
func (u *CatalogUsecase) List(ctx context.Context, in CatalogInput) (CatalogOutput, error) {
	authors, err := u.bookRepo.DistinctAuthors(ctx)
	if err != nil {
		return CatalogOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	categories, err := u.bookRepo.DistinctCategories(ctx)
	if err != nil {
		return CatalogOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var books []model.Book
	if len(in.Categories) == 0 && len(in.Authors) == 0 {
		books, err = u.bookRepo.ListAll(ctx)
	} else {
		books, err = u.bookRepo.ListFiltered(ctx, repo.BookFilter{
			Categories: in.Categories,
			Authors:    in.Authors,
		})
	}
	if err != nil {
		return CatalogOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CatalogOutput{
		Books: books,
		Menu: FilterMenu{
			Authors:    buildFacets(authors, in.Authors),
			Categories: buildFacets(categories, in.Categories),
		},
	}, nil
}

// Search はname/authorの部分一致（大文字小文字を無視）。空文字は全件。
func (u *CatalogUsecase) Search(ctx context.Context, keyword string) ([]model.Book, error) {
	if len(keyword) > 100 {
		return []model.Book{}, NewHTTPError(http.StatusBadRequest, "invalid keyword")
	}

	books, err := u.bookRepo.Search(ctx, keyword)
	if err != nil {
		return []model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return books, nil
}

func (u *CatalogUsecase) GetBook(ctx context.Context, id int64) (model.Book, error) {
	if id <= 0 {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	b, err := u.bookRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func buildFacets(values []string, selected []string) []FacetOption {
	sel := make(map[string]bool, len(selected))
	for _, s := range selected {
		sel[s] = true
	}

	out := make([]FacetOption, 0, len(values))
	for _, v := range values {
		out = append(out, FacetOption{Value: v, Selected: sel[v]})
	}
	return out
}
