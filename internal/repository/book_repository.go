package repository

import (
	"context"
	"errors"

	"bookshop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ファセット絞り込み。空のスライスはその軸を制約しない。
type BookFilter struct {
	Categories []string
	Authors    []string
}

// 本の永続化（取得だけ）を約束。登録・更新は管理側の仕事で対象外。
type BookRepository interface {
	ListAll(ctx context.Context) ([]model.Book, error)
	//category と author のAND絞り込み。どちらもIN条件。
	ListFiltered(ctx context.Context, f BookFilter) ([]model.Book, error)
	DistinctAuthors(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	//name または author の部分一致（大文字小文字を無視）。空文字は全件。
	Search(ctx context.Context, keyword string) ([]model.Book, error)
	FindByID(ctx context.Context, id int64) (model.Book, error)
}
