package repository

import (
	"context"
	"errors"

	"bookshop/internal/domain/model"
	repo "bookshop/internal/repository"

	"gorm.io/gorm"
)

type BookGormRepository struct {
	db *gorm.DB
}

func NewBookGormRepository(db *gorm.DB) *BookGormRepository {
	return &BookGormRepository{db: db}
}

func (r *BookGormRepository) ListAll(ctx context.Context) ([]model.Book, error) {
	var items []model.Book
	err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.Book{}, err
	}
	return items, nil
}

func (r *BookGormRepository) ListFiltered(ctx context.Context, f repo.BookFilter) ([]model.Book, error) {
	q := r.db.WithContext(ctx)

	//空のスライスは制約にしない
	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if len(f.Authors) > 0 {
		q = q.Where("author IN ?", f.Authors)
	}

	var items []model.Book
	if err := q.Order("id asc").Find(&items).Error; err != nil {
		return []model.Book{}, err
	}
	return items, nil
}

func (r *BookGormRepository) DistinctAuthors(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&model.Book{}).
		Distinct().
		Order("author asc").
		Pluck("author", &out).Error
	if err != nil {
		return []string{}, err
	}
	return out, nil
}

func (r *BookGormRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&model.Book{}).
		Distinct().
		Order("category asc").
		Pluck("category", &out).Error
	if err != nil {
		return []string{}, err
	}
	return out, nil
}

func (r *BookGormRepository) Search(ctx context.Context, keyword string) ([]model.Book, error) {
	pattern := "%" + keyword + "%"

	var items []model.Book
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR author ILIKE ?", pattern, pattern).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Book{}, err
	}
	return items, nil
}

func (r *BookGormRepository) FindByID(ctx context.Context, id int64) (model.Book, error) {
	var b model.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Book{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Book{}, err
	}
	return b, nil
}
