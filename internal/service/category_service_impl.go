package service

import (
	"context"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/repository"
)

type categoryService struct {
	categories repository.CategoryRepo
}

func NewCategoryService(categories repository.CategoryRepo) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) GetOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	return s.categories.GetOrCreate(ctx, name)
}

func (s *categoryService) Rename(ctx context.Context, id, name string) error {
	return s.categories.Rename(ctx, id, name)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
