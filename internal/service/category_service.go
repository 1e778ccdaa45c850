package service

import (
	"time"

	"go-costing-api/internal/model"
	"go-costing-api/internal/repository"
	"go-costing-api/pkg/apperrors"
	"go-costing-api/pkg/validator"
)

type CategoryService interface {
	ListActive() ([]model.Category, error)
	ByID(id string) (*model.Category, error)
	Create(category *model.Category) (*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListActive() ([]model.Category, error) {
	return s.categoryRepo.FindAllActive()
}

func (s *categoryService) ByID(id string) (*model.Category, error) {
	return s.categoryRepo.FindByID(id)
}

func (s *categoryService) Create(category *model.Category) (*model.Category, error) {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		first := errs[0]
		return nil, apperrors.InvalidInput("invalid category: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	now := time.Now().UTC()
	category.Active = true
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}
