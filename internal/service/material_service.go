package service

import (
	"go-costing-api/internal/model"
	"go-costing-api/internal/repository"
)

type MaterialService interface {
	ListActive() ([]model.Material, error)
	ByCategory(categoryID string) ([]model.Material, error)
	ByID(id string) (*model.Material, error)
}

type materialService struct {
	materialRepo repository.MaterialRepository
}

func NewMaterialService(materialRepo repository.MaterialRepository) MaterialService {
	return &materialService{materialRepo: materialRepo}
}

func (s *materialService) ListActive() ([]model.Material, error) {
	return s.materialRepo.FindAllActive()
}

func (s *materialService) ByCategory(categoryID string) ([]model.Material, error) {
	return s.materialRepo.FindByCategory(categoryID)
}

func (s *materialService) ByID(id string) (*model.Material, error) {
	return s.materialRepo.FindByID(id)
}
