package repository

import (
	"go-costing-api/internal/model"
	"go-costing-api/pkg/apperrors"
	"go-costing-api/pkg/storage"
)

const materialsFile = "materials.json"

type MaterialRepository interface {
	FindAllActive() ([]model.Material, error)
	FindByCategory(categoryID string) ([]model.Material, error)
	FindByID(id string) (*model.Material, error)
}

type materialRepo struct {
	store *storage.Store
}

func NewMaterialRepo(store *storage.Store) MaterialRepository {
	return &materialRepo{store}
}

type materialDocument struct {
	Materials []model.Material `json:"materials"`
}

func (r *materialRepo) FindAllActive() ([]model.Material, error) {
	var doc materialDocument
	if err := r.store.Load(materialsFile, &doc); err != nil {
		return nil, err
	}
	active := make([]model.Material, 0, len(doc.Materials))
	for _, material := range doc.Materials {
		if material.Active {
			active = append(active, material)
		}
	}
	return active, nil
}

func (r *materialRepo) FindByCategory(categoryID string) ([]model.Material, error) {
	materials, err := r.FindAllActive()
	if err != nil {
		return nil, err
	}
	matched := make([]model.Material, 0, len(materials))
	for _, material := range materials {
		if material.CategoryID == categoryID {
			matched = append(matched, material)
		}
	}
	return matched, nil
}

func (r *materialRepo) FindByID(id string) (*model.Material, error) {
	materials, err := r.FindAllActive()
	if err != nil {
		return nil, err
	}
	for i := range materials {
		if materials[i].ID == id {
			return &materials[i], nil
		}
	}
	return nil, apperrors.NotFound("material with ID %s not found", id)
}
