package repository

import (
	"go-costing-api/internal/model"
	"go-costing-api/pkg/apperrors"
	"go-costing-api/pkg/storage"
)

const categoriesFile = "categories.json"

type CategoryRepository interface {
	FindAllActive() ([]model.Category, error)
	FindByID(id string) (*model.Category, error)
	Create(category *model.Category) error
}

type categoryRepo struct {
	store *storage.Store
}

func NewCategoryRepo(store *storage.Store) CategoryRepository {
	return &categoryRepo{store}
}

type categoryDocument struct {
	Categories []model.Category `json:"categories"`
}

func (r *categoryRepo) FindAllActive() ([]model.Category, error) {
	var doc categoryDocument
	if err := r.store.Load(categoriesFile, &doc); err != nil {
		return nil, err
	}
	active := make([]model.Category, 0, len(doc.Categories))
	for _, category := range doc.Categories {
		if category.Active {
			active = append(active, category)
		}
	}
	return active, nil
}

func (r *categoryRepo) FindByID(id string) (*model.Category, error) {
	categories, err := r.FindAllActive()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, apperrors.NotFound("category with ID %s not found", id)
}

// Create appends to the backing document after a duplicate check over the
// whole collection, inactive entries included.
func (r *categoryRepo) Create(category *model.Category) error {
	var doc categoryDocument
	if err := r.store.Load(categoriesFile, &doc); err != nil {
		return err
	}
	for _, existing := range doc.Categories {
		if existing.ID == category.ID {
			return apperrors.Conflict("category with ID %s already exists", category.ID)
		}
	}
	doc.Categories = append(doc.Categories, *category)
	return r.store.Save(categoriesFile, doc)
}
