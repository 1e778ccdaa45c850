package repository

import (
	"go-costing-api/internal/model"
	"go-costing-api/pkg/apperrors"
	"go-costing-api/pkg/storage"
)

const productsFile = "products.json"

type ProductRepository interface {
	FindAllActive() ([]model.Product, error)
	FindByCategory(categoryID string) ([]model.Product, error)
	FindByID(id string) (*model.Product, error)
	Create(product *model.Product) error
}

type productRepo struct {
	store *storage.Store
}

func NewProductRepo(store *storage.Store) ProductRepository {
	return &productRepo{store}
}

type productDocument struct {
	Products []model.Product `json:"products"`
}

func (r *productRepo) FindAllActive() ([]model.Product, error) {
	var doc productDocument
	if err := r.store.Load(productsFile, &doc); err != nil {
		return nil, err
	}
	active := make([]model.Product, 0, len(doc.Products))
	for _, product := range doc.Products {
		if product.Active {
			active = append(active, product)
		}
	}
	return active, nil
}

func (r *productRepo) FindByCategory(categoryID string) ([]model.Product, error) {
	products, err := r.FindAllActive()
	if err != nil {
		return nil, err
	}
	matched := make([]model.Product, 0, len(products))
	for _, product := range products {
		if product.CategoryID == categoryID {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

func (r *productRepo) FindByID(id string) (*model.Product, error) {
	products, err := r.FindAllActive()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, apperrors.NotFound("product with ID %s not found", id)
}

func (r *productRepo) Create(product *model.Product) error {
	var doc productDocument
	if err := r.store.Load(productsFile, &doc); err != nil {
		return err
	}
	for _, existing := range doc.Products {
		if existing.ID == product.ID {
			return apperrors.Conflict("product with ID %s already exists", product.ID)
		}
	}
	doc.Products = append(doc.Products, *product)
	return r.store.Save(productsFile, doc)
}
