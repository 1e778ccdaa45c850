package service

import (
	"time"

	"go-costing-api/internal/model"
	"go-costing-api/internal/repository"
	"go-costing-api/pkg/apperrors"
	"go-costing-api/pkg/validator"
)

// ProductDetails bundles a product with the materials it references and the
// calculation rules that apply to those materials.
type ProductDetails struct {
	Product          *model.Product          `json:"product"`
	Materials        []model.Material        `json:"materials"`
	CalculationRules []model.CalculationRule `json:"calculation_rules"`
}

type ProductService interface {
	ListActive() ([]model.Product, error)
	ByCategory(categoryID string) ([]model.Product, error)
	ByID(id string) (*model.Product, error)
	Details(id string) (*ProductDetails, error)
	Create(product *model.Product) (*model.Product, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	materialRepo repository.MaterialRepository
	ruleRepo     repository.RuleRepository
}

func NewProductService(productRepo repository.ProductRepository, materialRepo repository.MaterialRepository, ruleRepo repository.RuleRepository) ProductService {
	return &productService{
		productRepo:  productRepo,
		materialRepo: materialRepo,
		ruleRepo:     ruleRepo,
	}
}

func (s *productService) ListActive() ([]model.Product, error) {
	return s.productRepo.FindAllActive()
}

func (s *productService) ByCategory(categoryID string) ([]model.Product, error) {
	return s.productRepo.FindByCategory(categoryID)
}

func (s *productService) ByID(id string) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

// Details resolves the product plus the subset of its category's materials
// and active rules that its bill of materials actually references.
func (s *productService) Details(id string) (*ProductDetails, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	materials, err := s.materialRepo.FindByCategory(product.CategoryID)
	if err != nil {
		return nil, err
	}
	rules, err := s.ruleRepo.FindActiveByCategory(product.CategoryID)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]bool, len(product.Materials))
	for _, materialID := range product.Materials {
		referenced[materialID] = true
	}

	details := &ProductDetails{
		Product:          product,
		Materials:        make([]model.Material, 0, len(product.Materials)),
		CalculationRules: make([]model.CalculationRule, 0, len(product.Materials)),
	}
	for _, material := range materials {
		if referenced[material.ID] {
			details.Materials = append(details.Materials, material)
		}
	}
	for _, rule := range rules {
		if referenced[rule.MaterialID] {
			details.CalculationRules = append(details.CalculationRules, rule)
		}
	}
	return details, nil
}

func (s *productService) Create(product *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return nil, apperrors.InvalidInput("invalid product: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	if product.Materials == nil {
		product.Materials = []string{}
	}
	product.Active = true
	product.CreatedAt = time.Now().UTC()

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}
