package service

import (
	"testing"

	"go-costing-api/internal/model"
	"go-costing-api/pkg/apperrors"
)

type fakeCategoryRepo struct {
	categories []model.Category
}

func (f *fakeCategoryRepo) FindAllActive() ([]model.Category, error) { return f.categories, nil }

func (f *fakeCategoryRepo) FindByID(id string) (*model.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, apperrors.NotFound("category with ID %s not found", id)
}

func (f *fakeCategoryRepo) Create(category *model.Category) error {
	for _, existing := range f.categories {
		if existing.ID == category.ID {
			return apperrors.Conflict("category with ID %s already exists", category.ID)
		}
	}
	f.categories = append(f.categories, *category)
	return nil
}

func TestCategoryCreate_SetsLifecycleFields(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{})

	created, err := svc.Create(&model.Category{ID: "soaps", Name: "Artisan Soaps", Icon: "🧼"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Active {
		t.Error("created category should be active")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestCategoryCreate_Validation(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{})

	tests := []model.Category{
		{Name: "No ID", Icon: "x"},
		{ID: "c1", Icon: "x"},
		{ID: "c1", Name: "No Icon"},
	}
	for i, category := range tests {
		if _, err := svc.Create(&category); !apperrors.IsInvalidInput(err) {
			t.Errorf("case %d: err = %v, want InvalidInput", i, err)
		}
	}
}

func TestCategoryCreate_DuplicateConflicts(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	if _, err := svc.Create(&model.Category{ID: "soaps", Name: "Artisan Soaps", Icon: "🧼"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(&model.Category{ID: "soaps", Name: "Again", Icon: "🧼"})
	if !apperrors.IsConflict(err) {
		t.Fatalf("err = %v, want Conflict", err)
	}
}

func TestProductCreate_Validation(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{}, &fakeMaterialRepo{}, &fakeRuleRepo{})

	tests := []model.Product{
		{CategoryID: "soaps", Name: "No ID", SuggestedWeight: 100},
		{ID: "p1", Name: "No Category", SuggestedWeight: 100},
		{ID: "p1", CategoryID: "soaps", SuggestedWeight: 100},
		{ID: "p1", CategoryID: "soaps", Name: "No Weight"},
		{ID: "p1", CategoryID: "soaps", Name: "Bad Weight", SuggestedWeight: -1},
	}
	for i, product := range tests {
		if _, err := svc.Create(&product); !apperrors.IsInvalidInput(err) {
			t.Errorf("case %d: err = %v, want InvalidInput", i, err)
		}
	}
}

func TestProductDetails_FiltersToReferencedMaterials(t *testing.T) {
	products := &fakeProductRepo{products: []model.Product{{
		ID:         "prod",
		CategoryID: "soaps",
		Name:       "Test Bar",
		Materials:  []string{"m1"},
	}}}
	materials := &fakeMaterialRepo{materials: []model.Material{
		{ID: "m1", CategoryID: "soaps", Name: "Used"},
		{ID: "m2", CategoryID: "soaps", Name: "Unused"},
	}}
	rules := &fakeRuleRepo{rules: []model.CalculationRule{
		{ID: "r1", CategoryID: "soaps", MaterialID: "m1", Active: true},
		{ID: "r2", CategoryID: "soaps", MaterialID: "m2", Active: true},
	}}
	svc := NewProductService(products, materials, rules)

	details, err := svc.Details("prod")
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if len(details.Materials) != 1 || details.Materials[0].ID != "m1" {
		t.Fatalf("materials = %+v", details.Materials)
	}
	if len(details.CalculationRules) != 1 || details.CalculationRules[0].ID != "r1" {
		t.Fatalf("rules = %+v", details.CalculationRules)
	}
}
