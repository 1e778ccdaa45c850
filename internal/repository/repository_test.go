package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-costing-api/internal/model"
	"go-costing-api/pkg/apperrors"
	"go-costing-api/pkg/storage"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func newTestStore(t *testing.T) (*storage.Store, string) {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "categories.json", `{"categories":[
		{"id":"soaps","name":"Artisan Soaps","icon":"🧼","active":true},
		{"id":"retired","name":"Old Line","icon":"📦","active":false}
	]}`)
	writeFile(t, dir, "products.json", `{"products":[
		{"id":"lavender-bar","category_id":"soaps","name":"Lavender Bar","suggested_weight":120,"materials":["olive-oil"],"active":true},
		{"id":"hidden","category_id":"soaps","name":"Hidden","suggested_weight":100,"active":false}
	]}`)
	writeFile(t, dir, "materials.json", `{"materials":[
		{"id":"olive-oil","category_id":"soaps","name":"Olive Oil","unit":"g","cost_per_unit":0.008,"active":true},
		{"id":"gone","category_id":"soaps","name":"Gone","unit":"g","cost_per_unit":1,"active":false}
	]}`)
	writeFile(t, dir, "calculation-rules.json", `{"calculation_rules":[
		{"id":"r1","category_id":"soaps","material_id":"olive-oil","calculation_type":"percentage_weight","parameters":{"percentage":0.65},"active":true},
		{"id":"r2","category_id":"soaps","material_id":"olive-oil","calculation_type":"fixed_quantity","parameters":{"quantity":1},"active":false},
		{"id":"r3","category_id":"candles","material_id":"soy-wax","calculation_type":"percentage_weight","parameters":{"percentage":0.9},"active":true}
	]}`)

	return storage.NewStore(dir, time.Minute), dir
}

func TestCategoryRepo_ActiveFiltering(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewCategoryRepo(store)

	categories, err := repo.FindAllActive()
	if err != nil {
		t.Fatalf("FindAllActive: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "soaps" {
		t.Fatalf("categories = %+v", categories)
	}

	if _, err := repo.FindByID("retired"); !apperrors.IsNotFound(err) {
		t.Fatalf("inactive category must read as not found, got %v", err)
	}
}

func TestCategoryRepo_CreatePersistsAndConflicts(t *testing.T) {
	store, dir := newTestStore(t)
	repo := NewCategoryRepo(store)

	err := repo.Create(&model.Category{ID: "candles", Name: "Candles", Icon: "🕯️", Active: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A fresh store over the same dir must see the appended record.
	fresh := NewCategoryRepo(storage.NewStore(dir, time.Minute))
	if _, err := fresh.FindByID("candles"); err != nil {
		t.Fatalf("created category not persisted: %v", err)
	}

	// Duplicate ids conflict, inactive entries included.
	if err := repo.Create(&model.Category{ID: "retired", Name: "X", Icon: "y"}); !apperrors.IsConflict(err) {
		t.Fatalf("err = %v, want Conflict", err)
	}
}

func TestProductRepo_Reads(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewProductRepo(store)

	products, err := repo.FindByCategory("soaps")
	if err != nil {
		t.Fatalf("FindByCategory: %v", err)
	}
	if len(products) != 1 || products[0].ID != "lavender-bar" {
		t.Fatalf("products = %+v", products)
	}

	if _, err := repo.FindByID("hidden"); !apperrors.IsNotFound(err) {
		t.Fatalf("inactive product must read as not found, got %v", err)
	}
}

func TestMaterialRepo_Reads(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewMaterialRepo(store)

	materials, err := repo.FindByCategory("soaps")
	if err != nil {
		t.Fatalf("FindByCategory: %v", err)
	}
	if len(materials) != 1 || materials[0].ID != "olive-oil" {
		t.Fatalf("materials = %+v", materials)
	}

	material, err := repo.FindByID("olive-oil")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if material.CostPerUnit != 0.008 {
		t.Fatalf("cost_per_unit = %v", material.CostPerUnit)
	}
}

func TestRuleRepo_ActiveByCategory(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewRuleRepo(store)

	rules, err := repo.FindActiveByCategory("soaps")
	if err != nil {
		t.Fatalf("FindActiveByCategory: %v", err)
	}
	if len(rules) != 1 || rules[0].ID != "r1" {
		t.Fatalf("rules = %+v", rules)
	}
	if _, ok := rules[0].Params.(model.PercentageWeightParams); !ok {
		t.Fatalf("params type = %T", rules[0].Params)
	}
}

func TestRepos_CorruptDocumentIsDataUnavailable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "categories.json", `{"categories": [not json`)
	repo := NewCategoryRepo(storage.NewStore(dir, time.Minute))

	_, err := repo.FindAllActive()
	if apperrors.KindOf(err) != apperrors.KindDataUnavailable {
		t.Fatalf("err = %v, want DataUnavailable", err)
	}
}

func TestRepos_MissingDocumentIsDataUnavailable(t *testing.T) {
	repo := NewProductRepo(storage.NewStore(t.TempDir(), time.Minute))

	_, err := repo.FindAllActive()
	if apperrors.KindOf(err) != apperrors.KindDataUnavailable {
		t.Fatalf("err = %v, want DataUnavailable", err)
	}
}
