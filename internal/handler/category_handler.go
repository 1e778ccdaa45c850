package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-costing-api/internal/model"
	"go-costing-api/internal/service"
	"go-costing-api/pkg/apperrors"
)

type CategoryHandler struct {
	categories service.CategoryService
	products   service.ProductService
	materials  service.MaterialService
}

func NewCategoryHandler(categories service.CategoryService, products service.ProductService, materials service.MaterialService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		products:   products,
		materials:  materials,
	}
}

func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	categories, err := h.categories.ListActive()
	if err != nil {
		return respondError(c, err, "Failed to fetch categories")
	}
	return respond(c, fiber.StatusOK, categories, "Categories fetched successfully")
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	category, err := h.categories.ByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch category")
	}
	return respond(c, fiber.StatusOK, category, "Category fetched successfully")
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return respondError(c, apperrors.InvalidInput("invalid JSON body"), "Failed to create category")
	}

	created, err := h.categories.Create(&category)
	if err != nil {
		return respondError(c, err, "Failed to create category")
	}
	return respond(c, fiber.StatusCreated, created, "Category created successfully")
}

// GetProducts lists the products of one category; the category must exist.
func (h *CategoryHandler) GetProducts(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.categories.ByID(id); err != nil {
		return respondError(c, err, "Failed to fetch category products")
	}

	products, err := h.products.ByCategory(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch category products")
	}
	return respond(c, fiber.StatusOK, products, "Category products fetched successfully")
}

func (h *CategoryHandler) GetMaterials(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.categories.ByID(id); err != nil {
		return respondError(c, err, "Failed to fetch category materials")
	}

	materials, err := h.materials.ByCategory(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch category materials")
	}
	return respond(c, fiber.StatusOK, materials, "Category materials fetched successfully")
}
