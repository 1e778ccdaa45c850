package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-costing-api/internal/model"
	"go-costing-api/internal/service"
	"go-costing-api/pkg/apperrors"
)

type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	products, err := h.products.ListActive()
	if err != nil {
		return respondError(c, err, "Failed to fetch products")
	}
	return respond(c, fiber.StatusOK, products, "Products fetched successfully")
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.products.ByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch product")
	}
	return respond(c, fiber.StatusOK, product, "Product fetched successfully")
}

func (h *ProductHandler) GetByCategory(c *fiber.Ctx) error {
	products, err := h.products.ByCategory(c.Params("categoryId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch category products")
	}
	return respond(c, fiber.StatusOK, products, "Category products fetched successfully")
}

func (h *ProductHandler) GetDetails(c *fiber.Ctx) error {
	details, err := h.products.Details(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch product details")
	}
	return respond(c, fiber.StatusOK, details, "Product details fetched successfully")
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, apperrors.InvalidInput("invalid JSON body"), "Failed to create product")
	}

	created, err := h.products.Create(&product)
	if err != nil {
		return respondError(c, err, "Failed to create product")
	}
	return respond(c, fiber.StatusCreated, created, "Product created successfully")
}
