package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"go-costing-api/internal/service"
	"go-costing-api/pkg/apperrors"
)

type CalculatorHandler struct {
	calculator service.CalculatorService
}

func NewCalculatorHandler(calculator service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculator: calculator}
}

func (h *CalculatorHandler) Calculate(c *fiber.Ctx) error {
	var req service.CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidInput("invalid JSON body"), "Failed to calculate product cost")
	}

	result, err := h.calculator.Calculate(&req)
	if err != nil {
		return respondError(c, err, "Failed to calculate product cost")
	}
	return respond(c, fiber.StatusOK, result, "Calculation completed successfully")
}

type batchRequest struct {
	Calculations []service.CalculateRequest `json:"calculations"`
}

func (h *CalculatorHandler) CalculateBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidInput("invalid JSON body"), "Failed to run batch calculation")
	}
	if len(req.Calculations) == 0 {
		return respondError(c, apperrors.InvalidInput("a non-empty calculations array is required"), "Failed to run batch calculation")
	}

	batch := h.calculator.CalculateBatch(req.Calculations)
	message := fmt.Sprintf("Batch calculation completed: %d successful, %d failed",
		batch.SuccessfulCalculations, batch.FailedCalculations)
	return respond(c, fiber.StatusOK, batch, message)
}

func (h *CalculatorHandler) QuickEstimate(c *fiber.Ctx) error {
	var req service.EstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidInput("invalid JSON body"), "Failed to run quick estimate")
	}

	estimate, err := h.calculator.QuickEstimate(&req)
	if err != nil {
		return respondError(c, err, "Failed to run quick estimate")
	}
	return respond(c, fiber.StatusOK, estimate, "Quick estimate completed successfully")
}

func (h *CalculatorHandler) GetRules(c *fiber.Ctx) error {
	rules, err := h.calculator.ActiveRules(c.Params("categoryId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch calculation rules")
	}
	return respond(c, fiber.StatusOK, rules, "Calculation rules fetched successfully")
}

// Export runs a batch calculation and returns the results as an Excel
// workbook instead of JSON.
func (h *CalculatorHandler) Export(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidInput("invalid JSON body"), "Failed to export calculations")
	}
	if len(req.Calculations) == 0 {
		return respondError(c, apperrors.InvalidInput("a non-empty calculations array is required"), "Failed to export calculations")
	}

	batch := h.calculator.CalculateBatch(req.Calculations)
	file, fileName, err := service.BuildBatchWorkbook(batch)
	if err != nil {
		return respondError(c, err, "Failed to export calculations")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(file)
}
