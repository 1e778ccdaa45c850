package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"go-costing-api/internal/costing"
	"go-costing-api/internal/metrics"
	"go-costing-api/internal/model"
	"go-costing-api/internal/repository"
	"go-costing-api/pkg/apperrors"
	"go-costing-api/pkg/validator"
)

const defaultProfitMargin = 50.0

// CalculateRequest is one product cost calculation. Quantity defaults to 1
// and ProfitMargin to 50 when omitted; ProfitMargin is a pointer so an
// explicit zero margin survives decoding.
type CalculateRequest struct {
	CategoryID          string             `json:"category_id" validate:"required"`
	ProductID           string             `json:"product_id" validate:"required"`
	Weight              float64            `json:"weight" validate:"required,gt=0"`
	Quantity            float64            `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	CustomMaterialCosts map[string]float64 `json:"custom_material_costs,omitempty"`
	ProfitMargin        *float64           `json:"profit_margin,omitempty" validate:"omitempty,gte=0"`
}

type ProductSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Quantity float64 `json:"quantity"`
}

type CostSummary struct {
	UnitCost         float64 `json:"unit_cost"`
	TotalCost        float64 `json:"total_cost"`
	SalePricePerUnit float64 `json:"sale_price_per_unit"`
	TotalSalePrice   float64 `json:"total_sale_price"`
	ProfitPerUnit    float64 `json:"profit_per_unit"`
	TotalProfit      float64 `json:"total_profit"`
}

type BreakdownLine struct {
	MaterialID   string  `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Description  string  `json:"description"`
	QuantityUsed float64 `json:"quantity_used"`
	Unit         string  `json:"unit"`
	UnitCost     float64 `json:"unit_cost"`
	TotalCost    float64 `json:"total_cost"`
}

type ResultMetadata struct {
	ProfitMargin  float64   `json:"profit_margin"`
	CalculatedAt  time.Time `json:"calculated_at"`
	CalculationID string    `json:"calculation_id"`
	Warnings      []string  `json:"warnings,omitempty"`
}

type CostResult struct {
	Product   ProductSummary  `json:"product"`
	Costs     CostSummary     `json:"costs"`
	Breakdown []BreakdownLine `json:"breakdown"`
	Metadata  ResultMetadata  `json:"metadata"`
}

type BatchItemResult struct {
	Index   int              `json:"index"`
	Request CalculateRequest `json:"request"`
	Result  *CostResult      `json:"result"`
}

type BatchItemError struct {
	Index   int              `json:"index"`
	Request CalculateRequest `json:"request"`
	Error   string           `json:"error"`
}

type BatchResult struct {
	SuccessfulCalculations int               `json:"successful_calculations"`
	FailedCalculations     int               `json:"failed_calculations"`
	Results                []BatchItemResult `json:"results"`
	Errors                 []BatchItemError  `json:"errors"`
}

type EstimateRequest struct {
	CategoryID   string   `json:"category_id" validate:"required"`
	ProductID    string   `json:"product_id" validate:"required"`
	Weight       float64  `json:"weight" validate:"required,gt=0"`
	ProfitMargin *float64 `json:"profit_margin,omitempty" validate:"omitempty,gte=0"`
}

type Estimate struct {
	ProductName  string  `json:"product_name"`
	UnitCost     float64 `json:"unit_cost"`
	SalePrice    float64 `json:"sale_price"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

type CalculatorService interface {
	Calculate(req *CalculateRequest) (*CostResult, error)
	CalculateBatch(reqs []CalculateRequest) *BatchResult
	QuickEstimate(req *EstimateRequest) (*Estimate, error)
	ActiveRules(categoryID string) ([]model.CalculationRule, error)
}

type calculatorService struct {
	productRepo  repository.ProductRepository
	materialRepo repository.MaterialRepository
	ruleRepo     repository.RuleRepository

	// strict records skipped material/rule pairs as warnings in the result
	// metadata instead of only logging them, so callers can detect
	// undercounted totals.
	strict bool
}

func NewCalculatorService(productRepo repository.ProductRepository, materialRepo repository.MaterialRepository, ruleRepo repository.RuleRepository, strict bool) CalculatorService {
	return &calculatorService{
		productRepo:  productRepo,
		materialRepo: materialRepo,
		ruleRepo:     ruleRepo,
		strict:       strict,
	}
}

func (s *calculatorService) Calculate(req *CalculateRequest) (*CostResult, error) {
	result, err := s.calculate(req)
	if err != nil {
		metrics.CalculationErrorsTotal.Inc()
		return nil, err
	}
	metrics.CalculationsTotal.Inc()
	return result, nil
}

func (s *calculatorService) calculate(req *CalculateRequest) (*CostResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperrors.InvalidInput("invalid calculation request: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	margin := defaultProfitMargin
	if req.ProfitMargin != nil {
		margin = *req.ProfitMargin
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	materials, err := s.materialRepo.FindByCategory(req.CategoryID)
	if err != nil {
		return nil, err
	}
	rules, err := s.ruleRepo.FindActiveByCategory(req.CategoryID)
	if err != nil {
		return nil, err
	}

	materialsByID := make(map[string]model.Material, len(materials))
	for _, material := range materials {
		materialsByID[material.ID] = material
	}
	// Last rule wins when two active rules target the same material.
	rulesByMaterial := make(map[string]model.CalculationRule, len(rules))
	for _, rule := range rules {
		rulesByMaterial[rule.MaterialID] = rule
	}

	breakdown := make([]BreakdownLine, 0, len(product.Materials))
	var warnings []string
	var unitCost float64

	for _, materialID := range product.Materials {
		material, haveMaterial := materialsByID[materialID]
		rule, haveRule := rulesByMaterial[materialID]
		if !haveMaterial || !haveRule {
			// Incomplete reference data is a soft failure: the material
			// contributes nothing rather than aborting the calculation.
			msg := fmt.Sprintf("material %s or its rule not found, skipped", materialID)
			log.Printf("calculator: %s (product %s)", msg, product.ID)
			metrics.MaterialsSkippedTotal.Inc()
			if s.strict {
				warnings = append(warnings, msg)
			}
			continue
		}

		materialCost := material.CostForProduct(product.ID)
		if custom, ok := req.CustomMaterialCosts[materialID]; ok {
			materialCost = custom
		}

		usage := costing.Evaluate(rule, material, materialCost, req.Weight, product.ID)
		unitCost += usage.Cost
		breakdown = append(breakdown, BreakdownLine{
			MaterialID:   materialID,
			MaterialName: material.Name,
			Description:  usage.Description,
			QuantityUsed: usage.QuantityUsed,
			Unit:         usage.Unit,
			UnitCost:     materialCost,
			TotalCost:    usage.Cost,
		})
	}

	salePrice := unitCost * (1 + margin/100)
	profitPerUnit := salePrice - unitCost

	return &CostResult{
		Product: ProductSummary{
			ID:       product.ID,
			Name:     product.Name,
			Weight:   req.Weight,
			Quantity: quantity,
		},
		Costs: CostSummary{
			UnitCost:         costing.Round2(unitCost),
			TotalCost:        costing.Round2(unitCost * quantity),
			SalePricePerUnit: costing.Round2(salePrice),
			TotalSalePrice:   costing.Round2(salePrice * quantity),
			ProfitPerUnit:    costing.Round2(profitPerUnit),
			TotalProfit:      costing.Round2(profitPerUnit * quantity),
		},
		Breakdown: breakdown,
		Metadata: ResultMetadata{
			ProfitMargin:  margin,
			CalculatedAt:  time.Now().UTC(),
			CalculationID: uuid.NewString(),
			Warnings:      warnings,
		},
	}, nil
}

// CalculateBatch runs each request independently; one failing item never
// aborts the rest, and original indices are preserved on both sides.
func (s *calculatorService) CalculateBatch(reqs []CalculateRequest) *BatchResult {
	batch := &BatchResult{
		Results: make([]BatchItemResult, 0, len(reqs)),
		Errors:  make([]BatchItemError, 0),
	}
	for i := range reqs {
		result, err := s.Calculate(&reqs[i])
		if err != nil {
			batch.Errors = append(batch.Errors, BatchItemError{
				Index:   i,
				Request: reqs[i],
				Error:   err.Error(),
			})
			continue
		}
		batch.Results = append(batch.Results, BatchItemResult{
			Index:   i,
			Request: reqs[i],
			Result:  result,
		})
	}
	batch.SuccessfulCalculations = len(batch.Results)
	batch.FailedCalculations = len(batch.Errors)
	return batch
}

// QuickEstimate runs the same engine with quantity fixed at 1 and projects
// the essential figures.
func (s *calculatorService) QuickEstimate(req *EstimateRequest) (*Estimate, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperrors.InvalidInput("invalid estimate request: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	result, err := s.Calculate(&CalculateRequest{
		CategoryID:   req.CategoryID,
		ProductID:    req.ProductID,
		Weight:       req.Weight,
		Quantity:     1,
		ProfitMargin: req.ProfitMargin,
	})
	if err != nil {
		return nil, err
	}

	return &Estimate{
		ProductName:  result.Product.Name,
		UnitCost:     result.Costs.UnitCost,
		SalePrice:    result.Costs.SalePricePerUnit,
		Profit:       result.Costs.ProfitPerUnit,
		ProfitMargin: result.Metadata.ProfitMargin,
	}, nil
}

func (s *calculatorService) ActiveRules(categoryID string) ([]model.CalculationRule, error) {
	return s.ruleRepo.FindActiveByCategory(categoryID)
}
