// Package costing holds the pure material-cost evaluation logic. It does no
// I/O; the service layer resolves entities and unit costs before calling in.
package costing

import (
	"fmt"

	"go-costing-api/internal/model"
)

// Usage is the outcome of evaluating one rule against one material: how much
// of the material one product unit consumes, and what that consumption costs.
// QuantityUsed is rounded to 3 decimals and Cost to 2; the aggregator sums
// the rounded per-material costs.
type Usage struct {
	QuantityUsed float64
	Cost         float64
	Description  string
	Unit         string
}

// Evaluate applies one calculation rule to one material. unitCost is the
// already-resolved cost per unit (request override or material cost);
// variable_by_product rules may replace it with the material's per-product
// override. Unknown calculation types yield the zero result rather than an
// error, so one bad rule cannot abort a whole calculation.
func Evaluate(rule model.CalculationRule, material model.Material, unitCost, productWeight float64, productID string) Usage {
	switch params := rule.Params.(type) {
	case model.PercentageWeightParams:
		quantity := productWeight * params.Percentage
		factor := params.ConversionFactor
		if factor == 0 {
			factor = 1
		}
		unit := params.BaseUnit
		if unit == "" {
			unit = material.Unit
		}
		return Usage{
			QuantityUsed: Round3(quantity),
			Cost:         Round2(quantity / factor * unitCost),
			Description:  fmt.Sprintf("%.1f%% of weight (%.1f%s)", params.Percentage*100, quantity, unit),
			Unit:         unit,
		}

	case model.FixedQuantityParams:
		return Usage{
			QuantityUsed: Round3(params.Quantity),
			Cost:         Round2(params.Quantity * unitCost),
			Description:  fmt.Sprintf("%g %s", params.Quantity, unitLabel(params.Unit)),
			Unit:         outputUnit(params.Unit),
		}

	case model.VariableByProductParams:
		cost := params.Quantity * unitCost
		if params.UseProductSpecificCost {
			cost = params.Quantity * material.CostForProduct(productID)
		}
		return Usage{
			QuantityUsed: Round3(params.Quantity),
			Cost:         Round2(cost),
			Description:  fmt.Sprintf("%g %s (variable cost)", params.Quantity, unitLabel(params.Unit)),
			Unit:         outputUnit(params.Unit),
		}

	default:
		return Usage{
			Description: "Unsupported calculation type",
			Unit:        material.Unit,
		}
	}
}

func unitLabel(unit string) string {
	if unit == "" {
		return "unit(s)"
	}
	return unit
}

func outputUnit(unit string) string {
	if unit == "" {
		return "units"
	}
	return unit
}
