package model

import "encoding/json"

type CalculationType string

const (
	CalcPercentageWeight  CalculationType = "percentage_weight"
	CalcFixedQuantity     CalculationType = "fixed_quantity"
	CalcVariableByProduct CalculationType = "variable_by_product"
)

// RuleParams is the calculation-type-specific parameter record of a rule.
// Each calculation type has its own variant; the JSON "parameters" bag is
// decoded into the matching variant by CalculationRule.UnmarshalJSON.
type RuleParams interface {
	ruleParams()
}

// PercentageWeightParams: quantity used is a fraction of the product weight.
// Percentage is a fraction (0.1 = 10%). ConversionFactor divides the quantity
// when pricing, so a cost per kg can be applied to grams; zero means 1.
type PercentageWeightParams struct {
	Percentage       float64 `json:"percentage"`
	ConversionFactor float64 `json:"conversion_factor,omitempty"`
	BaseUnit         string  `json:"base_unit,omitempty"`
}

func (PercentageWeightParams) ruleParams() {}

// FixedQuantityParams: a fixed quantity per product unit, weight-independent.
type FixedQuantityParams struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

func (FixedQuantityParams) ruleParams() {}

// VariableByProductParams: fixed quantity, but when UseProductSpecificCost is
// set the cost comes from the material's per-product override table.
type VariableByProductParams struct {
	Quantity               float64 `json:"quantity"`
	Unit                   string  `json:"unit,omitempty"`
	UseProductSpecificCost bool    `json:"use_product_specific_cost,omitempty"`
}

func (VariableByProductParams) ruleParams() {}

// CalculationRule describes how much of one material a product consumes and
// how to price it. At most one active rule per (category, material) pair is
// meaningful; the calculator's lookup keeps the last one it sees.
type CalculationRule struct {
	ID              string          `json:"id"`
	CategoryID      string          `json:"category_id"`
	MaterialID      string          `json:"material_id"`
	CalculationType CalculationType `json:"calculation_type"`
	Params          RuleParams      `json:"-"`
	RawParams       json.RawMessage `json:"-"`
	Description     string          `json:"description"`
	Active          bool            `json:"active"`
}

type ruleJSON struct {
	ID              string          `json:"id"`
	CategoryID      string          `json:"category_id"`
	MaterialID      string          `json:"material_id"`
	CalculationType CalculationType `json:"calculation_type"`
	Parameters      json.RawMessage `json:"parameters,omitempty"`
	Description     string          `json:"description"`
	Active          bool            `json:"active"`
}

func (r *CalculationRule) UnmarshalJSON(data []byte) error {
	var raw ruleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = raw.ID
	r.CategoryID = raw.CategoryID
	r.MaterialID = raw.MaterialID
	r.CalculationType = raw.CalculationType
	r.Description = raw.Description
	r.Active = raw.Active
	r.RawParams = raw.Parameters
	r.Params = nil

	if len(raw.Parameters) == 0 {
		return nil
	}

	switch raw.CalculationType {
	case CalcPercentageWeight:
		var p PercentageWeightParams
		if err := json.Unmarshal(raw.Parameters, &p); err != nil {
			return err
		}
		r.Params = p
	case CalcFixedQuantity:
		var p FixedQuantityParams
		if err := json.Unmarshal(raw.Parameters, &p); err != nil {
			return err
		}
		r.Params = p
	case CalcVariableByProduct:
		var p VariableByProductParams
		if err := json.Unmarshal(raw.Parameters, &p); err != nil {
			return err
		}
		r.Params = p
	default:
		// Unknown calculation type: parameters round-trip as raw JSON and the
		// evaluator produces the zero result for the rule.
	}
	return nil
}

func (r CalculationRule) MarshalJSON() ([]byte, error) {
	raw := ruleJSON{
		ID:              r.ID,
		CategoryID:      r.CategoryID,
		MaterialID:      r.MaterialID,
		CalculationType: r.CalculationType,
		Parameters:      r.RawParams,
		Description:     r.Description,
		Active:          r.Active,
	}
	if r.Params != nil {
		encoded, err := json.Marshal(r.Params)
		if err != nil {
			return nil, err
		}
		raw.Parameters = encoded
	}
	return json.Marshal(raw)
}
