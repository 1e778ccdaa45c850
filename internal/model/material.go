package model

import "time"

// Material is a raw input with a base unit cost. When VariableCost is set,
// CostByProduct may override the unit cost for specific products; when it is
// not set the overrides are ignored even if populated.
type Material struct {
	ID            string             `json:"id"`
	CategoryID    string             `json:"category_id"`
	Name          string             `json:"name"`
	Unit          string             `json:"unit"`
	CostPerUnit   float64            `json:"cost_per_unit"`
	Supplier      string             `json:"supplier"`
	Description   string             `json:"description"`
	VariableCost  bool               `json:"variable_cost"`
	CostByProduct map[string]float64 `json:"cost_by_product,omitempty"`
	Active        bool               `json:"active"`
	LastUpdated   time.Time          `json:"last_updated"`
}

// CostForProduct returns the per-product override when variable costing is
// enabled and an override exists for productID, otherwise the base cost.
func (m Material) CostForProduct(productID string) float64 {
	if m.VariableCost {
		if cost, ok := m.CostByProduct[productID]; ok {
			return cost
		}
	}
	return m.CostPerUnit
}
