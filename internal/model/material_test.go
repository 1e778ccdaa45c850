package model

import "testing"

func TestMaterial_CostForProduct(t *testing.T) {
	material := Material{
		CostPerUnit:   0.15,
		VariableCost:  true,
		CostByProduct: map[string]float64{"charcoal-bar": 0.22, "freebie": 0},
	}

	if got := material.CostForProduct("charcoal-bar"); got != 0.22 {
		t.Errorf("override = %v, want 0.22", got)
	}
	if got := material.CostForProduct("lavender-bar"); got != 0.15 {
		t.Errorf("fallback = %v, want 0.15", got)
	}
	// An explicit zero override counts as present.
	if got := material.CostForProduct("freebie"); got != 0 {
		t.Errorf("zero override = %v, want 0", got)
	}
}

func TestMaterial_CostForProduct_IgnoredWithoutVariableFlag(t *testing.T) {
	material := Material{
		CostPerUnit:   0.15,
		VariableCost:  false,
		CostByProduct: map[string]float64{"charcoal-bar": 0.22},
	}
	if got := material.CostForProduct("charcoal-bar"); got != 0.15 {
		t.Errorf("cost = %v, want base cost 0.15 when variable_cost is off", got)
	}
}
