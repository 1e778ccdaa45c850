package repository

import (
	"go-costing-api/internal/model"
	"go-costing-api/pkg/storage"
)

const rulesFile = "calculation-rules.json"

type RuleRepository interface {
	FindActiveByCategory(categoryID string) ([]model.CalculationRule, error)
}

type ruleRepo struct {
	store *storage.Store
}

func NewRuleRepo(store *storage.Store) RuleRepository {
	return &ruleRepo{store}
}

type ruleDocument struct {
	CalculationRules []model.CalculationRule `json:"calculation_rules"`
}

func (r *ruleRepo) FindActiveByCategory(categoryID string) ([]model.CalculationRule, error) {
	var doc ruleDocument
	if err := r.store.Load(rulesFile, &doc); err != nil {
		return nil, err
	}
	matched := make([]model.CalculationRule, 0, len(doc.CalculationRules))
	for _, rule := range doc.CalculationRules {
		if rule.Active && rule.CategoryID == categoryID {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}
