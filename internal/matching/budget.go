package matching

import "strings"

// Budget levels supported by the shopper catalog. The values are the wire
// strings used in catalog data.
const (
	BudgetLow    = "bas"
	BudgetMedium = "moyen"
	BudgetHigh   = "élevé"
)

// budgetRule maps a label matcher to a level. Rules run in order and the
// first hit wins, so reordering changes the outcome on ambiguous labels.
type budgetRule struct {
	markers []string
	level   string
}

var budgetRules = []budgetRule{
	{markers: []string{"moins", "<"}, level: BudgetLow},
	{markers: []string{"100 - 300", "300 - 1000"}, level: BudgetMedium},
	{markers: []string{"plus", "1000"}, level: BudgetHigh},
}

// BudgetLevel classifies a free-text budget bracket label into one of the
// three levels. Every input maps to exactly one level; anything no rule
// recognizes falls back to medium.
func BudgetLevel(label string) string {
	txt := strings.ToLower(label)
	for _, rule := range budgetRules {
		for _, marker := range rule.markers {
			if strings.Contains(txt, marker) {
				return rule.level
			}
		}
	}
	return BudgetMedium
}
