package pricing

import "errors"

// Scaling constants converting per-mm catalog coefficients to a per-item cost.
// Kept as named configuration rather than inlined into the formula.
const (
	VolumeFactor = 10.0
	AreaFactor   = 5.0
)

// ErrInvalidQuantity is an engine-level guard. The assembler validates
// quantity before calling Calculate, so hitting it means a caller bug.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// OperationCost is one manufacturing step as priced for a concrete product:
// the operation's base labor cost scaled by the per-product multiplier.
type OperationCost struct {
	BaseLaborCost  float64
	CostMultiplier float64
}

type Input struct {
	MaterialCostPerMM float64
	CoatingCostPerMM  float64
	Quantity          int
	Operations        []OperationCost
	OverheadRate      float64
}

type Breakdown struct {
	MaterialCost float64 `json:"material_cost"`
	CoatingCost  float64 `json:"coating_cost"`
	LaborCost    float64 `json:"labor_cost"`
	OverheadCost float64 `json:"overhead_cost"`
	Total        float64 `json:"total"`
}

// Calculate computes the full cost breakdown for a configuration. It is pure
// and deterministic: no I/O, fixed addition order, identical inputs give a
// bit-identical result. An empty operations slice yields zero labor and zero
// overhead, which is a valid outcome, not an error.
func Calculate(in Input) (Breakdown, error) {
	if in.Quantity <= 0 {
		return Breakdown{}, ErrInvalidQuantity
	}

	qty := float64(in.Quantity)

	materialCost := in.MaterialCostPerMM * qty * VolumeFactor
	coatingCost := in.CoatingCostPerMM * qty * AreaFactor

	laborCost := 0.0
	for _, operation := range in.Operations {
		laborCost += operation.BaseLaborCost * operation.CostMultiplier * qty
	}

	overheadCost := laborCost * in.OverheadRate

	total := materialCost + coatingCost + laborCost + overheadCost

	return Breakdown{
		MaterialCost: materialCost,
		CoatingCost:  coatingCost,
		LaborCost:    laborCost,
		OverheadCost: overheadCost,
		Total:        total,
	}, nil
}

// PerUnit is the total cost amortized over quantity. Display-only: it is not a
// marginal unit price and is never fed back into the formula.
func PerUnit(total float64, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	return total / float64(quantity)
}
