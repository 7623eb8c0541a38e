package storage

type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Material struct {
	ID        int64   `json:"material_id"`
	Name      string  `json:"name"`
	CostPerMM float64 `json:"cost_per_mm"`
}

type Coating struct {
	ID        int64   `json:"coating_id"`
	Name      string  `json:"name"`
	CostPerMM float64 `json:"cost_per_mm"`
}

type Operation struct {
	ID            int64   `json:"operation_id"`
	Name          string  `json:"name"`
	BaseLaborCost float64 `json:"base_labor_cost"`
}

// ProductOperation is one row of the Operation × product_operations join for a
// product: the operation's base cost together with the per-pair multiplier.
type ProductOperation struct {
	ProductID      int64   `json:"product_id"`
	OperationID    int64   `json:"operation_id"`
	Name           string  `json:"name"`
	BaseLaborCost  float64 `json:"base_labor_cost"`
	CostMultiplier float64 `json:"cost_multiplier"`
}

// CostParameters is the process-wide pricing constants row. Exactly one row
// (parameter_id = 1) exists; the store seeds it on startup if missing.
type CostParameters struct {
	LaborRate    float64 `json:"labor_rate"`
	OverheadRate float64 `json:"overhead_rate"`
}
