package storage

// ProductConfiguration is a saved (product, material, coating) selection that
// can be priced again later without re-entering the form.
type ProductConfiguration struct {
	ID         int64 `json:"config_id"`
	ProductID  int64 `json:"product_id"`
	MaterialID int64 `json:"material_id"`
	CoatingID  int64 `json:"coating_id"`
}
