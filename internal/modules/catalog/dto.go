package catalog

type ProductRequest struct {
	Name string `json:"name" binding:"required"`
	// Quantity arrives as a float from the form layer and is rounded to
	// the nearest integer before storage.
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit" binding:"required"`
}
