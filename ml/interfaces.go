package ml

// Scaler is a fitted, invertible per-column transform. Rows are samples,
// columns are features; Transform and InverseTransform preserve shape.
type Scaler interface {
	Transform(rows [][]float64) ([][]float64, error)
	InverseTransform(rows [][]float64) ([][]float64, error)
	Columns() int
}

// Model maps a batch of scaled input rows to a batch of scaled output rows.
// Implementations must be safe for concurrent use after loading.
type Model interface {
	Infer(rows [][]float64) ([][]float64, error)
	InputWidth() int
	OutputWidth() int
}
