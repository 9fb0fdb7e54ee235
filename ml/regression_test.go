package ml

import (
	"math"
	"path/filepath"
	"testing"
)

func TestLinearRegressionInfer(t *testing.T) {
	model := &LinearRegression{
		Weights: [][]float64{
			{1, 0, 0},
			{0, 2, 0},
		},
		Intercepts: []float64{10, -1},
	}

	out, err := model.Infer([][]float64{{3, 4, 5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || len(out[0]) != 2 {
		t.Fatalf("unexpected output shape: %v", out)
	}
	if math.Abs(out[0][0]-13) > 1e-12 || math.Abs(out[0][1]-7) > 1e-12 {
		t.Fatalf("unexpected output values: %v", out[0])
	}
}

func TestLinearRegressionWidths(t *testing.T) {
	model := &LinearRegression{
		Weights:    [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}},
		Intercepts: []float64{0, 0},
	}
	if model.InputWidth() != 4 {
		t.Fatalf("expected input width 4, got %d", model.InputWidth())
	}
	if model.OutputWidth() != 2 {
		t.Fatalf("expected output width 2, got %d", model.OutputWidth())
	}
}

func TestLinearRegressionInferRejectsWrongWidth(t *testing.T) {
	model := &LinearRegression{
		Weights:    [][]float64{{1, 2}},
		Intercepts: []float64{0},
	}
	if _, err := model.Infer([][]float64{{1, 2, 3}}); err == nil {
		t.Fatal("expected error for wrong input width")
	}
}

func TestLinearRegressionSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")

	model := &LinearRegression{
		Weights:    [][]float64{{0.5, -0.25}},
		Intercepts: []float64{1.5},
	}
	if err := model.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded := &LinearRegression{}
	if err := loaded.Load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := loaded.Infer([][]float64{{2, 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(out[0][0]-1.5) > 1e-12 {
		t.Fatalf("unexpected output: %v", out[0][0])
	}
}

func TestLinearRegressionSaveRejectsRaggedWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")

	bad := &LinearRegression{
		Weights:    [][]float64{{1, 2}, {3}},
		Intercepts: []float64{0, 0},
	}
	if err := bad.Save(path); err == nil {
		t.Fatal("expected save to reject ragged weights")
	}
}
