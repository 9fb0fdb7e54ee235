package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LinearRegression is a multi-output linear model: one weight row plus one
// intercept per output column. All state is set at load time and read-only
// afterwards.
type LinearRegression struct {
	Weights    [][]float64 `json:"weights"`
	Intercepts []float64   `json:"intercepts"`
}

func (m *LinearRegression) validate() error {
	if len(m.Weights) == 0 {
		return errors.New("regression weights are empty")
	}
	if len(m.Intercepts) != len(m.Weights) {
		return fmt.Errorf("intercept count %d does not match output count %d", len(m.Intercepts), len(m.Weights))
	}
	width := len(m.Weights[0])
	if width == 0 {
		return errors.New("regression weight rows are empty")
	}
	for i, row := range m.Weights {
		if len(row) != width {
			return fmt.Errorf("weight row %d has %d columns, expected %d", i, len(row), width)
		}
	}
	return nil
}

func (m *LinearRegression) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var loaded LinearRegression
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return fmt.Errorf("decode regression model: %w", err)
	}
	if err := loaded.validate(); err != nil {
		return err
	}
	*m = loaded
	return nil
}

func (m *LinearRegression) Save(path string) error {
	if err := m.validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func (m *LinearRegression) InputWidth() int {
	if len(m.Weights) == 0 {
		return 0
	}
	return len(m.Weights[0])
}

func (m *LinearRegression) OutputWidth() int {
	return len(m.Weights)
}

func (m *LinearRegression) Infer(rows [][]float64) ([][]float64, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	out := make([][]float64, len(rows))
	for r, row := range rows {
		if len(row) != m.InputWidth() {
			return nil, fmt.Errorf("row %d has %d columns, model expects %d", r, len(row), m.InputWidth())
		}
		outRow := make([]float64, m.OutputWidth())
		for o, weights := range m.Weights {
			sum := m.Intercepts[o]
			for c, w := range weights {
				sum += w * row[c]
			}
			outRow[o] = sum
		}
		out[r] = outRow
	}
	return out, nil
}
