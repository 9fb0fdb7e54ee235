package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// MinMaxScaler maps each column into the fitted [min, max] range and back.
// Columns where min == max pass through unchanged so the transform stays
// invertible.
type MinMaxScaler struct {
	Min []float64 `json:"min"`
	Max []float64 `json:"max"`
}

func (s *MinMaxScaler) validate() error {
	if len(s.Min) == 0 {
		return errors.New("scaler has no fitted columns")
	}
	if len(s.Min) != len(s.Max) {
		return fmt.Errorf("scaler min has %d columns, max has %d", len(s.Min), len(s.Max))
	}
	return nil
}

func (s *MinMaxScaler) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var loaded MinMaxScaler
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return fmt.Errorf("decode scaler: %w", err)
	}
	if err := loaded.validate(); err != nil {
		return err
	}
	*s = loaded
	return nil
}

func (s *MinMaxScaler) Save(path string) error {
	if err := s.validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func (s *MinMaxScaler) Columns() int {
	return len(s.Min)
}

func (s *MinMaxScaler) Transform(rows [][]float64) ([][]float64, error) {
	return s.apply(rows, func(value float64, col int) float64 {
		span := s.Max[col] - s.Min[col]
		if span == 0 {
			return value
		}
		return (value - s.Min[col]) / span
	})
}

func (s *MinMaxScaler) InverseTransform(rows [][]float64) ([][]float64, error) {
	return s.apply(rows, func(value float64, col int) float64 {
		span := s.Max[col] - s.Min[col]
		if span == 0 {
			return value
		}
		return value*span + s.Min[col]
	})
}

func (s *MinMaxScaler) apply(rows [][]float64, transform func(float64, int) float64) ([][]float64, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	out := make([][]float64, len(rows))
	for r, row := range rows {
		if len(row) != s.Columns() {
			return nil, fmt.Errorf("row %d has %d columns, scaler fitted on %d", r, len(row), s.Columns())
		}
		outRow := make([]float64, len(row))
		for c, value := range row {
			outRow[c] = transform(value, c)
		}
		out[r] = outRow
	}
	return out, nil
}
