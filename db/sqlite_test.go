package db

import (
	"path/filepath"
	"testing"
)

func TestSaveAndQueryPredictions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	if err := InitDB(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer Close()

	inputs := map[string]string{"Income": "5000", "Rent": "1200"}
	results := map[string]float64{"Potential_Savings_Groceries": 120.5}

	if err := SavePrediction(inputs, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SavePrediction(inputs, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := RecentPredictions(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID <= records[1].ID {
		t.Fatal("expected newest record first")
	}
	if records[0].Inputs["Income"] != "5000" {
		t.Fatalf("unexpected inputs: %+v", records[0].Inputs)
	}
	if records[0].Results["Potential_Savings_Groceries"] != 120.5 {
		t.Fatalf("unexpected results: %+v", records[0].Results)
	}
}

func TestRecentPredictionsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	if err := InitDB(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer Close()

	for i := 0; i < 5; i++ {
		if err := SavePrediction(map[string]string{}, map[string]float64{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := RecentPredictions(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}
