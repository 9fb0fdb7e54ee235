// Package pipeline runs a raw budget submission through validation, scaling,
// inference, and de-scaling, producing named potential-savings amounts.
package pipeline

import (
	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/ml"
)

// Result maps each output schema name to its de-scaled predicted value.
type Result map[string]float64

// Pipeline orchestrates one prediction per call. It holds no per-request
// state, so a single instance serves concurrent requests.
type Pipeline struct {
	store *ml.ArtifactStore
}

func New(store *ml.ArtifactStore) *Pipeline {
	return &Pipeline{store: store}
}

// Predict validates raw, builds the feature vector, and runs it through the
// scaler/model/scaler chain. Rows are samples and columns are features at
// every step; a single request is a one-row batch.
func (p *Pipeline) Predict(raw map[string]string) (Result, error) {
	model, err := p.store.Model()
	if err != nil {
		return nil, err
	}
	inputScaler, err := p.store.InputScaler()
	if err != nil {
		return nil, err
	}
	outputScaler, err := p.store.OutputScaler()
	if err != nil {
		return nil, err
	}

	vector, err := BuildVector(raw)
	if err != nil {
		return nil, err
	}

	scaled, err := inputScaler.Transform([][]float64{vector})
	if err != nil {
		return nil, err
	}

	// Guard against artifact skew before touching the model: a model
	// retrained on a different feature set than the loaded scaler must not
	// be invoked at all.
	if len(scaled[0]) != model.InputWidth() {
		return nil, &ShapeMismatchError{Expected: model.InputWidth(), Actual: len(scaled[0])}
	}

	inferred, err := model.Infer(scaled)
	if err != nil {
		return nil, err
	}

	descaled, err := outputScaler.InverseTransform(inferred)
	if err != nil {
		return nil, err
	}

	names := ml.OutputNames()
	flat := descaled[0]
	if len(flat) != len(names) {
		return nil, &OutputArityError{Expected: len(names), Actual: len(flat)}
	}

	result := make(Result, len(names))
	for i, name := range names {
		result[name] = flat[i]
	}
	return result, nil
}
