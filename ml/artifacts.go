package ml

import (
	"errors"
	"fmt"
)

// ErrArtifactUnavailable reports that one or more trained artifacts failed to
// load at startup. Requests hitting it cannot succeed until the process is
// restarted with valid artifacts.
var ErrArtifactUnavailable = errors.New("trained artifacts unavailable")

// ArtifactPaths locates the three serialized artifacts on disk.
type ArtifactPaths struct {
	Model        string `yaml:"model"`
	InputScaler  string `yaml:"input_scaler"`
	OutputScaler string `yaml:"output_scaler"`
}

// ArtifactStore holds the trained model and both fitted scalers. Loading
// happens exactly once; afterwards the store is read-only and safe to share
// across concurrent requests without locking.
type ArtifactStore struct {
	model        Model
	inputScaler  Scaler
	outputScaler Scaler
	loadErr      error
}

// LoadArtifacts deserializes all three artifacts. A failure on any of them is
// recorded instead of returned so startup can proceed into a degraded state;
// the error surfaces on every later access.
func LoadArtifacts(paths ArtifactPaths) *ArtifactStore {
	store := &ArtifactStore{}

	model := &LinearRegression{}
	if err := model.Load(paths.Model); err != nil {
		store.loadErr = fmt.Errorf("load model from %s: %w", paths.Model, err)
		return store
	}

	inputScaler := &MinMaxScaler{}
	if err := inputScaler.Load(paths.InputScaler); err != nil {
		store.loadErr = fmt.Errorf("load input scaler from %s: %w", paths.InputScaler, err)
		return store
	}

	outputScaler := &MinMaxScaler{}
	if err := outputScaler.Load(paths.OutputScaler); err != nil {
		store.loadErr = fmt.Errorf("load output scaler from %s: %w", paths.OutputScaler, err)
		return store
	}

	store.model = model
	store.inputScaler = inputScaler
	store.outputScaler = outputScaler
	return store
}

// NewArtifactStore wraps already-constructed artifacts, mainly for tests that
// substitute stubs for the fitted instances.
func NewArtifactStore(model Model, inputScaler, outputScaler Scaler) *ArtifactStore {
	store := &ArtifactStore{
		model:        model,
		inputScaler:  inputScaler,
		outputScaler: outputScaler,
	}
	if model == nil || inputScaler == nil || outputScaler == nil {
		store.loadErr = errors.New("incomplete artifact set")
	}
	return store
}

func (s *ArtifactStore) Ready() bool {
	return s != nil && s.loadErr == nil && s.model != nil && s.inputScaler != nil && s.outputScaler != nil
}

// LoadError returns the recorded startup failure, or nil.
func (s *ArtifactStore) LoadError() error {
	if s == nil {
		return errors.New("artifact store is nil")
	}
	return s.loadErr
}

func (s *ArtifactStore) Model() (Model, error) {
	if !s.Ready() {
		return nil, s.unavailable()
	}
	return s.model, nil
}

func (s *ArtifactStore) InputScaler() (Scaler, error) {
	if !s.Ready() {
		return nil, s.unavailable()
	}
	return s.inputScaler, nil
}

func (s *ArtifactStore) OutputScaler() (Scaler, error) {
	if !s.Ready() {
		return nil, s.unavailable()
	}
	return s.outputScaler, nil
}

func (s *ArtifactStore) unavailable() error {
	if s != nil && s.loadErr != nil {
		return fmt.Errorf("%w: %v", ErrArtifactUnavailable, s.loadErr)
	}
	return ErrArtifactUnavailable
}
