package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/db"
	qhttp "github.com/mostafasaleh00/Personal-Expenses-Optimizer/http"
	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/llm"
	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/logging"
	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/ml"
	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/pipeline"
)

type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Http      qhttp.ServerConfig `yaml:"http"`
	Log       logging.Config     `yaml:"log"`
	Artifacts ml.ArtifactPaths   `yaml:"artifacts"`
	LLM       struct {
		APIKeyEnv      string `yaml:"api_key_env"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		MaxTokens      int    `yaml:"max_tokens"`
	} `yaml:"llm"`
}

func main() {
	config, err := loadConfig("config.yaml")
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.New(config.Log)
	defer logger.Sync()

	if err := db.InitDB(config.Database.Path); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database initialized", zap.String("path", config.Database.Path))

	// An artifact load failure degrades the service instead of aborting
	// startup; predictions report unavailable until restart, advice still
	// works.
	store := ml.LoadArtifacts(config.Artifacts)
	if store.Ready() {
		logger.Info("trained artifacts loaded",
			zap.String("model", config.Artifacts.Model),
			zap.String("input_scaler", config.Artifacts.InputScaler),
			zap.String("output_scaler", config.Artifacts.OutputScaler))
	} else {
		logger.Error("trained artifacts unavailable", zap.Error(store.LoadError()))
	}

	stopWatcher, err := ml.WatchArtifacts(config.Artifacts, logger)
	if err != nil {
		logger.Warn("artifact watcher disabled", zap.Error(err))
	} else {
		defer stopWatcher()
	}

	initializeServices(config, store)

	server := qhttp.NewServer(config.Http, logger)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := server.Stop(); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("exiting")
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := &Config{Http: qhttp.DefaultServerConfig()}
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

func initializeServices(config *Config, store *ml.ArtifactStore) {
	qhttp.SetArtifactStore(store)
	qhttp.SetPredictor(pipeline.New(store))

	// The key is read once at startup; a missing key only surfaces when an
	// advisory call is actually attempted.
	keyEnv := config.LLM.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "GEMINI_API_KEY"
	}
	client := llm.NewGeminiClient(os.Getenv(keyEnv), config.LLM.Model,
		time.Duration(config.LLM.TimeoutSeconds)*time.Second, config.LLM.MaxTokens)
	qhttp.SetAdviser(llm.NewAdvisor(client))
}
