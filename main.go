package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"flightdelay/db"
	qhttp "flightdelay/http"
	"flightdelay/logger"
	"flightdelay/ml"
)

type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Http struct {
		Port           int      `yaml:"port"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		MaxBodyBytes   int64    `yaml:"max_body_bytes"`
		CacheSize      int      `yaml:"cache_size"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"http"`
	Log   logger.Config `yaml:"log"`
	Model struct {
		Path string `yaml:"path"`
	} `yaml:"model"`
}

func main() {
	// 1. Load config
	config, err := loadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Logger
	zl, err := logger.New(config.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()
	qhttp.SetLogger(zl)

	// 3. Flight store (training corpus; not used on the inference path)
	if config.Database.Path != "" {
		if err := db.InitDB(config.Database.Path); err != nil {
			zl.Fatal("failed to initialize database", zap.Error(err))
		}
		defer db.Close()
		zl.Info("database initialized", zap.String("path", config.Database.Path))
	}

	// 4. Load the model artifact. A missing artifact leaves the model
	// untrained; every predict fails with an internal error until a
	// trained artifact is deployed and the process restarted.
	model := ml.NewLogisticRegression()
	if err := model.Load(config.Model.Path); err != nil {
		zl.Warn("model artifact not loaded, predictions disabled until trained",
			zap.String("path", config.Model.Path),
			zap.Error(err))
	} else {
		zl.Info("model loaded", zap.String("path", config.Model.Path))
		if !equalFeatureOrder(model.FeatureOrder(), ml.FeatureNames()) {
			// Stale artifact from an older feature set: the encoder would
			// feed columns the weights do not match. Refuse to serve it.
			zl.Fatal("artifact feature ordering does not match the encoder, retrain the model",
				zap.Strings("artifact_features", model.FeatureOrder()),
				zap.Strings("encoder_features", ml.FeatureNames()))
		}
	}
	qhttp.SetDelayModel(model)

	// 5. HTTP server
	serverConfig := qhttp.DefaultServerConfig()
	if config.Http.Port > 0 {
		serverConfig.Port = config.Http.Port
	}
	if config.Http.TimeoutSeconds > 0 {
		serverConfig.Timeout = time.Duration(config.Http.TimeoutSeconds) * time.Second
	}
	if config.Http.MaxBodyBytes > 0 {
		serverConfig.MaxBodyBytes = config.Http.MaxBodyBytes
	}
	if config.Http.CacheSize > 0 {
		serverConfig.CacheSize = config.Http.CacheSize
	}
	if len(config.Http.AllowedOrigins) > 0 {
		serverConfig.AllowedOrigins = config.Http.AllowedOrigins
	}

	server := qhttp.NewServer(serverConfig)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	if err := server.Stop(); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}
	zl.Info("exiting")
}

func equalFeatureOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
