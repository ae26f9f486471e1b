package testutils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/config"
)

// NewTestConfig returns a config suitable for tests: auth disabled, short
// client timeout, masking on.
func NewTestConfig() *config.Config {
	return &config.Config{
		LLM: config.LLM{
			Provider: "deepseek",
			Model:    "deepseek-chat",
		},
		API: config.APIConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 5,
		},
		Server:    config.ServerConfig{Port: 8000},
		Log:       config.LogConfig{Level: "info"},
		PII:       config.PIIConfig{MaskingEnabled: true},
		Documents: config.DocumentsConfig{MaxUploadSizeMB: 10},
	}
}

// FindProjectRoot returns the absolute path to the project root directory.
func FindProjectRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("could not get current file path")
	}

	dir := filepath.Dir(currentFilePath)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		if dir == filepath.Dir(dir) {
			return "", fmt.Errorf("project root not found")
		}

		dir = filepath.Dir(dir)
	}
}

const charset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		bigInt, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		b[i] = charset[bigInt.Int64()]
	}
	return string(b)
}
