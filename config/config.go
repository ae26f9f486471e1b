package config

import (
	"errors"
	"strings"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing config file is not an error: the service starts on defaults and
// ENV alone.
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ZHKH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warn("config file not found, using defaults and ENV")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	// API keys are never read from the config file
	for key, envVar := range map[string]string{
		"llm.deepseek_api_key": "ZHKH_DEEPSEEK_API_KEY",
		"llm.gigachat_api_key": "ZHKH_GIGACHAT_API_KEY",
	} {
		if err := viper.BindEnv(key, envVar); err != nil {
			log.Fatalf("Error binding environment variable: %s", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("api.base_url", "http://localhost:8000")
	viper.SetDefault("api.timeout_seconds", 60)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("llm.provider", "deepseek")
	viper.SetDefault("llm.model", "deepseek-chat")
	viper.SetDefault("pii.masking_enabled", true)
	viper.SetDefault("documents.max_upload_size_mb", 10)
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
