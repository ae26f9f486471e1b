package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	LLM       LLM             `mapstructure:"llm"`
	API       APIConfig       `mapstructure:"api"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	PII       PIIConfig       `mapstructure:"pii"`
	Documents DocumentsConfig `mapstructure:"documents"`
}

type LLM struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	// API keys are loaded from ENV not config file.
	DeepSeekAPIKey string `mapstructure:"deepseek_api_key"`
	GigaChatAPIKey string `mapstructure:"gigachat_api_key"`
}

// APIConfig configures the outbound client: where the backend lives and how
// long a single call may take. The core pipeline never retries.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"`
	Required bool   `mapstructure:"required"`
}

type PIIConfig struct {
	MaskingEnabled bool `mapstructure:"masking_enabled"`
}

type DocumentsConfig struct {
	MaxUploadSizeMB int `mapstructure:"max_upload_size_mb"`
}
