package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Log        LogConfig
	Loader     LoaderConfig
	Provider   ProviderConfig
	Validation ValidationConfig
	Address    AddressConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoaderConfig holds document loading settings.
type LoaderConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// BackendConfig holds settings for a single structuring backend.
type BackendConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	Endpoint string `mapstructure:"endpoint"`
}

// Enabled reports whether the backend is configured at all. Remote backends
// need an API key; the local backend only needs an endpoint.
func (b *BackendConfig) Enabled() bool {
	return b.APIKey != "" || b.Endpoint != ""
}

// ProviderConfig holds structuring-provider settings. Backends are probed in
// the fixed order Together, HuggingFace, Local; the heuristic fallback needs
// no configuration and always qualifies last.
type ProviderConfig struct {
	Together    BackendConfig `mapstructure:"together"`
	HuggingFace BackendConfig `mapstructure:"huggingface"`
	Local       BackendConfig `mapstructure:"local"`

	ProbeTimeout    time.Duration `mapstructure:"probe_timeout"`
	GenerateTimeout time.Duration `mapstructure:"generate_timeout"`
}

// ValidationConfig holds Validator thresholds and weights. Defaults are
// empirical carry-overs and have not been calibrated against a labeled
// corpus; treat them as tunable.
type ValidationConfig struct {
	MinContentLength int     `mapstructure:"min_content_length"`
	PassScore        float64 `mapstructure:"pass_score"`

	WeightName             float64 `mapstructure:"weight_name"`
	WeightMeaningful       float64 `mapstructure:"weight_meaningful"`
	WeightRequiredSections float64 `mapstructure:"weight_required_sections"`
	WeightContentLength    float64 `mapstructure:"weight_content_length"`
	WeightNoDummy          float64 `mapstructure:"weight_no_dummy"`
}

// AddressConfig holds AddressScorer thresholds. Same calibration caveat as
// ValidationConfig.
type AddressConfig struct {
	MinScore        int     `mapstructure:"min_score"`
	RelaxedMinScore int     `mapstructure:"relaxed_min_score"`
	OverlapRatio    float64 `mapstructure:"overlap_ratio"`
}

// Load reads configuration from environment variables with the CVPIPE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CVPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Loader defaults
	v.SetDefault("loader.max_file_size_mb", 50)

	// Provider defaults
	v.SetDefault("provider.together.api_key", "")
	v.SetDefault("provider.together.model", "meta-llama/Meta-Llama-3.1-8B-Instruct-Turbo")
	v.SetDefault("provider.together.endpoint", "https://api.together.xyz/v1/chat/completions")
	v.SetDefault("provider.huggingface.api_key", "")
	v.SetDefault("provider.huggingface.model", "tiiuae/falcon-7b-instruct")
	v.SetDefault("provider.huggingface.endpoint", "https://api-inference.huggingface.co/models")
	v.SetDefault("provider.local.api_key", "")
	v.SetDefault("provider.local.model", "llama3.1:8b")
	v.SetDefault("provider.local.endpoint", "")
	v.SetDefault("provider.probe_timeout", "10s")
	v.SetDefault("provider.generate_timeout", "120s")

	// Validation defaults
	v.SetDefault("validation.min_content_length", 200)
	v.SetDefault("validation.pass_score", 0.7)
	v.SetDefault("validation.weight_name", 0.2)
	v.SetDefault("validation.weight_meaningful", 0.3)
	v.SetDefault("validation.weight_required_sections", 0.3)
	v.SetDefault("validation.weight_content_length", 0.1)
	v.SetDefault("validation.weight_no_dummy", 0.1)

	// Address defaults
	v.SetDefault("address.min_score", 2)
	v.SetDefault("address.relaxed_min_score", 0)
	v.SetDefault("address.overlap_ratio", 0.7)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
