package config

import "time"

// Config is the application configuration loaded from the YAML config file.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Validation Validation `yaml:"validation"`
}

// Logger holds logging configuration.
type Logger struct {
	Level string `yaml:"level"`
}

// HTTPClient holds tuning for the HTTP client used to fetch remote documents.
type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

// TLSClientConfig holds TLS settings for the HTTP client.
type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

// Proxy holds proxy settings for the HTTP client.
type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Validation holds the validation feature flags. Pointer booleans distinguish
// "unset, use the default" from an explicit false in the config file.
type Validation struct {
	// Enabled is the host-level gate; default true. When false the validate
	// command skips validation entirely.
	Enabled *bool `yaml:"enabled"`

	// AllowExternalResources enables the external-resource and
	// javascript-url rules; default false. Note the inherited polarity:
	// turning it on makes those rules fire, it does not suppress them.
	AllowExternalResources *bool `yaml:"allow_external_resources"`
}
