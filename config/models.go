package config

import "time"

type ServerConfig struct {
	Port              int           `mapstructure:"port" validate:"required,gte=1,lte=65535"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type AuthConfig struct {
	Secret       string        `mapstructure:"secret" validate:"required,min=32"`
	SessionTTL   time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
	CookieName   string        `mapstructure:"cookie_name" validate:"required"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

// GateConfig is the configuration surface of the route authorization gate.
// Prefixes are static for the process lifetime.
type GateConfig struct {
	Matcher       []string `mapstructure:"matcher" validate:"required,min=1,dive,startswith=/"`
	AdminPrefixes []string `mapstructure:"admin_prefixes" validate:"dive,startswith=/"`
	UserPrefixes  []string `mapstructure:"user_prefixes" validate:"dive,startswith=/"`
	LoginPath     string   `mapstructure:"login_path" validate:"required,startswith=/"`
	FallbackPath  string   `mapstructure:"fallback_path" validate:"required,startswith=/"`
	CallbackParam string   `mapstructure:"callback_param"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// RedisConfig is optional; an empty Addr disables session revocation.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

type Config struct {
	Env         string         `mapstructure:"env" validate:"required"`
	ServiceName string         `mapstructure:"service_name" validate:"required"`
	Server      *ServerConfig  `mapstructure:"server" validate:"required"`
	Auth        *AuthConfig    `mapstructure:"auth" validate:"required"`
	Gate        *GateConfig    `mapstructure:"gate" validate:"required"`
	Backend     *BackendConfig `mapstructure:"backend" validate:"required"`
	Redis       *RedisConfig   `mapstructure:"redis"`
}
