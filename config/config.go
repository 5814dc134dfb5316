package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant specifics
	Assistant      AssistantConfig
	GoogleOAuth    GoogleOAuthConfig
	GoogleCalendar GoogleCalendarConfig
	Session        SessionConfig
	RateLimit      RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port      int
	Mode      string
	StaticDir string // served at / when set
	// NgrokAPIURL is the local ngrok API used to discover the public callback URL.
	NgrokAPIURL string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AssistantConfig struct {
	UTCOffset              string
	EventDescription       string
	AppointmentDescription string
	AllDayColorID          string
	TimedColorID           string
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

type GoogleCalendarConfig struct {
	CalendarID string
}

type SessionConfig struct {
	CookieName   string
	TTL          time.Duration
	MaxEntries   int
	SecureCookie bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // bounds the whole provider chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// MaxTotalTimeoutDuration parses MaxTotalTimeout; zero means unbounded.
func (c LLMConfig) MaxTotalTimeoutDuration() (time.Duration, error) {
	if c.MaxTotalTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.MaxTotalTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid llm.max_total_timeout %q: %w", c.MaxTotalTimeout, err)
	}
	return d, nil
}

// Load loads configuration using Viper.
// A .env file is read first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.StaticDir = v.GetString("http_server.static_dir")
	cfg.HTTPServer.NgrokAPIURL = v.GetString("http_server.ngrok_api_url")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.UTCOffset = v.GetString("assistant.utc_offset")
	cfg.Assistant.EventDescription = v.GetString("assistant.event_description")
	cfg.Assistant.AppointmentDescription = v.GetString("assistant.appointment_description")
	cfg.Assistant.AllDayColorID = v.GetString("assistant.all_day_color_id")
	cfg.Assistant.TimedColorID = v.GetString("assistant.timed_color_id")

	// Google sign-in: GOOGLE_CLIENT_ID style shorthands win over the nested keys.
	cfg.GoogleOAuth.ClientID = firstNonEmpty(v.GetString("google_client_id"), expandEnvVar(v, v.GetString("google_oauth.client_id")))
	cfg.GoogleOAuth.ClientSecret = firstNonEmpty(v.GetString("google_client_secret"), expandEnvVar(v, v.GetString("google_oauth.client_secret")))
	cfg.GoogleOAuth.CallbackURL = firstNonEmpty(v.GetString("google_callback_url"), v.GetString("google_oauth.callback_url"))
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	cfg.Session.CookieName = v.GetString("session.cookie_name")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxEntries = v.GetInt("session.max_entries")
	cfg.Session.SecureCookie = v.GetBool("session.secure_cookie")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers section, GOOGLE_API_KEY alone is enough to run on Gemini.
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("google_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    v.GetString("gemini_model"),
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if _, err := cfg.LLM.MaxTotalTimeoutDuration(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("assistant.utc_offset", "-03:00")
	v.SetDefault("assistant.event_description", "Event created by the scheduling assistant")
	v.SetDefault("assistant.appointment_description", "Appointment created by the scheduling assistant")
	v.SetDefault("assistant.all_day_color_id", "11")
	v.SetDefault("assistant.timed_color_id", "9")

	v.SetDefault("google_calendar.calendar_id", "primary")

	v.SetDefault("session.cookie_name", "assistente_session")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.max_entries", 10000)
	v.SetDefault("session.secure_cookie", false)

	v.SetDefault("rate_limit.requests_per_min", 30)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", false)
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add an llm.providers section to config.yaml or set GOOGLE_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
