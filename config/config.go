package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the key/value backend holding all persisted
	// storefront state (session, carts, wishlist, preference flags).
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	// Discounts maps promotion codes (canonical upper case) to fractions in [0, 1).
	Discounts map[string]float64 `json:"discounts" yaml:"discounts"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Gateway configures the simulated network round trip used by
	// login, registration and password reset.
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// QRCode configuration for checkout link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the key/value store backend.
type StorageConfig struct {
	// Provider type: "memory" for in-process or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// Namespace prefixes every persisted key, isolating one storefront
	// deployment from another sharing the same Redis instance.
	Namespace string `json:"namespace" yaml:"namespace"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the Redis connection (for the redis provider).
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// SessionConfig defines session lifetime and welcome notification behavior.
type SessionConfig struct {
	// TTL is the fixed session validity window measured from login.
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// WelcomeDelay postpones the one-time welcome notification so it does
	// not overlap other transitions right after login.
	WelcomeDelay time.Duration `json:"welcomeDelay" yaml:"welcomeDelay"`
}

// PricingConfig holds the shipping policy constants.
type PricingConfig struct {
	// FreeShippingThreshold is the subtotal at or above which shipping is free.
	FreeShippingThreshold float64 `json:"freeShippingThreshold" yaml:"freeShippingThreshold"`

	// ShippingFee is the flat fee charged below the threshold.
	ShippingFee float64 `json:"shippingFee" yaml:"shippingFee"`
}

// CheckoutConfig defines the WhatsApp handoff target.
type CheckoutConfig struct {
	// WhatsAppPhone is the fixed recipient identifier of the wa.me link.
	WhatsAppPhone string `json:"whatsappPhone" yaml:"whatsappPhone"`

	// StoreName appears in the order message greeting.
	StoreName string `json:"storeName" yaml:"storeName"`

	// CurrencyPrefix is the display currency marker, e.g. "S/".
	CurrencyPrefix string `json:"currencyPrefix" yaml:"currencyPrefix"`
}

// GatewayConfig defines the simulated backend round trip.
type GatewayConfig struct {
	// Delay is the fixed latency standing in for a network call.
	Delay time.Duration `json:"delay" yaml:"delay"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SESSION_WELCOMEDELAY -> session.welcomeDelay (not session.welcomedelay)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills policy constants a deployment may omit.
func applyDefaults(cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{Provider: "memory"}
	}
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
	if cfg.Session.WelcomeDelay <= 0 {
		cfg.Session.WelcomeDelay = 500 * time.Millisecond
	}
	if cfg.Pricing == nil {
		cfg.Pricing = &PricingConfig{}
	}
	if cfg.Pricing.FreeShippingThreshold <= 0 {
		cfg.Pricing.FreeShippingThreshold = 149
	}
	if cfg.Pricing.ShippingFee <= 0 {
		cfg.Pricing.ShippingFee = 15
	}
	if len(cfg.Discounts) == 0 {
		cfg.Discounts = map[string]float64{
			"SAMMA10":   0.10,
			"NEWIN15":   0.15,
			"WELCOME20": 0.20,
		}
	}
	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.WhatsAppPhone == "" {
		cfg.Checkout.WhatsAppPhone = "51958143259"
	}
	if cfg.Checkout.StoreName == "" {
		cfg.Checkout.StoreName = "Samma.hub"
	}
	if cfg.Checkout.CurrencyPrefix == "" {
		cfg.Checkout.CurrencyPrefix = "S/"
	}
	if cfg.Gateway == nil {
		cfg.Gateway = &GatewayConfig{}
	}
	if cfg.Gateway.Delay <= 0 {
		cfg.Gateway.Delay = 1500 * time.Millisecond
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
