package fintrex

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/notify"
)

// Config errors returned by LoadConfig.
var (
	ErrInvalidURL         = errors.New("fintrex: site url must be absolute")
	ErrInvalidEnvironment = errors.New("fintrex: environment must be production or development")
	ErrMissingSecret      = errors.New("fintrex: session secret is required")
	ErrInvalidLimit       = errors.New("fintrex: waitlist limit must be positive")
	ErrInvalidDuration    = errors.New("fintrex: duration must be positive")
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Fintrex")
	URL         string `yaml:"url"`         // Canonical URL (default "https://fintrex.ai")
	Addr        string `yaml:"addr"`        // Listen address (default ":3000")
	Environment string `yaml:"environment"` // production or development
	LogLevel    string `yaml:"log_level"`   // zap level name (default "info")

	SessionSecret string `yaml:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `yaml:"cookie_secure"`  // Set true for HTTPS
	StaticDir     string `yaml:"static_dir"`     // Static assets served under /public (default "public")

	NotifyTo          string        `yaml:"notify_to"`      // Recipient of internal notifications
	NotifyTimeout     time.Duration `yaml:"notify_timeout"` // Per-submission delivery budget (default 10s)
	EmailJSServiceID  string        `yaml:"emailjs_service_id"`
	EmailJSPublicKey  string        `yaml:"emailjs_public_key"`
	EmailJSPrivateKey string        `yaml:"emailjs_private_key"`

	MetricsEnabled bool          `yaml:"metrics_enabled"` // Expose /metrics
	WaitlistLimit  int           `yaml:"waitlist_limit"`  // Form posts per IP per window (default 5)
	WaitlistWindow time.Duration `yaml:"waitlist_window"` // default 1m
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Fintrex"
	}
	if c.URL == "" {
		c.URL = "https://fintrex.ai"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Environment == "" {
		c.Environment = EnvProduction
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.NotifyTo == "" {
		c.NotifyTo = content.SiteEmail
	}
	if c.NotifyTimeout == 0 {
		c.NotifyTimeout = 10 * time.Second
	}
	if c.WaitlistLimit == 0 {
		c.WaitlistLimit = 5
	}
	if c.WaitlistWindow == 0 {
		c.WaitlistWindow = time.Minute
	}
}

// Validate reports the first invalid setting. It expects defaults applied.
func (c SiteConfig) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, c.URL)
	}
	if c.Environment != EnvProduction && c.Environment != EnvDevelopment {
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, c.Environment)
	}
	if c.SessionSecret == "" {
		return ErrMissingSecret
	}
	if c.WaitlistLimit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, c.WaitlistLimit)
	}
	if c.WaitlistWindow <= 0 {
		return fmt.Errorf("%w: waitlist_window %s", ErrInvalidDuration, c.WaitlistWindow)
	}
	if c.NotifyTimeout <= 0 {
		return fmt.Errorf("%w: notify_timeout %s", ErrInvalidDuration, c.NotifyTimeout)
	}
	return nil
}

// EmailJS reports whether EmailJS credentials are configured.
func (c SiteConfig) EmailJS() (notify.EmailJSConfig, bool) {
	cfg := notify.EmailJSConfig{
		ServiceID:  c.EmailJSServiceID,
		PublicKey:  c.EmailJSPublicKey,
		PrivateKey: c.EmailJSPrivateKey,
		Timeout:    c.NotifyTimeout,
	}
	return cfg, c.EmailJSServiceID != "" && c.EmailJSPublicKey != ""
}

// LoadConfig reads the YAML file at path (skipped when path is empty),
// applies FINTREX_* environment overrides, fills defaults and validates.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("fintrex: open config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("fintrex: parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *SiteConfig) applyEnv() error {
	c.Name = EnvOr("FINTREX_NAME", c.Name)
	c.URL = EnvOr("FINTREX_URL", c.URL)
	c.Addr = EnvOr("FINTREX_ADDR", c.Addr)
	c.Environment = EnvOr("FINTREX_ENV", c.Environment)
	c.LogLevel = EnvOr("FINTREX_LOG_LEVEL", c.LogLevel)
	c.SessionSecret = EnvOr("FINTREX_SESSION_SECRET", c.SessionSecret)
	c.StaticDir = EnvOr("FINTREX_STATIC_DIR", c.StaticDir)
	c.NotifyTo = EnvOr("FINTREX_NOTIFY_TO", c.NotifyTo)
	c.EmailJSServiceID = EnvOr("FINTREX_EMAILJS_SERVICE_ID", c.EmailJSServiceID)
	c.EmailJSPublicKey = EnvOr("FINTREX_EMAILJS_PUBLIC_KEY", c.EmailJSPublicKey)
	c.EmailJSPrivateKey = EnvOr("FINTREX_EMAILJS_PRIVATE_KEY", c.EmailJSPrivateKey)

	for key, dst := range map[string]*bool{
		"FINTREX_COOKIE_SECURE": &c.CookieSecure,
		"FINTREX_METRICS":       &c.MetricsEnabled,
	} {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("fintrex: %s: %w", key, err)
			}
			*dst = b
		}
	}
	if v := os.Getenv("FINTREX_NOTIFY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("fintrex: FINTREX_NOTIFY_TIMEOUT: %w", err)
		}
		c.NotifyTimeout = d
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory served under /public.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger sets the application logger (default zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithSender replaces the notification transport chosen from the config.
func WithSender(s notify.Sender) Option {
	return func(a *App) {
		a.sender = s
	}
}

// WithStore replaces the bundled content.
func WithStore(s *content.Store) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithClock overrides the time source used for footers and timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
