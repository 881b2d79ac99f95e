// Package config loads service settings from a YAML file and KARGO_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	kargo "github.com/okang-lab/Kaffesa-Cargo-Print"
	"github.com/okang-lab/Kaffesa-Cargo-Print/label"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`
	Label   LabelConfig   `yaml:"label"`
	Chrome  ChromeConfig  `yaml:"chrome"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// PDFRate is the sustained number of PDF renders per second.
	PDFRate  float64 `yaml:"pdf_rate"`
	PDFBurst int     `yaml:"pdf_burst"`
	// MaxUpload caps uploaded files, in bytes.
	MaxUpload int64 `yaml:"max_upload"`
}

// SessionConfig configures the in-memory session store.
type SessionConfig struct {
	TTL           Duration `yaml:"ttl"`
	SweepInterval Duration `yaml:"sweep_interval"`
}

// LabelConfig holds the label sheet settings.
type LabelConfig struct {
	Size       string  `yaml:"size"`
	BadgeScale float64 `yaml:"badge_scale"`
	Sender     string  `yaml:"sender"`
	LogoPath   string  `yaml:"logo_path"`
}

// ChromeConfig configures the headless browser.
type ChromeConfig struct {
	Path         string   `yaml:"path"`
	NoSandbox    bool     `yaml:"no_sandbox"`
	AutoDownload bool     `yaml:"auto_download"`
	Timeout      Duration `yaml:"timeout"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:      ":8080",
			PDFRate:   2,
			PDFBurst:  4,
			MaxUpload: 10 << 20,
		},
		Session: SessionConfig{
			TTL:           Duration(2 * time.Hour),
			SweepInterval: Duration(5 * time.Minute),
		},
		Label: LabelConfig{
			Size:       string(label.A4),
			BadgeScale: label.DefaultBadgeScale,
			Sender:     label.DefaultSender,
		},
		Chrome: ChromeConfig{
			Timeout: Duration(30 * time.Second),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the YAML file at path on top of [Default], applies KARGO_*
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from KARGO_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	duration := func(key string, dst *Duration) {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = Duration(d)
		}
	}

	str("KARGO_ADDR", &c.Server.Addr)
	if v, ok := lookup("KARGO_ALLOWED_ORIGINS"); ok {
		c.Server.AllowedOrigins = splitList(v)
	}
	float("KARGO_PDF_RATE", &c.Server.PDFRate)
	integer("KARGO_PDF_BURST", &c.Server.PDFBurst)
	duration("KARGO_SESSION_TTL", &c.Session.TTL)
	str("KARGO_LABEL_SIZE", &c.Label.Size)
	float("KARGO_BADGE_SCALE", &c.Label.BadgeScale)
	str("KARGO_SENDER", &c.Label.Sender)
	str("KARGO_LOGO", &c.Label.LogoPath)
	str("KARGO_CHROME_PATH", &c.Chrome.Path)
	boolean("KARGO_NO_SANDBOX", &c.Chrome.NoSandbox)
	boolean("KARGO_AUTO_DOWNLOAD", &c.Chrome.AutoDownload)
	duration("KARGO_CHROME_TIMEOUT", &c.Chrome.Timeout)
	str("KARGO_LOG_LEVEL", &c.Log.Level)
	str("KARGO_LOG_FORMAT", &c.Log.Format)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var problems []string

	if c.Server.Addr == "" {
		problems = append(problems, "server.addr is required")
	}
	if c.Server.PDFRate <= 0 {
		problems = append(problems, "server.pdf_rate must be positive")
	}
	if c.Server.PDFBurst < 1 {
		problems = append(problems, "server.pdf_burst must be at least 1")
	}
	if c.Server.MaxUpload < 1 {
		problems = append(problems, "server.max_upload must be positive")
	}
	if c.Session.TTL <= 0 {
		problems = append(problems, "session.ttl must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		problems = append(problems, "session.sweep_interval must be positive")
	}
	if s := c.Label.BadgeScale; s != 0 && (s < label.MinBadgeScale || s > label.MaxBadgeScale) {
		problems = append(problems, fmt.Sprintf("label.badge_scale must be between %.1f and %.1f, got %v",
			label.MinBadgeScale, label.MaxBadgeScale, s))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level: %v", err))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Sheet builds the label sheet, reading the logo file if one is set.
func (c Config) Sheet() (label.Sheet, error) {
	sheet := label.Sheet{
		Size:       label.ParseSize(c.Label.Size),
		BadgeScale: c.Label.BadgeScale,
		Sender:     c.Label.Sender,
	}
	if c.Label.LogoPath != "" {
		logo, err := os.ReadFile(c.Label.LogoPath)
		if err != nil {
			return label.Sheet{}, fmt.Errorf("config: reading logo: %w", err)
		}
		sheet.Logo = logo
	}
	return sheet, nil
}

// ConverterOptions maps the chrome section onto converter options.
func (c Config) ConverterOptions() []kargo.Option {
	opts := []kargo.Option{kargo.WithTimeout(c.Chrome.Timeout.Std())}
	if c.Chrome.Path != "" {
		opts = append(opts, kargo.WithChromePath(c.Chrome.Path))
	}
	if c.Chrome.NoSandbox {
		opts = append(opts, kargo.WithNoSandbox())
	}
	if c.Chrome.AutoDownload {
		opts = append(opts, kargo.WithAutoDownload())
	}
	return opts
}

// Logger builds the process logger writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}
