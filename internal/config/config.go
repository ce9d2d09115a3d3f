// Package config loads runtime configuration for mousesim.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/frudas24/mousesim/internal/logging"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "MOUSESIM_"

const (
	defaultConfigFile       = "mousesim.yaml"
	defaultEnvFile          = ".env"
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
	defaultSmoothTimeMs     = 200
	defaultDoubleClickGapMs = 10
	defaultBackDelayMs      = 50
	defaultWheelDelta       = 120
)

// Config holds runtime configuration values.
type Config struct {
	Consistent     bool
	LogLevel       string
	LogFormat      string
	SmoothTime     time.Duration
	DoubleClickGap time.Duration
	BackDelay      time.Duration
	WheelDelta     int
	ListenAddr     string
	Token          string

	// Source names the YAML file that was applied, or "<defaults>".
	Source string
}

// fileConfig mirrors the YAML layout; nil fields keep the current value.
type fileConfig struct {
	Consistent       *bool   `yaml:"consistent"`
	LogLevel         *string `yaml:"log_level"`
	LogFormat        *string `yaml:"log_format"`
	SmoothTimeMs     *int    `yaml:"smooth_time_ms"`
	DoubleClickGapMs *int    `yaml:"double_click_gap_ms"`
	BackDelayMs      *int    `yaml:"back_delay_ms"`
	WheelDelta       *int    `yaml:"wheel_delta"`
	ListenAddr       *string `yaml:"listen_addr"`
	Token            *string `yaml:"token"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		SmoothTime:     defaultSmoothTimeMs * time.Millisecond,
		DoubleClickGap: defaultDoubleClickGapMs * time.Millisecond,
		BackDelay:      defaultBackDelayMs * time.Millisecond,
		WheelDelta:     defaultWheelDelta,
		Source:         "<defaults>",
	}
}

// Load reads MOUSESIM_CONFIG (default ./mousesim.yaml), then MOUSESIM_ENV_FILE
// (default ./.env), then MOUSESIM_* environment variables. Missing default
// files are tolerated; a missing file named explicitly is an error.
func Load() (Config, error) {
	cfgPath, cfgExplicit := os.LookupEnv(EnvPrefix + "CONFIG")
	if !cfgExplicit || strings.TrimSpace(cfgPath) == "" {
		cfgPath, cfgExplicit = defaultConfigFile, false
	}
	envPath, envExplicit := os.LookupEnv(EnvPrefix + "ENV_FILE")
	if !envExplicit || strings.TrimSpace(envPath) == "" {
		envPath, envExplicit = defaultEnvFile, false
	}
	return LoadFiles(strings.TrimSpace(cfgPath), cfgExplicit, strings.TrimSpace(envPath), envExplicit)
}

// LoadFiles applies the YAML file at cfgPath and the .env file at envPath on
// top of the defaults, then the process environment.
func LoadFiles(cfgPath string, cfgRequired bool, envPath string, envRequired bool) (Config, error) {
	cfg := Default()

	if cfgPath != "" {
		if err := applyYAMLFile(&cfg, cfgPath, cfgRequired); err != nil {
			return cfg, err
		}
	}

	fileEnv, err := loadEnvFile(envPath, envRequired)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, envSource{file: fileEnv}); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate ensures values are usable; errors name the offending key.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "json", "console", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if c.SmoothTime < 0 {
		return errors.New("SMOOTH_TIME_MS must be >= 0")
	}
	if c.DoubleClickGap < 0 {
		return errors.New("DOUBLE_CLICK_GAP_MS must be >= 0")
	}
	if c.BackDelay < 0 {
		return errors.New("BACK_DELAY_MS must be >= 0")
	}
	if c.WheelDelta <= 0 {
		return errors.New("WHEEL_DELTA must be > 0")
	}
	return nil
}

// applyYAMLFile decodes path into cfg. Unknown keys are rejected.
func applyYAMLFile(cfg *Config, path string, required bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("open config file %q: %w", path, err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %q: %w", path, err)
	}
	fc.apply(cfg)
	cfg.Source = path
	return nil
}

// apply copies the fields present in the file.
func (fc fileConfig) apply(cfg *Config) {
	if fc.Consistent != nil {
		cfg.Consistent = *fc.Consistent
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.SmoothTimeMs != nil {
		cfg.SmoothTime = time.Duration(*fc.SmoothTimeMs) * time.Millisecond
	}
	if fc.DoubleClickGapMs != nil {
		cfg.DoubleClickGap = time.Duration(*fc.DoubleClickGapMs) * time.Millisecond
	}
	if fc.BackDelayMs != nil {
		cfg.BackDelay = time.Duration(*fc.BackDelayMs) * time.Millisecond
	}
	if fc.WheelDelta != nil {
		cfg.WheelDelta = *fc.WheelDelta
	}
	if fc.ListenAddr != nil {
		cfg.ListenAddr = *fc.ListenAddr
	}
	if fc.Token != nil {
		cfg.Token = *fc.Token
	}
}

// applyEnv layers MOUSESIM_* values over cfg.
func applyEnv(cfg *Config, env envSource) error {
	var err error
	if cfg.Consistent, err = env.boolean("CONSISTENT", cfg.Consistent); err != nil {
		return err
	}
	cfg.LogLevel = env.str("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = env.str("LOG_FORMAT", cfg.LogFormat)
	cfg.ListenAddr = env.str("LISTEN_ADDR", cfg.ListenAddr)
	cfg.Token = env.str("TOKEN", cfg.Token)

	if cfg.SmoothTime, err = env.millis("SMOOTH_TIME_MS", cfg.SmoothTime); err != nil {
		return err
	}
	if cfg.DoubleClickGap, err = env.millis("DOUBLE_CLICK_GAP_MS", cfg.DoubleClickGap); err != nil {
		return err
	}
	if cfg.BackDelay, err = env.millis("BACK_DELAY_MS", cfg.BackDelay); err != nil {
		return err
	}
	if cfg.WheelDelta, err = env.integer("WHEEL_DELTA", cfg.WheelDelta); err != nil {
		return err
	}
	return nil
}

// envSource resolves keys from the process environment first, then the .env file.
type envSource struct {
	file map[string]string
}

// lookup returns the trimmed value for key without the prefix.
func (e envSource) lookup(key string) (string, bool) {
	name := EnvPrefix + key
	if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	if v, ok := e.file[name]; ok && v != "" {
		return v, true
	}
	return "", false
}

// str returns an override when present, otherwise a default.
func (e envSource) str(key, def string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return def
}

// integer returns an int override when present, otherwise a default.
func (e envSource) integer(key string, def int) (int, error) {
	raw, ok := e.lookup(key)
	if !ok {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// millis returns a millisecond override when present, otherwise a default.
func (e envSource) millis(key string, def time.Duration) (time.Duration, error) {
	ms, err := e.integer(key, int(def.Milliseconds()))
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// boolean returns a bool override when present, otherwise a default.
func (e envSource) boolean(key string, def bool) (bool, error) {
	raw, ok := e.lookup(key)
	if !ok {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	default:
		return def, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
}

// loadEnvFile reads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string, required bool) (map[string]string, error) {
	values := map[string]string{}
	if path == "" {
		return values, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return values, nil
		}
		return nil, fmt.Errorf("read env file %q: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		values[key] = value
	}
	return values, nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	return key, value, true
}
