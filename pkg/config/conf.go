package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mchmarny/flopctl/pkg/texture"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600

	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"

	DefaultAddress = "127.0.0.1:8080"

	envPrefix = "FLOPCTL_"
)

var formats = []string{FormatJSON, FormatYAML, FormatTable}

// Config represents app config object.
type Config struct {
	LogLevel string          `yaml:"log_level"`
	Format   string          `yaml:"format"`
	Server   ServerConfig    `yaml:"server"`
	Survey   SurveyConfig    `yaml:"survey"`
	Weights  texture.Weights `yaml:"weights"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type SurveyConfig struct {
	// Workers of 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// Default returns the configuration written on first use.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Format:   FormatJSON,
		Server: ServerConfig{
			Address: DefaultAddress,
		},
		Weights: texture.DefaultWeights,
	}
}

// Validate checks the values that would otherwise fail deep in a command.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config required")
	}
	if !isFormat(c.Format) {
		return errors.Errorf("invalid format: %s (want one of %s)", c.Format, strings.Join(formats, ", "))
	}
	if c.Survey.Workers < 0 {
		return errors.Errorf("invalid survey workers: %d", c.Survey.Workers)
	}
	if err := c.Weights.Validate(); err != nil {
		return errors.Wrap(err, "invalid weights")
	}
	return nil
}

func isFormat(f string) bool {
	for _, v := range formats {
		if v == f {
			return true
		}
	}
	return false
}

// NormalizeFormat maps aliases such as "yml" to a known format.
func NormalizeFormat(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	if f == "yml" {
		return FormatYAML
	}
	return f
}

func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", configFileName)
	}
	return nil
}

// ReadOrCreate reads app config from directory or creates a new one.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dirPath, dirMode); err != nil {
			return nil, errors.Wrapf(err, "failed to create dir: %s", dirPath)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(dirPath, Default()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening config file: %s", path)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}
	c.Format = NormalizeFormat(c.Format)
	return c, nil
}

// LoadDotEnv loads variables from the given .env files without overriding
// variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "failed to load env file: %s", f)
		}
		slog.Debug("env file loaded", "path", f)
	}
	return nil
}

// ApplyEnv overrides config values with FLOPCTL_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookupEnv("FORMAT"); ok {
		c.Format = NormalizeFormat(v)
	}
	if v, ok := lookupEnv("ADDRESS"); ok {
		c.Server.Address = v
	}
	if v, ok := lookupEnv("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %sWORKERS: %s", envPrefix, v)
		}
		c.Survey.Workers = n
	}

	floats := map[string]*float64{
		"WEIGHT_SUIT":         &c.Weights.Suit,
		"WEIGHT_CONNECTIVITY": &c.Weights.Connectivity,
		"WEIGHT_PAIRING":      &c.Weights.Pairing,
		"WEIGHT_LOW_CARD":     &c.Weights.LowCard,
	}
	for k, dst := range floats {
		v, ok := lookupEnv(k)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid %s%s: %s", envPrefix, k, v)
		}
		*dst = f
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// GetOrCreateHomeDir returns the home directory for the current user.
// The create flag is set to true if the directory was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get user home dir")
	}
	slog.Debug("home dir", "path", home)

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, errors.Wrapf(err, "failed to create dir: %s", dir)
		}
		created = true
	}
	return dir, created, nil
}
