package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stefanpenner/eternalquest/pkg/quest"
)

// FileName is the config file looked up inside the data directory.
const FileName = "config.yaml"

// EnvPrefix prefixes environment overrides, e.g. QUEST_SAVE_FILE.
const EnvPrefix = "QUEST"

// Config holds the user-tunable settings.
type Config struct {
	DataDir  string `mapstructure:"data_dir" yaml:"data_dir" validate:"required"`
	SaveFile string `mapstructure:"save_file" yaml:"save_file" validate:"required"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" validate:"required,oneof=debug info warn error"`
	// Autosave writes the save file after every change made in the TUI.
	Autosave bool `mapstructure:"autosave" yaml:"autosave"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataDir:  quest.DefaultDataDir(),
		SaveFile: quest.DefaultSaveFile,
		LogLevel: "info",
		Autosave: true,
	}
}

// Load resolves settings in order: defaults, <dataDir>/config.yaml,
// QUEST_* environment variables. A non-empty dataDir (the --dir flag) wins over all of them.
func Load(dataDir string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("save_file", def.SaveFile)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("autosave", def.Autosave)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	dir := dataDir
	if dir == "" {
		dir = v.GetString("data_dir")
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the settings.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
	}
	return err
}

// SavePath returns the save file location. Relative names resolve against the data directory.
func (c *Config) SavePath() string {
	if filepath.IsAbs(c.SaveFile) {
		return c.SaveFile
	}
	return filepath.Join(c.DataDir, c.SaveFile)
}

// Path returns where the config file for c lives.
func (c *Config) Path() string {
	return filepath.Join(c.DataDir, FileName)
}

// LogPath is where the TUI writes its log.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "quest.log")
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteDefault writes the default settings to path, refusing to overwrite.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	cfg := Default()
	cfg.DataDir = filepath.Dir(path)

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
