package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/thellimist/apigen/internal/nameutil"
)

// DefaultConfigFile is read from the working directory when no --config
// path is given. Its absence is not an error.
const DefaultConfigFile = "apigen.yaml"

// EnvPrefix prefixes every environment override, e.g. APIGEN_SERVER_ADDR.
const EnvPrefix = "APIGEN"

// Config represents the application configuration
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
}

// GeneratorConfig holds project generation settings
type GeneratorConfig struct {
	ParentName  string `mapstructure:"parent_name" validate:"required"`
	OutputDir   string `mapstructure:"output_dir" validate:"required"`
	MaxAttempts int    `mapstructure:"max_attempts" validate:"min=1"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Addr           string        `mapstructure:"addr" validate:"required"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes" validate:"min=1"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Load reads the configuration: defaults, then the config file, then a
// .env file, then APIGEN_* environment variables. If configPath is empty,
// apigen.yaml in the working directory is used when present.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigFile
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if explicit || !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.parent_name", nameutil.DefaultBaseName)
	v.SetDefault("generator.output_dir", ".")
	v.SetDefault("generator.max_attempts", 16)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("server.read_timeout", "15s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absOutput, err := filepath.Abs(c.Generator.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve generator.output_dir: %w", err)
	}
	c.Generator.OutputDir = absOutput
	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
