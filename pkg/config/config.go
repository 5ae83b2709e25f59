package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. ATLAS_OUTPUT_DIR.
const EnvPrefix = "ATLAS"

type Config struct {
	Report ReportConfig `mapstructure:"report"`
	Output OutputConfig `mapstructure:"output"`
	S3     S3Config     `mapstructure:"s3"`
	Source SourceConfig `mapstructure:"source"`
	Server ServerConfig `mapstructure:"server"`
}

type ReportConfig struct {
	Currency string `mapstructure:"currency" validate:"required,len=3,alpha"`
}

type OutputConfig struct {
	Dir     string   `mapstructure:"dir" validate:"required"`
	Formats []string `mapstructure:"formats" validate:"required,min=1,dive,oneof=json csv html all"`
}

// S3Config is optional. Reports are uploaded only when Bucket is set.
type S3Config struct {
	Bucket   string `mapstructure:"bucket"`
	Prefix   string `mapstructure:"prefix"`
	Region   string `mapstructure:"region" validate:"required_with=Bucket"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
}

type SourceConfig struct {
	Profile      string `mapstructure:"profile"`
	ProfilesFile string `mapstructure:"profiles_file"`
	Snapshot     string `mapstructure:"snapshot"`
	Strict       bool   `mapstructure:"strict"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

// FormatList joins the configured formats the way export.ParseFormats reads them.
func (o OutputConfig) FormatList() string {
	return strings.Join(o.Formats, ",")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.currency", "INR")
	v.SetDefault("output.dir", "reports")
	v.SetDefault("output.formats", []string{"json", "csv", "html"})
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "reports")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("source.profile", "default")
	v.SetDefault("source.profiles_file", DefaultProfilesFile())
	v.SetDefault("source.snapshot", "")
	v.SetDefault("source.strict", false)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
}

// DefaultProfilesFile is ~/.atlascfg, or .atlascfg in the working directory when the home
// directory is unknown.
func DefaultProfilesFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".atlascfg"
	}
	return filepath.Join(home, ".atlascfg")
}

// LoadConfig reads the optional config file at path, applies ATLAS_* environment overrides
// on top of the built-in defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Report.Currency = strings.ToUpper(strings.TrimSpace(cfg.Report.Currency))
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field as "Section.Field: rule".
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
