// Package config loads server configuration from an optional YAML file,
// a .env file and SHUTTLECASH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EnvPrefix is the prefix of environment overrides: http.addr is read from
// SHUTTLECASH_HTTP_ADDR.
const EnvPrefix = "SHUTTLECASH"

// DevJWTSecret is the signing secret used when none is configured. It is
// rejected outside development.
const DevJWTSecret = "dev-secret-change-me"

type Config struct {
	App struct {
		Env      string
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Storage struct {
		Path string
	} `mapstructure:"storage"`

	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenTTL      time.Duration `mapstructure:"token_ttl"`
		AdminUsername string        `mapstructure:"admin_username"`
		AdminPassword string        `mapstructure:"admin_password"`
	} `mapstructure:"auth"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	// Pricing seeds the pricing table on first boot only. Later changes go
	// through SettingsService.
	Pricing struct {
		ShuttlecockPrice     int64 `mapstructure:"shuttlecock_price"`
		CourtFeeNonMember    int64 `mapstructure:"court_fee_non_member"`
		MembershipFeeMonthly int64 `mapstructure:"membership_fee_monthly"`
	} `mapstructure:"pricing"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.path", "./data/shuttlecash.db")
	v.SetDefault("auth.jwt_secret", DevJWTSecret)
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("auth.admin_password", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("pricing.shuttlecock_price", 0)
	v.SetDefault("pricing.court_fee_non_member", 0)
	v.SetDefault("pricing.membership_fee_monthly", 0)
}

// Load reads configuration. envFiles are loaded into the process
// environment first without overriding variables that are already set;
// missing env files are skipped. path is an optional YAML file; when set it
// must exist. Environment variables take precedence over the file.
func Load(path string, envFiles ...string) (Config, error) {
	var c Config

	for _, f := range envFiles {
		if err := gotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	if c.Storage.Path == "" {
		errs = append(errs, errors.New("storage.path is required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if !c.IsDevelopment() && c.Auth.JWTSecret == DevJWTSecret {
		errs = append(errs, errors.New("auth.jwt_secret must be set outside development"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.Auth.AdminPassword != "" && c.Auth.AdminUsername == "" {
		errs = append(errs, errors.New("auth.admin_username is required with auth.admin_password"))
	}
	if c.Pricing.ShuttlecockPrice < 0 || c.Pricing.CourtFeeNonMember < 0 || c.Pricing.MembershipFeeMonthly < 0 {
		errs = append(errs, errors.New("pricing values cannot be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
