package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/alexedwards/argon2id"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// DatabaseFields are the fields tools that only touch the database validate.
var DatabaseFields = []string{"DatabaseDSN", "DatabaseRetries"}

type Config struct {
	// WebServer Configuration
	WebServerPort int    `mapstructure:"WEBSERVER_PORT"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Database Configuration
	DatabaseDSN     string `mapstructure:"DATABASE_DSN" validate:"required"`
	DatabaseRetries int    `mapstructure:"DATABASE_RETRIES" validate:"gte=1"`

	// Admin login
	AdminUsername     string `mapstructure:"ADMIN_USERNAME" validate:"required"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH" validate:"required,argon2id"`

	// Module
	ModuleOwner   string `mapstructure:"MODULE_OWNER" validate:"required"`
	DefaultLocale string `mapstructure:"DEFAULT_LOCALE" validate:"required,bcp47"`

	Ace AceConfig
}

// AceConfig configures the code editor attached to the markup template field.
type AceConfig struct {
	Enabled    bool   `mapstructure:"ACE_ENABLED"`
	Theme      string `mapstructure:"ACE_THEME"`
	Keybinding string `mapstructure:"ACE_KEYBINDING" validate:"oneof=none vim emacs sublime vscode"`
	Height     int    `mapstructure:"ACE_HEIGHT" validate:"gte=1"`
	Behaviors  bool   `mapstructure:"ACE_BEHAVIORS"`
}

// LogValue keeps secrets out of the startup log.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webserver_port", c.WebServerPort),
		slog.Int("database_retries", c.DatabaseRetries),
		slog.String("admin_username", c.AdminUsername),
		slog.String("module_owner", c.ModuleOwner),
		slog.String("default_locale", c.DefaultLocale),
		slog.Bool("ace_enabled", c.Ace.Enabled),
	)
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag != "" {
			viper.BindEnv(tag)
		}

		// Handle nested structs
		if field.Type.Kind() == reflect.Struct && tag == "" {
			nestedTyp := fieldVal.Type()
			for j := 0; j < fieldVal.NumField(); j++ {
				nestedField := nestedTyp.Field(j)
				nestedTag := nestedField.Tag.Get("mapstructure")
				if nestedTag != "" {
					viper.BindEnv(nestedTag)
				}
			}
		}
	}
	slog.Info("Environment variables bound", "config", c)
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("argon2id", func(fl validator.FieldLevel) bool {
		_, _, _, err := argon2id.DecodeHash(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// LoadConfig reads the environment. When only is given, validation is
// limited to those Config fields, for tools that need a subset (the migrator
// needs no admin login).
func LoadConfig(ctx context.Context, only ...string) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("DATABASE_RETRIES", 10)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("MODULE_OWNER", "TextformatterVideoMarkup")
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("ACE_ENABLED", false)
	viper.SetDefault("ACE_THEME", "monokai")
	viper.SetDefault("ACE_KEYBINDING", "none")
	viper.SetDefault("ACE_HEIGHT", 25)
	viper.SetDefault("ACE_BEHAVIORS", true)

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := viper.Unmarshal(&cfg.Ace); err != nil {
		return nil, fmt.Errorf("unmarshal ace config: %w", err)
	}

	slog.Info("Loaded configuration", "config", cfg)

	validate := newValidator()
	var err error
	if len(only) > 0 {
		err = validate.StructPartial(cfg, only...)
	} else {
		err = validate.Struct(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
