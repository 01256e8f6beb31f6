package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Env     string `mapstructure:"ENV"`
	DataDir string `mapstructure:"DATA_DIR"`
	// LegacyPrescriptionIDs keeps the historical prescription id rule
	// (patient id + 1). Set to false to number prescriptions by their
	// position in the patient's history instead.
	LegacyPrescriptionIDs bool `mapstructure:"LEGACY_PRESCRIPTION_IDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("LEGACY_PRESCRIPTION_IDS", true)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("DATA_DIR")
	v.BindEnv("LEGACY_PRESCRIPTION_IDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR must not be empty")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CollectionPath returns the backing file for a named collection.
func (c *Config) CollectionPath(name string) string {
	return filepath.Join(c.DataDir, name+".json")
}
