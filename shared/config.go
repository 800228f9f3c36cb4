// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"github.com/spf13/viper"
)

// Config holds the process-wide settings. They are read once at startup
// and never mutated afterwards.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// workspace validation bounds
	WorkspaceTitleMinLen int
	WorkspaceTitleMaxLen int

	// pagination
	DefaultPageSize int

	RBACConfigPath string

	// static "token:user" pairs accepted by the API
	APITokens string
}

// Cfg is the active configuration. Tests run against the defaults.
var Cfg = defaultConfig()

func defaultConfig() Config {
	return Config{
		PostgresHost:         "localhost",
		PostgresPort:         "5432",
		PostgresUser:         "postgres",
		PostgresPassword:     "postgres",
		PostgresDB:           "labelstudio",
		WorkspaceTitleMinLen: 3,
		WorkspaceTitleMaxLen: 50,
		DefaultPageSize:      10000,
		RBACConfigPath:       "config/rbac_model.conf",
	}
}

// LoadAppConfig binds the environment into Cfg. godotenv has already
// populated the environment at this point.
func LoadAppConfig() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "labelstudio")
	v.SetDefault("WORKSPACE_TITLE_MIN_LEN", 3)
	v.SetDefault("WORKSPACE_TITLE_MAX_LEN", 50)
	v.SetDefault("PAGE_SIZE_DEFAULT", 10000)
	v.SetDefault("RBAC_CONFIG_PATH", "config/rbac_model.conf")
	v.SetDefault("API_TOKENS", "")

	Cfg = Config{
		PostgresHost:         v.GetString("POSTGRES_HOST"),
		PostgresPort:         v.GetString("POSTGRES_PORT"),
		PostgresUser:         v.GetString("POSTGRES_USER"),
		PostgresPassword:     v.GetString("POSTGRES_PASSWORD"),
		PostgresDB:           v.GetString("POSTGRES_DB"),
		WorkspaceTitleMinLen: v.GetInt("WORKSPACE_TITLE_MIN_LEN"),
		WorkspaceTitleMaxLen: v.GetInt("WORKSPACE_TITLE_MAX_LEN"),
		DefaultPageSize:      v.GetInt("PAGE_SIZE_DEFAULT"),
		RBACConfigPath:       v.GetString("RBAC_CONFIG_PATH"),
		APITokens:            v.GetString("API_TOKENS"),
	}
	return Cfg
}
