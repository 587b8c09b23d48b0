package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	GinMode  string `mapstructure:"GIN_MODE"`

	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogEncoding    string `mapstructure:"LOG_ENCODING"`
	LogDevelopment bool   `mapstructure:"LOG_DEVELOPMENT"`
	LogFile        string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB   int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups  int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAgeDays  int    `mapstructure:"LOG_MAX_AGE_DAYS"`
	LogCompress    bool   `mapstructure:"LOG_COMPRESS"`

	DefaultPerPage      int  `mapstructure:"DEFAULT_PER_PAGE"`
	MaxPerPage          int  `mapstructure:"MAX_PER_PAGE"`
	ImportSkipUnchanged bool `mapstructure:"IMPORT_SKIP_UNCHANGED"`
}

// UsesSQLite reports whether the store runs on the embedded SQLite driver.
func (c *Config) UsesSQLite() bool {
	return c.DBDriver == "sqlite"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "console")
	v.SetDefault("LOG_DEVELOPMENT", true)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 14)
	v.SetDefault("LOG_COMPRESS", false)
	v.SetDefault("DEFAULT_PER_PAGE", 20)
	v.SetDefault("MAX_PER_PAGE", 100)
	v.SetDefault("IMPORT_SKIP_UNCHANGED", false)
}

// LoadConfig loads the configuration from a .env file and environment variables.
// A missing .env file is not an error; found reports whether one was read.
func LoadConfig(paths ...string) (cfg *Config, found bool, err error) {
	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	found = true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, false, err
		}
		found = false
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, found, err
	}
	return cfg, found, nil
}
