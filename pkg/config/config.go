package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	SMSExportPath   string
	IngestChunkSize int
	RateLimit       string // ulule/limiter formatted rate, e.g. "120-M"
	CORSOrigins     []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("SMS_EXPORT_PATH", "modified_sms_v2.xml")
	viper.SetDefault("INGEST_CHUNK_SIZE", 100)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		SMSExportPath:   viper.GetString("SMS_EXPORT_PATH"),
		IngestChunkSize: viper.GetInt("INGEST_CHUNK_SIZE"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		CORSOrigins:     viper.GetStringSlice("CORS_ORIGINS"),
	}
	return cfg, nil
}
