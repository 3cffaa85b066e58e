package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Identity IdentityConfig
	TreeDB   TreeDBConfig
	Geocode  GeocodeConfig
	QR       QRConfig
	Session  SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// IdentityConfig selects the identity provider behind login/registration.
// Provider "firebase" calls the hosted identity REST API using APIKey,
// "local" keeps credentials in the service's own Postgres.
type IdentityConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
}

type TreeDBConfig struct {
	BaseURL   string
	AuthToken string
}

type GeocodeConfig struct {
	BaseURL string
}

type QRConfig struct {
	BaseURL string
}

type SessionConfig struct {
	TTLHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("IDENTITY_PROVIDER", "local")
	viper.SetDefault("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com/v1")
	viper.SetDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("QR_BASE_URL", "https://api.qrserver.com")
	viper.SetDefault("SESSION_TTL_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Identity: IdentityConfig{
			Provider: viper.GetString("IDENTITY_PROVIDER"),
			APIKey:   viper.GetString("IDENTITY_API_KEY"),
			BaseURL:  viper.GetString("IDENTITY_BASE_URL"),
		},
		TreeDB: TreeDBConfig{
			BaseURL:   viper.GetString("TREEDB_BASE_URL"),
			AuthToken: viper.GetString("TREEDB_AUTH_TOKEN"),
		},
		Geocode: GeocodeConfig{
			BaseURL: viper.GetString("GEOCODE_BASE_URL"),
		},
		QR: QRConfig{
			BaseURL: viper.GetString("QR_BASE_URL"),
		},
		Session: SessionConfig{
			TTLHours: viper.GetInt("SESSION_TTL_HOURS"),
		},
	}

	return config, nil
}
