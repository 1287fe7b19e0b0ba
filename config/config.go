// config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultDBURI  = "mongodb://localhost:27017/music"
	defaultDBName = "music"
	defaultAPIURL = "http://localhost:5000/api/songs"
)

type Config struct {
	DBURI             string
	DBName            string
	ServerPort        int
	Env               string
	CORSOrigin        string
	MigrationsEnabled bool
	ConnectTimeout    time.Duration
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	serverPort, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		serverPort = 5000
	}

	dbURI := os.Getenv("DB_URI")
	if dbURI == "" {
		dbURI = defaultDBURI
	}
	parsedDBURI, err := url.Parse(dbURI)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_URI: %w", err)
	}
	if parsedDBURI.Scheme != "mongodb" && parsedDBURI.Scheme != "mongodb+srv" {
		return nil, fmt.Errorf("invalid DB_URI: unsupported scheme %q", parsedDBURI.Scheme)
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = strings.TrimPrefix(parsedDBURI.Path, "/")
	}
	if dbName == "" {
		dbName = defaultDBName
	}

	env := strings.ToLower(os.Getenv("APP_ENV"))
	if env == "" {
		env = EnvProduction
	}

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "*"
	}

	migrationsEnabled := true
	if v := os.Getenv("MIGRATIONS_ENABLED"); v != "" {
		migrationsEnabled, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MIGRATIONS_ENABLED: %w", err)
		}
	}

	return &Config{
		DBURI:             dbURI,
		DBName:            dbName,
		ServerPort:        serverPort,
		Env:               env,
		CORSOrigin:        corsOrigin,
		MigrationsEnabled: migrationsEnabled,
		ConnectTimeout:    10 * time.Second,
	}, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// DatabaseURL returns DBURI with its path set to DBName, the form the
// migration driver expects.
func (c *Config) DatabaseURL() string {
	u, err := url.Parse(c.DBURI)
	if err != nil {
		return c.DBURI
	}
	u.Path = "/" + c.DBName
	return u.String()
}

// ClientConfig configures songctl.
type ClientConfig struct {
	APIURL string
}

func LoadClientConfig() (*ClientConfig, error) {
	godotenv.Load()

	apiURL := os.Getenv("SONGCTL_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if err := validateAPIURL(apiURL); err != nil {
		return nil, err
	}
	return &ClientConfig{APIURL: apiURL}, nil
}

func validateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid SONGCTL_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid SONGCTL_API_URL: unsupported scheme %q", u.Scheme)
	}
	return nil
}
