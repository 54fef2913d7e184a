package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// CORS configuration
type CORSConfig struct {
	AllowedOrigin string
}

// Firebase service account configuration.
// Each field maps to one FIREBASE_* environment variable, matching the
// credential layout of a downloaded service-account key file.
type FirebaseConfig struct {
	Type                string `json:"type"`
	ProjectID           string `json:"project_id"`
	PrivateKeyID        string `json:"private_key_id"`
	PrivateKey          string `json:"private_key"`
	ClientEmail         string `json:"client_email"`
	ClientID            string `json:"client_id"`
	AuthURI             string `json:"auth_uri"`
	TokenURI            string `json:"token_uri"`
	AuthProviderCertURL string `json:"auth_provider_x509_cert_url"`
	ClientCertURL       string `json:"client_x509_cert_url"`
}

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Firebase FirebaseConfig
}

// Default configuration values
const (
	DefaultServerPort    = "5000"
	DefaultServerHost    = ""
	DefaultAllowedOrigin = "http://localhost:3000"
)

// Input limits shared by handlers
const (
	MaxNameLength     = 100
	MaxEmailLength    = 254
	MinPasswordLength = 6
)

// New returns a new Config populated from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", DefaultServerPort),
			Host: getEnv("HOST", DefaultServerHost),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("ALLOWED_ORIGIN", DefaultAllowedOrigin),
		},
		Firebase: FirebaseConfig{
			Type:                getEnv("FIREBASE_TYPE", "service_account"),
			ProjectID:           getEnv("FIREBASE_PROJECT_ID", ""),
			PrivateKeyID:        getEnv("FIREBASE_PRIVATE_KEY_ID", ""),
			PrivateKey:          getEnv("FIREBASE_PRIVATE_KEY", ""),
			ClientEmail:         getEnv("FIREBASE_CLIENT_EMAIL", ""),
			ClientID:            getEnv("FIREBASE_CLIENT_ID", ""),
			AuthURI:             getEnv("FIREBASE_AUTH_URI", "https://accounts.google.com/o/oauth2/auth"),
			TokenURI:            getEnv("FIREBASE_TOKEN_URI", "https://oauth2.googleapis.com/token"),
			AuthProviderCertURL: getEnv("FIREBASE_AUTH_PROVIDER_CERT_URL", "https://www.googleapis.com/oauth2/v1/certs"),
			ClientCertURL:       getEnv("FIREBASE_CLIENT_CERT_URL", ""),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// ServiceAccountJSON renders the Firebase config as a credentials JSON
// blob suitable for option.WithCredentialsJSON. Escaped newlines in the
// private key (as stored in .env files) are expanded to real newlines.
func (f *FirebaseConfig) ServiceAccountJSON() ([]byte, error) {
	sa := *f
	sa.PrivateKey = strings.ReplaceAll(sa.PrivateKey, `\n`, "\n")
	return json.Marshal(sa)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
