package config

import (
	"os"
	"strconv"
)

// Server holds the inbound HTTP surface settings.
type Server struct {
	Port          int
	WebhookSecret string
}

// Aurora holds the design-provider API credentials.
type Aurora struct {
	BaseURL  string
	APIKey   string
	TenantID string
}

// Zoho holds the CRM OAuth credentials. AccountsURL issues tokens,
// APIDomain serves the CRM record APIs.
type Zoho struct {
	AccountsURL  string
	APIDomain    string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// EventLog holds the optional DynamoDB audit-log settings. An empty Table
// disables the event log entirely.
type EventLog struct {
	Table           string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type Config struct {
	Server   Server
	Aurora   Aurora
	Zoho     Zoho
	EventLog EventLog
}

// Load reads the full configuration from the environment once at startup.
// Collaborators receive their section at construction and never re-read
// the environment per call.
func Load() Config {
	return Config{
		Server: Server{
			Port:          getenvInt("PORT", 8080),
			WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		},
		Aurora: Aurora{
			BaseURL:  getenvDefault("AURORA_BASE_URL", "https://api.aurorasolar.com"),
			APIKey:   os.Getenv("AURORA_API_KEY"),
			TenantID: os.Getenv("AURORA_TENANT_ID"),
		},
		Zoho: Zoho{
			AccountsURL:  getenvDefault("ZOHO_ACCOUNTS_URL", "https://accounts.zoho.com"),
			APIDomain:    getenvDefault("ZOHO_API_DOMAIN", "https://www.zohoapis.com"),
			ClientID:     os.Getenv("ZOHO_CLIENT_ID"),
			ClientSecret: os.Getenv("ZOHO_CLIENT_SECRET"),
			RefreshToken: os.Getenv("ZOHO_REFRESH_TOKEN"),
		},
		EventLog: EventLog{
			Table:           os.Getenv("SYNC_EVENTS_TABLE"),
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
