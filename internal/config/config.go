package config

import (
	"os"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
	StorageNone     = "none"

	NotifierSMTP2GO = "smtp2go"
	NotifierSQS     = "sqs"
)

// Config is read once at start-up and handed to constructors.
type Config struct {
	Port          string
	LogLevel      string
	StorageDriver string
	CORSOrigins   []string

	AWS      AWSConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	Email    EmailConfig
	SQS      SQSConfig
	Admin    AdminConfig

	AdminEmails   []string
	PaymentNumber string
	QuoteCurrency string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	OrdersTable      string
}

type PostgresConfig struct {
	URL string
	SSL bool
}

type SQLiteConfig struct {
	Path string
}

type EmailConfig struct {
	Notifier string
	APIKey   string
	APIURL   string
	From     string
	Mock     bool
}

type SQSConfig struct {
	QueueURL string
	Endpoint string
}

type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Load builds a Config from the process environment.
//
// Missing credentials are not an error here; they surface when the
// dependency that needs them is used.
func Load() Config {
	return Config{
		Port:          getenvDefault("PORT", "8080"),
		LogLevel:      getenvDefault("LOG_LEVEL", "info"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageMemory)),
		CORSOrigins:   splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		AWS: AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			OrdersTable:      getenvDefault("ORDERS_TABLE", "orders"),
		},
		Postgres: PostgresConfig{
			URL: os.Getenv("DATABASE_URL"),
			SSL: os.Getenv("DATABASE_SSL") != "false",
		},
		SQLite: SQLiteConfig{
			Path: getenvDefault("SQLITE_PATH", "obsydia.db"),
		},
		Email: EmailConfig{
			Notifier: strings.ToLower(getenvDefault("NOTIFIER", NotifierSMTP2GO)),
			APIKey:   os.Getenv("SMTP2GO_API_KEY"),
			APIURL:   getenvDefault("SMTP2GO_API_URL", "https://api.smtp2go.com/v3/email/send"),
			From:     os.Getenv("FROM_EMAIL"),
			Mock:     isTruthy(os.Getenv("EMAIL_MOCK")),
		},
		SQS: SQSConfig{
			QueueURL: os.Getenv("SQS_QUEUE_URL"),
			Endpoint: os.Getenv("SQS_ENDPOINT"),
		},
		Admin: AdminConfig{
			Username:     os.Getenv("ADMIN_USERNAME"),
			Password:     os.Getenv("ADMIN_PASSWORD"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			JWTSecret:    os.Getenv("JWT_SECRET"),
			TokenTTL:     getenvDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		AdminEmails:   splitList(os.Getenv("ADMIN_EMAILS")),
		PaymentNumber: os.Getenv("ATH_MOBILE_NUMBER"),
		QuoteCurrency: strings.ToUpper(getenvDefault("QUOTE_CURRENCY", "USD")),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// splitList parses a comma separated list, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
