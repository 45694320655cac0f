package utils

import (
	"context"
	"database/sql"
	"os"
	"strings"

	helpers "github.com/Lineblocs/go-helpers"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"lineblocs.com/billing/models"
)

var db *sql.DB

func GetDBConnection() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	var err error
	db, err = helpers.CreateDBConn()
	if err != nil {
		return nil, err
	}
	return db, nil
}

func Config(key string) string {
	if os.Getenv("USE_DOTENV") != "off" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

// ConfigDefault returns fallback when key is unset or blank.
func ConfigDefault(key, fallback string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return fallback
}

// LoadSettings gathers the configuration used by the commands and workers.
func LoadSettings() *models.Settings {
	return &models.Settings{
		StripeSecretKey: Config("STRIPE_SECRET_KEY"),
		AppBaseURL:      strings.TrimRight(Config("APP_BASE_URL"), "/"),
		QueueURL:        Config("QUEUE_URL"),
		RedisURL:        ConfigDefault("REDIS_URL", "redis://localhost:6379/0"),
		Credentials: map[string]string{
			"aws_region":            ConfigDefault("AWS_REGION", "us-east-1"),
			"aws_access_key_id":     Config("AWS_ACCESS_KEY_ID"),
			"aws_secret_access_key": Config("AWS_SECRET_ACCESS_KEY"),
			"s3_bucket":             Config("EVENT_ARCHIVE_BUCKET"),
		},
		MailgunDomain:  Config("MAILGUN_DOMAIN"),
		MailgunAPIKey:  Config("MAILGUN_API_KEY"),
		AlertEmailFrom: ConfigDefault("ALERT_EMAIL_FROM", "billing@lineblocs.com"),
		AlertEmailTo:   Config("ALERT_EMAIL_TO"),
	}
}

// MigrationDatabaseParts returns the DSN parts for schema migrations from the
// same DB_* variables the connection pool uses.
func MigrationDatabaseParts() (user, password, host, port, name string) {
	return Config("DB_USER"), Config("DB_PASS"), ConfigDefault("DB_HOST", "127.0.0.1"), ConfigDefault("DB_PORT", "3306"), Config("DB_NAME")
}

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse REDIS_URL")
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, errors.Wrapf(err, "could not connect to redis at %s", opt.Addr)
	}
	return rdb, nil
}
