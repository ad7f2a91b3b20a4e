package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendSQLite   = "sqlite"
	StoreBackendMemory   = "memory"
)

type Config struct {
	// FeedURL is optional; an empty value ends the run early without error.
	FeedURL string `envconfig:"FEED_URL"`

	StoreBackend  string `envconfig:"STORE_BACKEND" default:"dynamodb"`
	DynamoDBTable string `envconfig:"DYNAMODB_TABLE"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"records.db"`

	BUHashtag string `envconfig:"BU_HASHTAG" required:"true"`
	MyHashtag string `envconfig:"MY_HASHTAG" default:"MyFirstNameLovesECS"`

	// Names of the secret-store parameters holding the credentials, not
	// the credentials themselves.
	BitlyLoginParam     string `envconfig:"BITLY_LOGIN_PARAM" required:"true"`
	BitlyAPIKeyParam    string `envconfig:"BITLY_API_KEY_PARAM" required:"true"`
	ConsumerKeyParam    string `envconfig:"CONSUMER_KEY_PARAM" required:"true"`
	ConsumerSecretParam string `envconfig:"CONSUMER_SECRET_PARAM" required:"true"`
	AccessTokenParam    string `envconfig:"ACCESS_TOKEN_PARAM" required:"true"`
	AccessSecretParam   string `envconfig:"ACCESS_SECRET_PARAM" required:"true"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	switch cfg.StoreBackend {
	case StoreBackendDynamoDB:
		if cfg.DynamoDBTable == "" {
			return nil, fmt.Errorf("DYNAMODB_TABLE is required when STORE_BACKEND is %s", StoreBackendDynamoDB)
		}
	case StoreBackendSQLite, StoreBackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND: %s", cfg.StoreBackend)
	}

	return &cfg, nil
}
