package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverDynamo   = "dynamodb"
)

var ErrUnknownDriver = errors.New("unknown store driver")

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Fenestra"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Store struct {
		Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
	}

	DB struct {
		Host        string        `envconfig:"DB_HOST" default:"localhost"`
		Port        int           `envconfig:"DB_PORT" default:"5432"`
		User        string        `envconfig:"DB_USER" default:"postgres"`
		Password    string        `envconfig:"DB_PASSWORD" default:""`
		Name        string        `envconfig:"DB_NAME" default:"fenestra"`
		SSLMode     string        `envconfig:"DB_SSLMODE" default:"disable"`
		MaxOpen     int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdle     int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		MaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
		Migrate     bool          `envconfig:"DB_MIGRATE" default:"true"`
	}

	Dynamo struct {
		Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
		Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
		AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
		SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
		QuotationsTable string `envconfig:"QUOTATIONS_TABLE" default:"quotations"`
		PricebookTable  string `envconfig:"PRICEBOOK_TABLE" default:"pricebook"`
		SequencesTable  string `envconfig:"SEQUENCES_TABLE" default:"sequences"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Bearer tokens are only checked when a secret is configured.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Quotation struct {
		NumberPrefix  string  `envconfig:"QUOTATION_PREFIX" default:"QT"`
		GSTRate       float64 `envconfig:"QUOTATION_GST_RATE" default:"0.18"`
		Transport     float64 `envconfig:"QUOTATION_TRANSPORT" default:"0"`
		Loading       float64 `envconfig:"QUOTATION_LOADING" default:"0"`
		ValidityDays  int     `envconfig:"QUOTATION_VALIDITY_DAYS" default:"30"`
		ExportWorkers int     `envconfig:"QUOTATION_EXPORT_WORKERS" default:"4"`
	}

	Company struct {
		Name    string `envconfig:"COMPANY_NAME" default:"Fenestra Windows"`
		Address string `envconfig:"COMPANY_ADDRESS"`
		Phone   string `envconfig:"COMPANY_PHONE"`
		Email   string `envconfig:"COMPANY_EMAIL"`
		GSTIN   string `envconfig:"COMPANY_GSTIN"`
		Website string `envconfig:"COMPANY_WEBSITE"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverPostgres, DriverDynamo:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Store.Driver)
	}

	if c.Quotation.GSTRate < 0 {
		return fmt.Errorf("gst rate must not be negative, got %v", c.Quotation.GSTRate)
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
