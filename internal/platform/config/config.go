// Package config loads process configuration from the environment so main
// stays lean. A .env file is honored when present; explicit environment
// variables win.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	stringsx "fundus/pkg/platform/strings"
)

// Config is the full server configuration.
type Config struct {
	Addr      string `validate:"required"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=console json"`

	// SourceDriver selects the fact store backing the report service.
	SourceDriver string `validate:"oneof=memory postgres snapshot"`
	PostgresDSN  string `validate:"required_if=SourceDriver postgres"`
	SnapshotPath string `validate:"required_if=SourceDriver snapshot"`
	// ShapefilePath optionally enriches snapshot parcels with municipal
	// boundaries; MuniIDField names the attribute keyed to muni_id.
	ShapefilePath string
	MuniIDField   string

	// JWTSigningKey guards the API; empty disables authentication, for
	// local development only.
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	RequestTimeout time.Duration `validate:"gt=0"`

	// ExportDriver selects where exported reports land.
	ExportDriver string `validate:"oneof=none fs s3"`
	ExportRoot   string `validate:"required_if=ExportDriver fs"`
	S3Bucket     string `validate:"required_if=ExportDriver s3"`
	S3Region     string
	S3Endpoint   string
	S3PathStyle  bool

	// KafkaBrokers, when set, routes audit events to Kafka instead of the
	// in-memory sink.
	KafkaBrokers []string
	KafkaTopic   string
}

var validate = validator.New()

// FromEnv builds a Config from FUNDUS_* environment variables, falling
// back to development defaults.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:           getenv("FUNDUS_ADDR", ":8080"),
		LogLevel:       getenv("FUNDUS_LOG_LEVEL", "info"),
		LogFormat:      getenv("FUNDUS_LOG_FORMAT", "console"),
		SourceDriver:   getenv("FUNDUS_SOURCE_DRIVER", "memory"),
		PostgresDSN:    os.Getenv("FUNDUS_POSTGRES_DSN"),
		SnapshotPath:   os.Getenv("FUNDUS_SNAPSHOT_PATH"),
		ShapefilePath:  os.Getenv("FUNDUS_SHAPEFILE_PATH"),
		MuniIDField:    getenv("FUNDUS_SHAPEFILE_MUNI_ID_FIELD", "MUNI_ID"),
		JWTSigningKey:  os.Getenv("FUNDUS_JWT_SIGNING_KEY"),
		JWTIssuer:      getenv("FUNDUS_JWT_ISSUER", "fundus"),
		JWTAudience:    getenv("FUNDUS_JWT_AUDIENCE", "fundus-api"),
		RequestTimeout: getduration("FUNDUS_REQUEST_TIMEOUT", 15*time.Second),
		ExportDriver:   getenv("FUNDUS_EXPORT_DRIVER", "none"),
		ExportRoot:     os.Getenv("FUNDUS_EXPORT_ROOT"),
		S3Bucket:       os.Getenv("FUNDUS_S3_BUCKET"),
		S3Region:       os.Getenv("FUNDUS_S3_REGION"),
		S3Endpoint:     os.Getenv("FUNDUS_S3_ENDPOINT"),
		S3PathStyle:    os.Getenv("FUNDUS_S3_PATH_STYLE") == "true",
		KafkaTopic:     getenv("FUNDUS_KAFKA_TOPIC", "fundus.audit"),
	}
	if brokers := os.Getenv("FUNDUS_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = stringsx.DedupeAndTrim(strings.Split(brokers, ","))
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
