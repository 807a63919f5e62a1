package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("expected default database host localhost, got %q", cfg.Database.Host)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("expected default http port 8080, got %q", cfg.HTTP.Port)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "localhost:9093" {
		t.Errorf("unexpected default brokers %v", cfg.Kafka.Brokers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Host != "db.internal" {
		t.Errorf("override not applied, got %q", cfg.Database.Host)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Errorf("expected 2 brokers, got %v", cfg.Kafka.Brokers)
	}
	if cfg.HTTP.Port != "9090" {
		t.Errorf("override not applied, got %q", cfg.HTTP.Port)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg.Database.Host = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing database host")
	}

	cfg.Database.Host = "localhost"
	cfg.HTTP.Port = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing http port")
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "notifier_user",
		Password: "notifier_pass",
		DBName:   "notifier_db",
		SSLMode:  "disable",
	}

	dsn := db.GetDSN()
	for _, part := range []string{"host=localhost", "port=5432", "dbname=notifier_db", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("dsn missing %q: %s", part, dsn)
		}
	}
}
