package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Invoice  InvoiceConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr     string
	MaxUploadMB  int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// OCRConfig holds label-scanning configuration
type OCRConfig struct {
	Tesseract           string
	TessdataDir         string
	Language            string
	ConfidenceThreshold float64
	TempDir             string
}

// InvoiceConfig holds invoice-parsing configuration
type InvoiceConfig struct {
	Pdftotext string
	MaxPages  int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", "file:filatrack.db?_pragma=foreign_keys(1)"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			HTTPAddr:     getEnv("HTTP_ADDR", ":8000"),
			MaxUploadMB:  getEnvAsInt("MAX_UPLOAD_MB", 20),
			ReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		},
		OCR: OCRConfig{
			Tesseract:           getEnv("TESSERACT_BIN", "tesseract"),
			TessdataDir:         getEnv("TESSDATA_PREFIX", ""),
			Language:            getEnv("TESSERACT_LANG", "eng"),
			ConfidenceThreshold: getEnvAsFloat64("OCR_CONFIDENCE_THRESHOLD", 80),
			TempDir:             getEnv("OCR_TEMP_DIR", ""),
		},
		Invoice: InvoiceConfig{
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			MaxPages:  getEnvAsInt("INVOICE_MAX_PAGES", 20),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.ConfidenceThreshold < 0 || c.OCR.ConfidenceThreshold > 100 {
		return NewAppError("CONFIG_ERROR", "OCR_CONFIDENCE_THRESHOLD must be in [0,100]", ErrInvalidInput)
	}
	return nil
}
