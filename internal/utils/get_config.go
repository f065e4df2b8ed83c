package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppURL      string `yaml:"APP_URL"`
	AppPort     string `yaml:"APP_PORT"`
	CORSOrigins string `yaml:"CORS_ORIGINS"`
	RateLimit   string `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`
	JWTIssuer string `yaml:"JWT_ISSUER"`

	// Logging
	LogMode string `yaml:"LOG_MODE"`
	LogFile string `yaml:"LOG_FILE"`

	// Mailing configuration
	SMTPHost          string `yaml:"SMTP_HOST"`
	SMTPPort          string `yaml:"SMTP_PORT"`
	SMTPSenderName    string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail     string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword  string `yaml:"SMTP_AUTH_PASSWORD"`
	ReviewNotifyEmail string `yaml:"REVIEW_NOTIFY_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

func LoadConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	var loaded Config
	if err = yaml.Unmarshal(file, &loaded); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
	config = loaded
}

// GetConfig returns the yaml value for key, falling back to the process environment.
func GetConfig(key string) string {
	if v := lookupConfig(key); v != "" {
		return v
	}
	return os.Getenv(key)
}

// GetConfigDefault is GetConfig with a fallback for unset keys.
func GetConfigDefault(key, fallback string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return fallback
}

func lookupConfig(key string) string {
	switch key {
	case "APP_URL":
		return config.AppURL
	case "APP_PORT":
		return config.AppPort
	case "CORS_ORIGINS":
		return config.CORSOrigins
	case "RATE_LIMIT_MAX":
		return config.RateLimit
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_TIMEZONE":
		return config.DBTimeZone
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_ISSUER":
		return config.JWTIssuer
	case "LOG_MODE":
		return config.LogMode
	case "LOG_FILE":
		return config.LogFile
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "REVIEW_NOTIFY_EMAIL":
		return config.ReviewNotifyEmail
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
