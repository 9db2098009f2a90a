package config

import (
	"os"
)

type StorageConfig struct {
	Driver     string // "local" or "r2"
	UploadsDir string
	InvoiceDir string
	PublicURL  string
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string
	FrontendURL string
	Storage     StorageConfig
	R2          R2Config
	Razorpay    RazorpayConfig
	Email       EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	cfg.Storage.Driver = getEnv("STORAGE_DRIVER", "local")
	cfg.Storage.UploadsDir = getEnv("UPLOADS_DIR", "uploads")
	cfg.Storage.InvoiceDir = getEnv("INVOICES_DIR", "invoices")
	cfg.Storage.PublicURL = getEnv("UPLOADS_PUBLIC_URL", "/uploads")

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Razorpay.KeyID = os.Getenv("RAZORPAY_KEY_ID")
	cfg.Razorpay.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
