package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	MongoURI    string
	MongoDB     string
	AdminToken  string
	Environment string
	FrontendURL string
	Mail        MailConfig
	Cloudinary  CloudinaryConfig
}

type MailConfig struct {
	FromName     string
	FromEmail    string
	ResendAPIKey string
	SMTPEnabled  bool
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load() Config {
	port := 5000
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	return Config{
		Port:        port,
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "digital_agency"),
		AdminToken:  getEnv("ADMIN_PASSWORD", "admin123"),
		Environment: getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		Mail: MailConfig{
			FromName:     getEnv("EMAIL_FROM_NAME", "Digital Agency"),
			FromEmail:    getEnv("EMAIL_FROM", "noreply@digitalagency.com"),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			SMTPEnabled:  getEnv("SMTP_ENABLED", "false") == "true",
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPass:     getEnv("SMTP_PASS", ""),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
			Folder:    getEnv("CLOUDINARY_FOLDER", "digital-agency"),
		},
	}
}
