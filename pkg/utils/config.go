package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	ResetCode ResetCodeConfig
	Email     EmailConfig
	Upload    UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type ResetCodeConfig struct {
	ExpiryMinutes int
	Length        int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type UploadConfig struct {
	Dir     string
	BaseURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("RESET_CODE_EXPIRY_MINUTES", 15)
	viper.SetDefault("RESET_CODE_LENGTH", 6)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("UPLOAD_DIR", "uploads/")
	viper.SetDefault("UPLOAD_BASE_URL", "/uploads")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		ResetCode: ResetCodeConfig{
			ExpiryMinutes: viper.GetInt("RESET_CODE_EXPIRY_MINUTES"),
			Length:        viper.GetInt("RESET_CODE_LENGTH"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Upload: UploadConfig{
			Dir:     viper.GetString("UPLOAD_DIR"),
			BaseURL: viper.GetString("UPLOAD_BASE_URL"),
		},
	}

	return config, nil
}
