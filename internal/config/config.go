package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	PostgresDSN     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	// Hosted media provider credentials. All three are required; the
	// process refuses to start without them.
	CloudName      string
	CloudAPIKey    string
	CloudAPISecret string
	UploadTimeout  time.Duration

	// Publishable key of the external authentication provider (RSA PEM).
	// Empty disables auth verification (local development only).
	AuthJWTPublicKey string

	RedisAddr     string
	RedisPassword string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	required := []string{
		"POSTGRES_DSN",
		"POSTGRES_MAX_OPEN_CONNS",
		"POSTGRES_MAX_IDLE_CONNS",
		"POSTGRES_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"CLOUDMEDIA_CLOUD_NAME",
		"CLOUDMEDIA_API_KEY",
		"CLOUDMEDIA_API_SECRET",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("CLOUDMEDIA_UPLOAD_TIMEOUT", 300)

	return &Settings{
		PostgresDSN:      viper.GetString("POSTGRES_DSN"),
		MaxOpenConns:     viper.GetInt("POSTGRES_MAX_OPEN_CONNS"),
		MaxIdleConns:     viper.GetInt("POSTGRES_MAX_IDLE_CONNS"),
		ConnMaxLifetime:  time.Duration(viper.GetInt("POSTGRES_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:       viper.GetInt("SERVER_PORT"),
		CloudName:        viper.GetString("CLOUDMEDIA_CLOUD_NAME"),
		CloudAPIKey:      viper.GetString("CLOUDMEDIA_API_KEY"),
		CloudAPISecret:   viper.GetString("CLOUDMEDIA_API_SECRET"),
		UploadTimeout:    time.Duration(viper.GetInt("CLOUDMEDIA_UPLOAD_TIMEOUT")) * time.Second,
		AuthJWTPublicKey: viper.GetString("AUTH_JWT_PUBLIC_KEY"),
		RedisAddr:        viper.GetString("REDIS_ADDR"),
		RedisPassword:    viper.GetString("REDIS_PASSWORD"),
	}, nil
}
