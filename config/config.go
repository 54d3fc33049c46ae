package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL        string
	MongoURL           string
	DBType             string
	Port               string
	ImagesDir          string
	JWTSecret          string
	JWTExpirationHours int
	BcryptCost         int
	Debug              bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		MongoURL:           os.Getenv("MONGO_URL"),
		DBType:             getEnv("DB_TYPE", "postgres"),
		Port:               getEnv("PORT", "8080"),
		ImagesDir:          getEnv("IMAGES_DIR", "images/books"),
		JWTSecret:          os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", 10),
		Debug:              getEnvAsBool("DEBUG", true),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "development_secret_key_change_in_production"
		log.Println("JWT_SECRET_KEY not set, using development default. Set it before deploying.")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
