package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment holds process settings read from the environment.
type Environment struct {
	Port           string
	DBDriver       string
	DBURL          string
	AllowedOrigins []string
	LogMode        string
	SeedFile       string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// Load reads the environment, loading a .env file first when not running
// on the hosted environment. A missing .env file is not an error.
func Load() (Environment, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return Environment{}, err
		}
	}
	return FromLookup(os.Getenv), nil
}

// FromLookup builds an Environment from a getenv-style function.
func FromLookup(getenv func(string) string) Environment {
	env := Environment{
		Port:     getenv("PORT"),
		DBDriver: strings.ToLower(strings.TrimSpace(getenv("DB_DRIVER"))),
		DBURL:    getenv("DB_URL"),
		LogMode:  getenv("LOG_MODE"),
		SeedFile: strings.TrimSpace(getenv("SEED_FILE")),
	}
	if env.Port == "" {
		env.Port = "8080" // fallback port for local development
	}
	if env.DBDriver == "" {
		env.DBDriver = DriverSQLite
	}
	if env.DBURL == "" && env.DBDriver == DriverSQLite {
		env.DBURL = "flashcards.db"
	}
	if env.LogMode == "" {
		env.LogMode = "dev"
	}

	for _, origin := range strings.Split(getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			env.AllowedOrigins = append(env.AllowedOrigins, origin)
		}
	}
	if len(env.AllowedOrigins) == 0 {
		env.AllowedOrigins = defaultOrigins
	}
	return env
}

func (e Environment) ServerAddr() string {
	return "0.0.0.0:" + e.Port
}
