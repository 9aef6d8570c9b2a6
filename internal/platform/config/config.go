package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	DatabaseURL string
	LogLevel    string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. An empty DatabaseURL selects the in-memory store, which keeps local
// development free of external dependencies.
func FromEnv() Server {
	addr := os.Getenv("VEHICLE_API_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Server{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    logLevel,
	}
}
