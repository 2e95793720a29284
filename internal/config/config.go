// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables, and
// an optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// DatabaseDSN holds the PostgreSQL connection string. When empty,
	// the file-backed store is used instead.
	DatabaseDSN string

	// DataDir is the directory holding the JSON collection files in
	// file-backed mode.
	DataDir string

	// JWTSecret signs session tokens.
	JWTSecret string

	// GeminiAPIKey enables the content-generation features when set.
	GeminiAPIKey string

	// OwnerEmail and OwnerPassword seed the Owner account when the
	// users collection is empty.
	OwnerEmail    string
	OwnerPassword string

	// Config is the path to the Config file.
	Config string
}

// DefaultJWTSecret is the development fallback; a warning is logged
// when it is still in use.
const DefaultJWTSecret = "change-me-in-production"

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.DataDir, "data", "data", "directory for file-backed collections")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional .env and JSON config
// files, and environment variables. It returns a pointer to the Options
// struct containing the resolved configuration values.
func Parse() *Options {
	flag.Parse()

	// A .env file is optional; environment wins when both are set.
	_ = godotenv.Load()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		options.DataDir = dataDir
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		options.GeminiAPIKey = key
	}
	if email := os.Getenv("OWNER_EMAIL"); email != "" {
		options.OwnerEmail = email
	}
	if password := os.Getenv("OWNER_PASSWORD"); password != "" {
		options.OwnerPassword = password
	}

	if options.JWTSecret == "" {
		options.JWTSecret = DefaultJWTSecret
	}
	if options.OwnerEmail == "" {
		options.OwnerEmail = "owner@plotvista.local"
	}
	if options.OwnerPassword == "" {
		options.OwnerPassword = "changeme123"
	}

	return options
}
