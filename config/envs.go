package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP         string        // Host IP for the server
	RESTPort       int           // Port for the REST API
	GinMode        string        // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr      string        // Redis address; empty keeps sessions in memory and disables the route cache
	RedisPassword  string        // Password for Redis
	RedisDB        int           // Redis logical database
	SessionTTL     time.Duration // Idle lifetime of a shopping session
	RouteCacheTTL  time.Duration // Lifetime of a cached route
	MongoURI       string        // MongoDB connection string; empty disables the trip log
	DBName         string        // Name of the database
	MaxWaypoints   int           // Largest shopping list a route is computed for
	ComputeTimeout time.Duration // Wall-clock budget of one route computation
	SolverStrategy string        // "exhaustive" or "held-karp"
	SessionSecret  string        // Secret key for session token signing
	SessionIssuer  string        // Issuer claim for session tokens
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:      getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:  getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsIntWithDefault("REDIS_DB", 0),
		SessionTTL:     getEnvAsDurationWithDefault("SESSION_TTL", 2*time.Hour),
		RouteCacheTTL:  getEnvAsDurationWithDefault("ROUTE_CACHE_TTL", 10*time.Minute),
		MongoURI:       getEnvWithDefault("MONGO_URI", ""),
		DBName:         getEnvWithDefault("DB_NAME", "aisle"),
		MaxWaypoints:   getEnvAsIntWithDefault("MAX_WAYPOINTS", 10),
		ComputeTimeout: getEnvAsDurationWithDefault("COMPUTE_TIMEOUT", 5*time.Second),
		SolverStrategy: getEnvWithDefault("SOLVER_STRATEGY", "exhaustive"),
		SessionSecret:  mustGetEnv("SESSION_SECRET"),
		SessionIssuer:  getEnvWithDefault("SESSION_ISSUER", "aisle"),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer variable, falling back to the default when unset.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsDurationWithDefault parses a Go duration ("90s", "2h"), falling back to the default when unset.
func getEnvAsDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a duration: %v", key, err)
	}
	return value
}
