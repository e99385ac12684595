package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Port             int
	Env              string
	Store            string
	Mongo            MongoConfig
	DB               DBConfig
	SQLite           SQLiteConfig
	Redis            RedisConfig
	Auth             AuthConfig
	Limiter          LimiterConfig
	CORS             CORSConfig
	OtelCollectorUrl string
}

type MongoConfig struct {
	URI      string
	Database string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type AuthConfig struct {
	Username string
	Password string
}

type LimiterConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type CORSConfig struct {
	TrustedOrigins []string
}

// parseConfig reads flags from args. Flags that the deployment scripts set
// through the environment take their defaults from it.
func parseConfig(args []string) (cfg Config, displayVersion bool, err error) {
	fs := flag.NewFlagSet("movie-catalog", flag.ContinueOnError)

	port, err := envInt("PORT", 8081)
	if err != nil {
		return cfg, false, err
	}

	fs.IntVar(&cfg.Port, "port", port, "server port")
	fs.StringVar(&cfg.Env, "env", envString("APP_ENV", "dev"), "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.Store, "store", envString("MOVIE_STORE", StoreMongo), "Movie store (mongo|postgres|sqlite)")

	fs.StringVar(&cfg.Mongo.URI, "mongo-uri", envString("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection string")
	fs.StringVar(&cfg.Mongo.Database, "mongo-db", envString("MONGO_DB", "moviecatalog"), "MongoDB database name")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	fs.StringVar(&cfg.SQLite.Path, "sqlite-path", envString("SQLITE_PATH", "moviecatalog.db"), "SQLite database file")

	fs.StringVar(&cfg.Redis.URL, "redis-url", envString("REDIS_URL", ""), "Redis address for sessions (in-memory sessions when empty)")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	fs.StringVar(&cfg.Auth.Username, "auth-username", "admin", "Login username")
	fs.StringVar(&cfg.Auth.Password, "auth-password", "admin", "Login password")

	fs.BoolVar(&cfg.Limiter.Enabled, "limiter-enabled", false, "Enable per-IP rate limiter")
	fs.Float64Var(&cfg.Limiter.RPS, "limiter-rps", 2, "Rate limiter maximum requests per second")
	fs.IntVar(&cfg.Limiter.Burst, "limiter-burst", 4, "Rate limiter maximum burst")

	cfg.CORS.TrustedOrigins = []string{"http://localhost:3000"}
	fs.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.CORS.TrustedOrigins = strings.Fields(val)
		return nil
	})

	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")

	fs.BoolVar(&displayVersion, "version", false, "Display version and exit")

	err = fs.Parse(args)
	if err != nil {
		return cfg, false, err
	}

	err = cfg.validate()
	if err != nil {
		return cfg, false, err
	}

	return cfg, displayVersion, nil
}

func (c Config) validate() error {
	switch c.Store {
	case StoreMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("-mongo-uri is required for the %s store", c.Store)
		}
	case StorePostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("-db-dsn is required for the %s store", c.Store)
		}
	case StoreSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("-sqlite-path is required for the %s store", c.Store)
		}
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}

	if c.Auth.Username == "" || c.Auth.Password == "" {
		return fmt.Errorf("login username and password must not be empty")
	}

	return nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}

	return n, nil
}
