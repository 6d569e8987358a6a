// Package config reads service settings from flags, MARKET_* environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MARKET"

// Backend choices
const (
	StoreMemory    = "memory"
	StoreMongo     = "mongo"
	StoreFirestore = "firestore"

	AuthHeader   = "header"
	AuthFirebase = "firebase"

	ObjectsMemory = "memory"
	ObjectsS3     = "s3"

	LockMemory = "memory"
	LockRedis  = "redis"
)

type MongoConfig struct {
	URI      string
	Database string
}

type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
}

type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	PublicBaseURL   string
	AccessKeyID     string
	SecretAccessKey string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LockConfig struct {
	Backend string
	Expiry  time.Duration
	Tries   int
}

// Config is the full runtime configuration of the service
type Config struct {
	ServerAddr string
	LogLevel   string

	Store    string
	Mongo    MongoConfig
	Firebase FirebaseConfig

	Auth string

	Objects       string
	S3            S3Config
	MaxImageBytes int64

	Lock  LockConfig
	Redis RedisConfig

	BidRateLimit float64
	BidRateBurst int

	Categories []string
}

// DefaultCategories seed the Category collection on first start
var DefaultCategories = []string{"Handicrafts", "Jewellery", "Pottery", "Textiles", "Woodwork"}

// LoadDotEnv loads path into the environment; a missing file is not an error
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load parses args (without the program name) and the environment
func Load(args []string) (Config, error) {
	flags := pflag.NewFlagSet("marketplace-bidding", pflag.ContinueOnError)

	// server config
	flags.String("server-addr", ":8080", "HTTP listen address")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	// document store
	flags.String("store", StoreMemory, "document store: memory, mongo or firestore")
	flags.String("mongo-uri", "mongodb://localhost:27017", "")
	flags.String("mongo-database", "marketplace", "")
	flags.String("firebase-project-id", "", "")
	flags.String("firebase-credentials-file", "", "service account JSON; empty uses application default credentials")

	// identity
	flags.String("auth", AuthHeader, "identity source: header or firebase")

	// object store
	flags.String("objects", ObjectsMemory, "object store: memory or s3")
	flags.String("s3-endpoint", "", "")
	flags.String("s3-region", "auto", "")
	flags.String("s3-bucket", "", "")
	flags.String("s3-public-base-url", "http://localhost:8080/objects", "")
	flags.String("s3-access-key-id", "", "")
	flags.String("s3-secret-access-key", "", "")
	flags.Int64("max-image-bytes", 5<<20, "largest accepted posting image")

	// locking
	flags.String("lock", LockMemory, "accept lock: memory or redis")
	flags.String("redis-addr", "localhost:6379", "")
	flags.String("redis-password", "", "")
	flags.Int("redis-db", 0, "")
	flags.Duration("lock-expiry", 8*time.Second, "lock TTL, renewed every third of it while held")
	flags.Int("lock-tries", 32, "")

	// bid rate limit
	flags.Float64("bid-rate-limit", 1, "bids per second allowed per user")
	flags.Int("bid-rate-burst", 3, "")

	flags.StringSlice("categories", DefaultCategories, "categories seeded at startup")

	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cfg := Config{
		ServerAddr: v.GetString("server-addr"),
		LogLevel:   v.GetString("log-level"),
		Store:      v.GetString("store"),
		Mongo: MongoConfig{
			URI:      v.GetString("mongo-uri"),
			Database: v.GetString("mongo-database"),
		},
		Firebase: FirebaseConfig{
			ProjectID:       v.GetString("firebase-project-id"),
			CredentialsFile: v.GetString("firebase-credentials-file"),
		},
		Auth:    v.GetString("auth"),
		Objects: v.GetString("objects"),
		S3: S3Config{
			Endpoint:        v.GetString("s3-endpoint"),
			Region:          v.GetString("s3-region"),
			Bucket:          v.GetString("s3-bucket"),
			PublicBaseURL:   v.GetString("s3-public-base-url"),
			AccessKeyID:     v.GetString("s3-access-key-id"),
			SecretAccessKey: v.GetString("s3-secret-access-key"),
		},
		MaxImageBytes: v.GetInt64("max-image-bytes"),
		Lock: LockConfig{
			Backend: v.GetString("lock"),
			Expiry:  v.GetDuration("lock-expiry"),
			Tries:   v.GetInt("lock-tries"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis-addr"),
			Password: v.GetString("redis-password"),
			DB:       v.GetInt("redis-db"),
		},
		BidRateLimit: v.GetFloat64("bid-rate-limit"),
		BidRateBurst: v.GetInt("bid-rate-burst"),
		Categories:   splitList(v.GetStringSlice("categories")),
	}
	return cfg, cfg.Validate()
}

// splitList accepts both repeated values and a comma separated environment value
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate rejects unknown backends and settings a chosen backend cannot run without
func (c Config) Validate() error {
	var errs []error

	if c.ServerAddr == "" {
		errs = append(errs, errors.New("server-addr is required"))
	}

	switch c.Store {
	case StoreMemory:
	case StoreMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			errs = append(errs, errors.New("store=mongo needs mongo-uri and mongo-database"))
		}
	case StoreFirestore:
		if c.Firebase.ProjectID == "" {
			errs = append(errs, errors.New("store=firestore needs firebase-project-id"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store %q", c.Store))
	}

	switch c.Auth {
	case AuthHeader:
	case AuthFirebase:
		if c.Firebase.ProjectID == "" {
			errs = append(errs, errors.New("auth=firebase needs firebase-project-id"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown auth %q", c.Auth))
	}

	switch c.Objects {
	case ObjectsMemory:
	case ObjectsS3:
		if c.S3.Bucket == "" || c.S3.PublicBaseURL == "" {
			errs = append(errs, errors.New("objects=s3 needs s3-bucket and s3-public-base-url"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown objects %q", c.Objects))
	}

	switch c.Lock.Backend {
	case LockMemory:
	case LockRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("lock=redis needs redis-addr"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown lock %q", c.Lock.Backend))
	}

	if c.MaxImageBytes <= 0 {
		errs = append(errs, errors.New("max-image-bytes must be positive"))
	}
	if c.BidRateLimit <= 0 || c.BidRateBurst <= 0 {
		errs = append(errs, errors.New("bid-rate-limit and bid-rate-burst must be positive"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
