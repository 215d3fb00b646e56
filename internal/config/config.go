package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Драйверы хранилища планов
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Map      MapConfig
	Planner  PlannerConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type StoreConfig struct {
	Driver    string
	Namespace string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Table           string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	MapCacheTTL   time.Duration
	StatsCacheTTL time.Duration
}

type MapConfig struct {
	Padding      float64
	DefaultWidth float64
	HitTolerance float64
}

type PlannerConfig struct {
	SessionTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	WarmWidths        []float64
	WarmPixelRatios   []float64
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает указанный env-файл; отсутствие файла не ошибка
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Store: StoreConfig{
			Driver:    strings.ToLower(v.GetString("STORE_DRIVER")),
			Namespace: v.GetString("STORE_NAMESPACE"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			Table:           v.GetString("KV_TABLE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("SQLITE_PATH"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			MapCacheTTL:   time.Duration(v.GetInt("MAP_CACHE_TTL")) * time.Second,
			StatsCacheTTL: time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Map: MapConfig{
			Padding:      v.GetFloat64("MAP_PADDING"),
			DefaultWidth: v.GetFloat64("MAP_DEFAULT_WIDTH"),
			HitTolerance: v.GetFloat64("MAP_HIT_TOLERANCE"),
		},
		Planner: PlannerConfig{
			SessionTTL: time.Duration(v.GetInt("PLANNER_SESSION_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
			WarmWidths:        parseFloats(v.GetString("WORKER_WARM_WIDTHS")),
			WarmPixelRatios:   parseFloats(v.GetString("WORKER_WARM_DPR")),
		},
	}

	if len(cfg.Worker.WarmWidths) == 0 {
		cfg.Worker.WarmWidths = []float64{800}
	}
	if len(cfg.Worker.WarmPixelRatios) == 0 {
		cfg.Worker.WarmPixelRatios = []float64{1}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("STORE_DRIVER", StoreSQLite)
	v.SetDefault("STORE_NAMESPACE", "zooPlans")
	v.SetDefault("SQLITE_PATH", "data/db/planner.db")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "zoo_planner")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KV_TABLE", "kv_store")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("MAP_CACHE_TTL", 3600)
	v.SetDefault("STATS_CACHE_TTL", 300)
	v.SetDefault("MAP_PADDING", 36)
	v.SetDefault("MAP_DEFAULT_WIDTH", 800)
	v.SetDefault("MAP_HIT_TOLERANCE", 40)
	v.SetDefault("PLANNER_SESSION_TTL", 7200)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", false)
	v.SetDefault("WORKER_CONSUMER_GROUP", "map-warmup-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreSQLite, StorePostgres:
	case StoreRedis:
		if !c.Redis.Enabled {
			return fmt.Errorf("store driver %q requires REDIS_ENABLED=true", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Namespace == "" {
		return fmt.Errorf("store namespace must not be empty")
	}
	if c.Map.HitTolerance <= 0 {
		return fmt.Errorf("map hit tolerance must be positive, got %v", c.Map.HitTolerance)
	}
	if c.Worker.Enabled && !c.Redis.Enabled {
		return fmt.Errorf("worker requires REDIS_ENABLED=true")
	}
	return nil
}

func parseFloats(s string) []float64 {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]float64, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		var f float64
		if _, err := fmt.Sscanf(trimmed, "%g", &f); err == nil && f > 0 {
			result = append(result, f)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

// DSN - строка подключения для pgx stdlib драйвера
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Addr - адрес Redis в виде host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
