package config

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Адреса бэкенда по умолчанию для поддерживаемых платформ.
const (
	// iOS-симулятор делит сетевой стек с хостом, поэтому loopback доступен напрямую.
	IOSBaseURL = "http://localhost:3000"
	// Android-эмулятор видит loopback хоста через NAT-шлюз 10.0.2.2.
	AndroidBaseURL = "http://10.0.2.2:3000"
	// FallbackBaseURL используется для любых прочих платформ.
	FallbackBaseURL = "http://localhost:3000"
)

// Backend storage kinds for the client session store.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	// Server-side settings
	ListenAddr  string        `env:"LISTEN_ADDR"`
	DatabaseDSN string        `env:"DATABASE_URI"`
	SQLitePath  string        `env:"SQLITE_PATH"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`

	// Shared settings
	LogLevel string `env:"LOG_LEVEL"`

	// Client-side settings
	APIURL         string        `env:"API_URL"`
	Platform       string        `env:"FITHUB_PLATFORM"`
	ServerURL      string        `env:"-"` // resolved once in NewConfig
	StoreBackend   string        `env:"STORE_BACKEND"`
	StoreDir       string        `env:"STORE_DIR"`
	ClientDBPath   string        `env:"CLIENT_DB_PATH"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	Version        bool          `env:"-"` // show client version and exit (flag only)
}

// ResolveBaseURL выбирает адрес бэкенда: непустой override как есть, иначе адрес по платформе.
// Доступность адреса не проверяется.
func ResolveBaseURL(override, platform string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "ios":
		return IOSBaseURL
	case "android":
		return AndroidBaseURL
	default:
		return FallbackBaseURL
	}
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// Server flags
	flag.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address to listen on (server)")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Postgres DSN (server); SQLite is used when empty")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret used to sign bearer tokens (server)")
	// Shared flags
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	// Client flags
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "backend base URL override, e.g. http://192.168.1.5:3000")
	flag.StringVar(&cfg.Platform, "platform", cfg.Platform, "target platform used to pick the default backend: ios|android|other")
	flag.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "session store backend: file|sqlite|memory")
	flag.StringVar(&cfg.StoreDir, "store-dir", cfg.StoreDir, "directory for the file session store")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "HTTP request timeout, 0 disables it")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "localhost:3000"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.Platform == "" {
		cfg.Platform = runtime.GOOS
	}
	cfg.ServerURL = ResolveBaseURL(cfg.APIURL, cfg.Platform)

	switch cfg.StoreBackend {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		cfg.StoreBackend = StoreFile
	}

	home, _ := os.UserConfigDir()
	if cfg.StoreDir == "" {
		cfg.StoreDir = filepath.Join(home, "FitHub")
	}
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(cfg.StoreDir, "client.sqlite")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "fithub.db"
	}
}
