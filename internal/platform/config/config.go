// Package config carga la configuración desde env (y un .env opcional).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

const (
	DBDriverMemory   = "memory"
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"

	UploadBackendLocal = "local"
	UploadBackendGCS   = "gcs"
)

type Config struct {
	Port string

	// DBDriver: memory | sqlite | postgres.
	// Si no viene: postgres cuando hay DB_DSN, si no sqlite (modo desarrollo).
	DBDriver   string
	DBDSN      string
	SQLitePath string

	UploadBackend      string
	UploadDir          string
	GCSBucket          string
	GCSPublicBaseURL   string
	GCSCredentialsFile string
	MaxUploadMB        int64

	CORSOrigins []string

	// ContactRPS en 0 deja /api/messages sin limitador.
	ContactRPS   float64
	ContactBurst int

	LogLevel  string
	LogFormat string
	AppName   string

	SeedDataDir string
}

var defaults = map[string]any{
	"PORT":           "3000",
	"SQLITE_PATH":    "data/bordoodles.sqlite",
	"UPLOAD_BACKEND": UploadBackendLocal,
	"UPLOAD_DIR":     "public",
	"MAX_UPLOAD_MB":  10,
	"CORS_ORIGINS":   "*",
	"CONTACT_RPS":    0.0,
	"CONTACT_BURST":  5,
	"LOG_LEVEL":      "info",
	"LOG_FORMAT":     "text",
	"APP_NAME":       "bordoodles-api",
	"SEED_DATA_DIR":  "data/seed",
}

// Load lee .env (si existe; ENV_FILE permite otro path) y luego las env vars.
// Las env vars del proceso tienen prioridad sobre el .env.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	cfg := Config{
		Port:               strings.TrimSpace(v.GetString("PORT")),
		DBDriver:           strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBDSN:              strings.TrimSpace(v.GetString("DB_DSN")),
		SQLitePath:         strings.TrimSpace(v.GetString("SQLITE_PATH")),
		UploadBackend:      strings.ToLower(strings.TrimSpace(v.GetString("UPLOAD_BACKEND"))),
		UploadDir:          strings.TrimSpace(v.GetString("UPLOAD_DIR")),
		GCSBucket:          strings.TrimSpace(v.GetString("GCS_BUCKET")),
		GCSPublicBaseURL:   strings.TrimSpace(v.GetString("GCS_PUBLIC_BASE_URL")),
		GCSCredentialsFile: strings.TrimSpace(v.GetString("GCS_CREDENTIALS_FILE")),
		MaxUploadMB:        v.GetInt64("MAX_UPLOAD_MB"),
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
		ContactRPS:         v.GetFloat64("CONTACT_RPS"),
		ContactBurst:       v.GetInt("CONTACT_BURST"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		AppName:            v.GetString("APP_NAME"),
		SeedDataDir:        strings.TrimSpace(v.GetString("SEED_DATA_DIR")),
	}

	if cfg.DBDriver == "" {
		if cfg.DBDSN != "" {
			cfg.DBDriver = DBDriverPostgres
		} else {
			cfg.DBDriver = DBDriverSQLite
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: PORT required")
	}

	switch c.DBDriver {
	case DBDriverMemory:
	case DBDriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("config: SQLITE_PATH required for sqlite")
		}
	case DBDriverPostgres:
		if c.DBDSN == "" {
			return errors.New("config: DB_DSN required for postgres")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.UploadBackend {
	case UploadBackendLocal:
		if c.UploadDir == "" {
			return errors.New("config: UPLOAD_DIR required for local uploads")
		}
	case UploadBackendGCS:
		if c.GCSBucket == "" {
			return errors.New("config: GCS_BUCKET required for gcs uploads")
		}
	default:
		return fmt.Errorf("config: unsupported UPLOAD_BACKEND %q", c.UploadBackend)
	}

	if c.MaxUploadMB <= 0 {
		return errors.New("config: MAX_UPLOAD_MB must be > 0")
	}
	if c.ContactRPS < 0 {
		return errors.New("config: CONTACT_RPS must be >= 0")
	}
	if c.ContactRPS > 0 && c.ContactBurst <= 0 {
		return errors.New("config: CONTACT_BURST must be > 0 when CONTACT_RPS is set")
	}
	return nil
}

// ContactLimiter devuelve el limitador del formulario de contacto, o nil si está deshabilitado.
func (c Config) ContactLimiter() *rate.Limiter {
	if c.ContactRPS <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.ContactRPS), c.ContactBurst)
}

// DSN devuelve el DSN efectivo según el driver.
func (c Config) DSN() string {
	if c.DBDriver == DBDriverSQLite {
		return c.SQLitePath
	}
	return c.DBDSN
}

func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func loadDotEnv() error {
	file := ".env"
	explicit := false
	if v := strings.TrimSpace(os.Getenv("ENV_FILE")); v != "" {
		file = v
		explicit = true
	}

	err := godotenv.Load(file)
	if err == nil {
		return nil
	}
	// .env es opcional salvo que se haya pedido explícitamente
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	return fmt.Errorf("config: load %s: %w", file, err)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
