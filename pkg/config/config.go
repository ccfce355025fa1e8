package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhoicas/profit-simulator/pkg/money"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Store      StoreConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Simulation SimulationConfig
	Branding   BrandingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Version string
}

// LogConfig nivel del logger: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// StoreConfig selecciona el origen de productos, cupones y condiciones de pago.
type StoreConfig struct {
	Driver string // "postgres" | "memory"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig caché de lecturas. Addr vacío deshabilita la caché.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled indica si hay un Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// JWTConfig configuración de JWT. Secret vacío deja /api sin autenticación.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host             string
	Port             int
	CORSAllowOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SimulationConfig parámetros de negocio del motor de rentabilidad.
type SimulationConfig struct {
	OperationalFeePct         decimal.Decimal // % sobre ingreso bruto
	LiquidationStockThreshold decimal.Decimal // stock a partir del cual se acepta liquidar
	HighDiscountPct           decimal.Decimal // descuento considerado riesgoso
	CurrencySymbol            string
}

// BrandingConfig colores expuestos en GET /api/config.
type BrandingConfig struct {
	PrimaryColor   string
	SecondaryColor string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, SIM_OPERATIONAL_FEE_PCT, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	feePct, err := getDecimal(v, "SIM_OPERATIONAL_FEE_PCT", "2.5")
	if err != nil {
		return nil, err
	}
	liquidation, err := getDecimal(v, "SIM_LIQUIDATION_STOCK_THRESHOLD", "50")
	if err != nil {
		return nil, err
	}
	highDiscount, err := getDecimal(v, "SIM_HIGH_DISCOUNT_PCT", "30")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "profit-simulator"),
			Version: getString(v, "APP_VERSION", "1.1.0"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:             getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:             getInt(v, "HTTP_PORT", 8080),
			CORSAllowOrigins: getString(v, "CORS_ALLOW_ORIGINS", "*"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", "postgres")),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "appareldesk"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			TTL:      time.Duration(getInt(v, "CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "profit-simulator"),
		},
		Simulation: SimulationConfig{
			OperationalFeePct:         feePct,
			LiquidationStockThreshold: liquidation,
			HighDiscountPct:           highDiscount,
			CurrencySymbol:            getString(v, "SIM_CURRENCY_SYMBOL", "₹"),
		},
		Branding: BrandingConfig{
			PrimaryColor:   getString(v, "BRAND_PRIMARY_COLOR", "#022D1E"),
			SecondaryColor: getString(v, "BRAND_SECONDARY_COLOR", "#F0EAD6"),
		},
	}

	switch cfg.Store.Driver {
	case "postgres", "memory":
	default:
		return nil, fmt.Errorf("STORE_DRIVER inválido: %q (postgres|memory)", cfg.Store.Driver)
	}
	if cfg.Simulation.OperationalFeePct.IsNegative() || cfg.Simulation.OperationalFeePct.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("SIM_OPERATIONAL_FEE_PCT fuera de rango: %s", cfg.Simulation.OperationalFeePct)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDecimal lee porcentajes como string para no pasar por float64.
func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	raw := def
	if v.IsSet(key) {
		raw = v.GetString(key)
	}
	d, err := money.Parse(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
