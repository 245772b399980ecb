package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Upload    UploadConfig
	Scheduler SchedulerConfig
	Sheets    SheetsConfig
	Store     StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	LogLevel  string
	PublicURL string // URL base de la tienda (sitemap)
}

// DBConfig configuración de MongoDB.
type DBConfig struct {
	Driver          string // mongo | memory
	URI             string
	Name            string
	UseTransactions bool // false en servidores standalone sin replica set
	TimeoutSeconds  int
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret             string
	Expiration         int // minutos, personal de back-office
	CustomerExpiration int // minutos, clientes de la tienda
	Issuer             string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UploadConfig configuración del host de imágenes externo.
type UploadConfig struct {
	APIKey   string
	Endpoint string
	MaxBytes int
}

// SchedulerConfig tareas programadas (expresiones cron de 5 campos).
type SchedulerConfig struct {
	Enabled            bool
	LowStockCron       string
	CashbookExportCron string
	Timezone           string
}

// SheetsConfig exportación opcional del libro de caja a Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	CashbookRange   string
}

// Enabled indica si la exportación a Sheets está configurada.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// StoreConfig membrete usado en los PDF.
type StoreConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, MONGODB_URI, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "furnistore-api"),
			LogLevel:  getString(v, "LOG_LEVEL", "info"),
			PublicURL: strings.TrimRight(getString(v, "APP_PUBLIC_URL", "http://localhost:3000"), "/"),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(getString(v, "DB_DRIVER", DriverMongo)),
			URI:             getString(v, "MONGODB_URI", "mongodb://localhost:27017"),
			Name:            getString(v, "MONGODB_DB_NAME", "furnistore"),
			UseTransactions: getBool(v, "MONGODB_USE_TRANSACTIONS", true),
			TimeoutSeconds:  getInt(v, "MONGODB_TIMEOUT_SECONDS", 10),
		},
		JWT: JWTConfig{
			Secret:             getString(v, "JWT_SECRET", ""),
			Expiration:         getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			CustomerExpiration: getInt(v, "JWT_CUSTOMER_EXPIRATION_MINUTES", 7*24*60),
			Issuer:             getString(v, "JWT_ISSUER", "furnistore-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Upload: UploadConfig{
			APIKey:   getString(v, "UPLOAD_API_KEY", ""),
			Endpoint: getString(v, "UPLOAD_ENDPOINT", "https://freeimage.host/api/1/upload"),
			MaxBytes: getInt(v, "UPLOAD_MAX_BYTES", 5*1024*1024),
		},
		Scheduler: SchedulerConfig{
			Enabled:            getBool(v, "SCHEDULER_ENABLED", false),
			LowStockCron:       getString(v, "SCHEDULER_LOW_STOCK_CRON", "0 8 * * *"),
			CashbookExportCron: getString(v, "SCHEDULER_CASHBOOK_EXPORT_CRON", "30 0 * * *"),
			Timezone:           getString(v, "SCHEDULER_TIMEZONE", "Asia/Ho_Chi_Minh"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: getString(v, "GOOGLE_CREDENTIALS_PATH", ""),
			SpreadsheetID:   getString(v, "SHEETS_SPREADSHEET_ID", ""),
			CashbookRange:   getString(v, "SHEETS_CASHBOOK_RANGE", "Cashbook!A:H"),
		},
		Store: StoreConfig{
			Name:    getString(v, "STORE_NAME", "Furnistore"),
			Address: getString(v, "STORE_ADDRESS", ""),
			Phone:   getString(v, "STORE_PHONE", ""),
			Email:   getString(v, "STORE_EMAIL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate comprueba las combinaciones que impiden arrancar.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("config: DB_DRIVER desconocido %q", c.DB.Driver)
	}
	if c.JWT.Secret == "" && c.App.Env != "development" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio fuera de development")
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("config: HTTP_PORT inválido")
	}
	return nil
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
			n, err := strconv.Atoi(v.GetString(key))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
