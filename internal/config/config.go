package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	SheetsSync SheetsSync `mapstructure:",squash"`
	Reporting  Reporting  `mapstructure:",squash"`
	CORS       CORS       `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

// Sheets points at the sales spreadsheet and the PPC spreadsheet.
// Credentials is either a service-account JSON document or a path to one.
type Sheets struct {
	Credentials      string   `mapstructure:"google_application_credentials"`
	SalesURL         string   `mapstructure:"sheets_sales_url"`
	PPCURL           string   `mapstructure:"sheets_ppc_url"`
	SalesWorksheets  []string `mapstructure:"sheets_sales_worksheets"`
	TargetsWorksheet string   `mapstructure:"sheets_targets_worksheet"`
	PPCCountries     []string `mapstructure:"sheets_ppc_countries"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type SheetsSync struct {
	CronSchedule      string `mapstructure:"sheets_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"sheets_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"sheets_sync_enabled"`
	RunOnStart        bool   `mapstructure:"sheets_sync_run_on_start"`
}

type Reporting struct {
	AmazonChannelFilter string `mapstructure:"reporting_amazon_channel_filter"`
	PPCDefaultDays      int    `mapstructure:"reporting_ppc_default_days"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_TIMEZONE", "Europe/London")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "service_account.json")
	viper.SetDefault("SHEETS_SALES_URL", "")
	viper.SetDefault("SHEETS_PPC_URL", "")
	viper.SetDefault("SHEETS_SALES_WORKSHEETS", "2023,2024,2025")
	viper.SetDefault("SHEETS_TARGETS_WORKSHEET", "TARGETS")
	viper.SetDefault("SHEETS_PPC_COUNTRIES", "US,UK,CA,MX,DE,ES,IT,FR")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Every 5 hours, on the hour.
	viper.SetDefault("SHEETS_SYNC_CRON", "0 */5 * * *")
	viper.SetDefault("SHEETS_SYNC_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("SHEETS_SYNC_ENABLED", false)
	viper.SetDefault("SHEETS_SYNC_RUN_ON_START", false)

	viper.SetDefault("REPORTING_AMAZON_CHANNEL_FILTER", "amazon")
	viper.SetDefault("REPORTING_PPC_DEFAULT_DAYS", 30)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("config: using environment loaded by godotenv, viper could not read .env: ", err)
	} else {
		logrus.Info("config: .env read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize derives the values that are not read directly from the environment.
func (c *Config) finalize() error {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("config: invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	c.App.Location = loc

	if c.SheetsSync.MaxConcurrentJobs < 1 {
		c.SheetsSync.MaxConcurrentJobs = 1
	}
	if c.Reporting.PPCDefaultDays < 1 {
		c.Reporting.PPCDefaultDays = 30
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("config: trying .env at ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Warn("config: no .env file found")
}
