package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the business fallback constants the calculation
// engine uses when an assignment does not carry explicit values.
type PayrollConfig struct {
	DefaultHourlyRateCost decimal.Decimal
	SellRateMargin        decimal.Decimal
	MealAllowance         decimal.Decimal
	MealAllowanceMinHours float64
	TravelAllowance       decimal.Decimal
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffdeck"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll fallback constants
	payrollCfg, err := loadPayrollConfig()
	if err != nil {
		return nil, err
	}
	config.Payroll = payrollCfg

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	cfg := PayrollConfig{}

	var err error
	if cfg.DefaultHourlyRateCost, err = getEnvDecimal("PAYROLL_DEFAULT_HOURLY_RATE", "15"); err != nil {
		return cfg, fmt.Errorf("invalid PAYROLL_DEFAULT_HOURLY_RATE: %w", err)
	}
	if cfg.SellRateMargin, err = getEnvDecimal("PAYROLL_SELL_RATE_MARGIN", "1.667"); err != nil {
		return cfg, fmt.Errorf("invalid PAYROLL_SELL_RATE_MARGIN: %w", err)
	}
	if cfg.MealAllowance, err = getEnvDecimal("PAYROLL_MEAL_ALLOWANCE", "10"); err != nil {
		return cfg, fmt.Errorf("invalid PAYROLL_MEAL_ALLOWANCE: %w", err)
	}
	if cfg.TravelAllowance, err = getEnvDecimal("PAYROLL_TRAVEL_ALLOWANCE", "0"); err != nil {
		return cfg, fmt.Errorf("invalid PAYROLL_TRAVEL_ALLOWANCE: %w", err)
	}

	minHours, err := strconv.ParseFloat(getEnv("PAYROLL_MEAL_ALLOWANCE_MIN_HOURS", "5"), 64)
	if err != nil {
		return cfg, fmt.Errorf("invalid PAYROLL_MEAL_ALLOWANCE_MIN_HOURS: %w", err)
	}
	cfg.MealAllowanceMinHours = minHours

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	return decimal.NewFromString(getEnv(key, fallback))
}
