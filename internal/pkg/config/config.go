package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		TrackingSyncInterval time.Duration
		SweepBatchSize       int
		SweepCallDelay       time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	BlueDart struct {
		BaseURL        string
		LicenseKey     string
		LoginID        string
		TokenTTL       time.Duration
		RequestTimeout time.Duration
		Shipper        Shipper
	}

	Shipper struct {
		Name         string
		Address      string
		City         string
		State        string
		PostalCode   string
		CustomerCode string
	}

	TokenStore struct {
		// Backend: memory либо redis.
		Backend   string
		RedisAddr string
	}

	Kafka struct {
		Brokers             string
		ShipmentEventsTopic string
		Sarama              Sarama
	}

	Sarama struct {
		Version string
	}

	Config struct {
		Tasks      Tasks
		Server     HTTPServer
		Database   Database
		BlueDart   BlueDart
		TokenStore TokenStore
		Kafka      Kafka
	}
)

const (
	TokenStoreMemory = "memory"
	TokenStoreRedis  = "redis"
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	trackingSyncInterval, err := osGetEnvDuration("BACKGROUND_TRACKING_SYNC_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sweepBatchSize, err := osGetInt("TRACKING_SWEEP_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sweepCallDelay, err := osGetEnvDuration("TRACKING_SWEEP_CALL_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bluedartTokenTTL, err := osGetEnvDuration("BLUEDART_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bluedartRequestTimeout, err := osGetEnvDuration("BLUEDART_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			TrackingSyncInterval: trackingSyncInterval,
			SweepBatchSize:       sweepBatchSize,
			SweepCallDelay:       sweepCallDelay,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		BlueDart: BlueDart{
			BaseURL:        os.Getenv("BLUEDART_API_URL"),
			LicenseKey:     os.Getenv("BLUEDART_LICENSE_KEY"),
			LoginID:        os.Getenv("BLUEDART_LOGIN_ID"),
			TokenTTL:       bluedartTokenTTL,
			RequestTimeout: bluedartRequestTimeout,
			Shipper: Shipper{
				Name:         os.Getenv("BLUEDART_SHIPPER_NAME"),
				Address:      os.Getenv("BLUEDART_SHIPPER_ADDRESS"),
				City:         os.Getenv("BLUEDART_SHIPPER_CITY"),
				State:        os.Getenv("BLUEDART_SHIPPER_STATE"),
				PostalCode:   os.Getenv("BLUEDART_SHIPPER_POSTAL_CODE"),
				CustomerCode: os.Getenv("BLUEDART_CUSTOMER_CODE"),
			},
		},
		TokenStore: TokenStore{
			Backend:   os.Getenv("TOKEN_STORE_BACKEND"),
			RedisAddr: os.Getenv("TOKEN_STORE_REDIS_ADDR"),
		},
		Kafka: Kafka{
			Brokers:             os.Getenv("KAFKA_BROKERS"),
			ShipmentEventsTopic: os.Getenv("KAFKA_SHIPMENT_EVENTS_TOPIC"),
			Sarama: Sarama{
				Version: os.Getenv("KAFKA_SARAMA_VERSION"),
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.TrackingSyncInterval == time.Duration(0) {
		return errors.New("BACKGROUND_TRACKING_SYNC_INTERVAL is required")
	}
	if cfg.Tasks.SweepBatchSize == 0 {
		return errors.New("TRACKING_SWEEP_BATCH_SIZE is required")
	}

	if cfg.BlueDart.BaseURL == "" {
		return errors.New("BLUEDART_API_URL is required")
	}
	if cfg.BlueDart.LicenseKey == "" {
		return errors.New("BLUEDART_LICENSE_KEY is required")
	}
	if cfg.BlueDart.LoginID == "" {
		return errors.New("BLUEDART_LOGIN_ID is required")
	}
	if cfg.BlueDart.TokenTTL == time.Duration(0) {
		return errors.New("BLUEDART_TOKEN_TTL is required")
	}
	if cfg.BlueDart.RequestTimeout == time.Duration(0) {
		return errors.New("BLUEDART_REQUEST_TIMEOUT is required")
	}
	if cfg.BlueDart.Shipper.Name == "" {
		return errors.New("BLUEDART_SHIPPER_NAME is required")
	}
	if cfg.BlueDart.Shipper.Address == "" {
		return errors.New("BLUEDART_SHIPPER_ADDRESS is required")
	}
	if cfg.BlueDart.Shipper.City == "" {
		return errors.New("BLUEDART_SHIPPER_CITY is required")
	}
	if cfg.BlueDart.Shipper.State == "" {
		return errors.New("BLUEDART_SHIPPER_STATE is required")
	}
	if cfg.BlueDart.Shipper.PostalCode == "" {
		return errors.New("BLUEDART_SHIPPER_POSTAL_CODE is required")
	}
	if cfg.BlueDart.Shipper.CustomerCode == "" {
		return errors.New("BLUEDART_CUSTOMER_CODE is required")
	}

	switch cfg.TokenStore.Backend {
	case TokenStoreMemory:
	case TokenStoreRedis:
		if cfg.TokenStore.RedisAddr == "" {
			return errors.New("TOKEN_STORE_REDIS_ADDR is required for redis backend")
		}
	default:
		return fmt.Errorf("TOKEN_STORE_BACKEND must be %q or %q", TokenStoreMemory, TokenStoreRedis)
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.ShipmentEventsTopic == "" {
		return errors.New("KAFKA_SHIPMENT_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
