package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		BidFinalizationInterval time.Duration
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

	// Bidding holds the scoring and window policy. Weights must sum to 1.
	Bidding struct {
		LeadTime            time.Duration
		MaxDetourPercentage float64
		WeightPrice         float64
		WeightVolume        float64
		WeightDistance      float64
	}

	Poller struct {
		BaseURL           string
		RouteID           string
		RefreshInterval   time.Duration
		CountdownInterval time.Duration
		RequestTimeout    time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		RouteStatusChanged RouteStatusChanged
	}

	RouteStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Bidding  Bidding
		Poller   Poller
		Kafka    Kafka
	}
)

const weightSumTolerance = 1e-9

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
	finalizationInterval, err := osGetEnvDuration("BACKGROUND_BID_FINALIZATION_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	leadTime, err := osGetEnvDuration("BIDDING_LEAD_TIME")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxDetour, err := osGetFloat("BIDDING_MAX_DETOUR_PERCENTAGE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	weightPrice, err := osGetFloat("BIDDING_WEIGHT_PRICE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	weightVolume, err := osGetFloat("BIDDING_WEIGHT_VOLUME")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	weightDistance, err := osGetFloat("BIDDING_WEIGHT_DISTANCE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollerRefresh, err := osGetEnvDuration("POLLER_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollerCountdown, err := osGetEnvDuration("POLLER_COUNTDOWN_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollerRequestTimeout, err := osGetEnvDuration("POLLER_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	routeStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ROUTE_STATUS_CHANGED_PROCESS_TIMEOUT")
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
			BidFinalizationInterval: finalizationInterval,
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
		Bidding: Bidding{
			LeadTime:            leadTime,
			MaxDetourPercentage: maxDetour,
			WeightPrice:         weightPrice,
			WeightVolume:        weightVolume,
			WeightDistance:      weightDistance,
		},
		Poller: Poller{
			BaseURL:           os.Getenv("BIDDING_API_BASE_URL"),
			RouteID:           os.Getenv("POLLER_ROUTE_ID"),
			RefreshInterval:   pollerRefresh,
			CountdownInterval: pollerCountdown,
			RequestTimeout:    pollerRequestTimeout,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				RouteStatusChanged: RouteStatusChanged{
					ProcessTimeout: routeStatusChangedTimeout,
				},
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

	if cfg.Tasks.BidFinalizationInterval == time.Duration(0) {
		return errors.New("BACKGROUND_BID_FINALIZATION_INTERVAL is required")
	}

	if cfg.Bidding.LeadTime <= time.Duration(0) {
		return errors.New("BIDDING_LEAD_TIME is required")
	}
	if cfg.Bidding.MaxDetourPercentage <= 0 {
		return errors.New("BIDDING_MAX_DETOUR_PERCENTAGE is required")
	}
	if cfg.Bidding.WeightPrice <= 0 || cfg.Bidding.WeightVolume <= 0 || cfg.Bidding.WeightDistance <= 0 {
		return errors.New("BIDDING_WEIGHT_PRICE, BIDDING_WEIGHT_VOLUME and BIDDING_WEIGHT_DISTANCE are required")
	}
	weightSum := cfg.Bidding.WeightPrice + cfg.Bidding.WeightVolume + cfg.Bidding.WeightDistance
	if math.Abs(weightSum-1.0) > weightSumTolerance {
		return fmt.Errorf("bidding weights must sum to 1, got %v", weightSum)
	}

	if cfg.Poller.BaseURL == "" {
		return errors.New("BIDDING_API_BASE_URL is required")
	}
	if cfg.Poller.RefreshInterval == time.Duration(0) {
		return errors.New("POLLER_REFRESH_INTERVAL is required")
	}
	if cfg.Poller.CountdownInterval == time.Duration(0) {
		return errors.New("POLLER_COUNTDOWN_INTERVAL is required")
	}
	if cfg.Poller.RequestTimeout == time.Duration(0) {
		return errors.New("POLLER_REQUEST_TIMEOUT is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.RouteStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ROUTE_STATUS_CHANGED_PROCESS_TIMEOUT is required")
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

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
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
