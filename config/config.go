package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"3000"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name      string `envconfig:"NAME"       default:"chiclon"`
		Timezone  string `envconfig:"TIMEZONE"`
		StaticDir string `envconfig:"STATIC_DIR"`
		CORS      struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"true"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Content-Type,Authorization"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"https://chiclon.com,http://chiclon.com,https://www.chiclon.com,http://localhost:3000,http://127.0.0.1:3000"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Booking struct {
		Backend              string   `envconfig:"BACKEND"                default:"log"`
		BusinessHours        string   `envconfig:"BUSINESS_HOURS"`
		RequiredFields       []string `envconfig:"REQUIRED_FIELDS"`
		MaxAdvanceDays       int      `envconfig:"MAX_ADVANCE_DAYS"       default:"30"`
		IgnoreDeliveryErrors bool     `envconfig:"IGNORE_DELIVERY_ERRORS"`
	} `envconfig:"BOOKING"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		Webhook struct {
			URL            string `envconfig:"URL"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		} `envconfig:"WEBHOOK"`
		Email struct {
			Provider       string `envconfig:"PROVIDER"         default:"sendgrid"`
			SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
			FromAddress    string `envconfig:"FROM_ADDRESS"`
			FromName       string `envconfig:"FROM_NAME"`
			OwnerAddress   string `envconfig:"OWNER_ADDRESS"`
			SES            struct {
				Region          string `envconfig:"REGION"`
				AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
				SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			} `envconfig:"SES"`
		} `envconfig:"EMAIL"`
		Calendar struct {
			CredentialsFile string `envconfig:"CREDENTIALS_FILE"`
			CalendarID      string `envconfig:"CALENDAR_ID"      default:"primary"`
			Timezone        string `envconfig:"TIMEZONE"`
			DurationMinutes int    `envconfig:"DURATION_MINUTES" default:"60"`
		} `envconfig:"CALENDAR"`
		Kafka struct {
			Brokers []string `envconfig:"BROKERS"`
			Topic   string   `envconfig:"TOPIC"   default:"appointments"`
			SASL    struct {
				Username string `envconfig:"USERNAME"`
				Password string `envconfig:"PASSWORD"`
			} `envconfig:"SASL"`
		} `envconfig:"KAFKA"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
