package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type EmailDelivery string

const (
	EmailDeliverySES      EmailDelivery = "ses"
	EmailDeliveryRabbitmq EmailDelivery = "rabbitmq"
	EmailDeliveryMailbox  EmailDelivery = "mailbox"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Secret     string `env:"SECRET,notEmpty"`
	Port       uint16 `env:"PORT" envDefault:"9090"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	RedisURL       string `env:"REDIS_URL,notEmpty"`

	RabbitmqURL        string `env:"RABBITMQ_URL"`
	RabbitmqEmailQueue string `env:"RABBITMQ_EMAIL_QUEUE" envDefault:"email_requested"`

	EmailDelivery EmailDelivery `env:"EMAIL_DELIVERY" envDefault:"ses"`

	BcryptHasherCost      int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	ConfirmationTokenTTL  time.Duration `env:"CONFIRMATION_TOKEN_TTL" envDefault:"24h"`
	PasswordResetTokenTTL time.Duration `env:"PASSWORD_RESET_TOKEN_TTL" envDefault:"10m"`

	AwsRegion                     string  `env:"AWS_REGION" envDefault:"eu-central-1"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER"`
	AwsEmailConfirmationTemplate  string  `env:"AWS_EMAIL_CONFIRMATION_TEMPLATE" envDefault:"onboarding-confirmation"`
	AwsEmailConfirmationUrl       url.URL `env:"AWS_EMAIL_CONFIRMATION_URL" envDefault:"http://localhost:3000/confirm"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"onboarding-password-reset"`
	AwsEmailPasswordResetBaseUrl  url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL" envDefault:"http://localhost:3000/password-reset"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	SentryDsn      string   `env:"SENTRY_DSN"`

	SignUpLimitPerHour             uint16 `env:"SIGN_UP_LIMIT_PER_HOUR" envDefault:"5"`
	ConfirmationResendLimitPerHour uint16 `env:"CONFIRMATION_RESEND_LIMIT_PER_HOUR" envDefault:"5"`
	PasswordResetLimitPerHour      uint16 `env:"PASSWORD_RESET_LIMIT_PER_HOUR" envDefault:"5"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.EmailDelivery {
	case EmailDeliverySES, EmailDeliveryMailbox:
	case EmailDeliveryRabbitmq:
		if c.RabbitmqURL == "" {
			return fmt.Errorf("RABBITMQ_URL must be set when EMAIL_DELIVERY is %q", c.EmailDelivery)
		}
	default:
		return fmt.Errorf("invalid EMAIL_DELIVERY value: %q", c.EmailDelivery)
	}
	if c.EmailDelivery == EmailDeliveryMailbox && !c.IsTestMode {
		return fmt.Errorf("EMAIL_DELIVERY %q is allowed in test mode only", c.EmailDelivery)
	}
	if c.ConfirmationTokenTTL <= 0 {
		return fmt.Errorf("CONFIRMATION_TOKEN_TTL must be positive")
	}
	if c.PasswordResetTokenTTL <= 0 {
		return fmt.Errorf("PASSWORD_RESET_TOKEN_TTL must be positive")
	}
	return nil
}
