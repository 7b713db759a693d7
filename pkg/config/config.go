package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP        HTTP
	Logger      Logger
	RecordStore RecordStore
	ImageHost   ImageHost
	Postgres    Postgres
	Kafka       Kafka
	Redis       Redis
	Mailer      Mailer
	Jobs        Jobs
}

type HTTP struct {
	Port         int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"20s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	// RequireToken rejects API calls without a bearer token.
	RequireToken bool `env:"HTTP_REQUIRE_TOKEN" envDefault:"false"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type RecordStore struct {
	BaseURL   string        `env:"RECORD_STORE_URL"`
	AppID     string        `env:"RECORD_STORE_APP_ID" envDefault:""`
	AccessKey string        `env:"RECORD_STORE_ACCESS_KEY" envDefault:""`
	Locale    string        `env:"RECORD_STORE_LOCALE" envDefault:"vi-VN"`
	Timezone  string        `env:"RECORD_STORE_TIMEZONE" envDefault:"SE Asia Standard Time"`
	Timeout   time.Duration `env:"RECORD_STORE_TIMEOUT" envDefault:"15s"`
}

type ImageHost struct {
	UploadURL string        `env:"IMAGE_UPLOAD_URL"`
	Timeout   time.Duration `env:"IMAGE_UPLOAD_TIMEOUT" envDefault:"30s"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Enabled      bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers      []string `env:"KAFKA_BROKERS" envDefault:"kafka:9092"`
	ConsumerID   string   `env:"KAFKA_CONSUMER_ID" envDefault:"backoffice"`
	MutatedTopic string   `env:"KAFKA_RECORD_MUTATED_TOPIC" envDefault:"record-mutated"`
}

// Redis is optional; with an empty Addr goods codes are allocated from the loaded list.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Mailer struct {
	Host       string   `env:"MAILER_HOST" envDefault:""`
	Port       int      `env:"MAILER_PORT" envDefault:"587"`
	Login      string   `env:"MAILER_LOGIN" envDefault:""`
	Password   string   `env:"MAILER_PASSWORD" envDefault:""`
	From       string   `env:"MAILER_FROM" envDefault:""`
	FromName   string   `env:"MAILER_FROM_NAME" envDefault:"Back office"`
	Recipients []string `env:"MAILER_DIGEST_RECIPIENTS" envDefault:""`
}

func (m Mailer) Enabled() bool {
	return m.Host != "" && len(m.DigestRecipients()) > 0
}

func (m Mailer) DigestRecipients() []string {
	out := make([]string, 0, len(m.Recipients))

	for _, r := range m.Recipients {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}

	return out
}

type Jobs struct {
	OverdueCareEnabled  bool          `env:"JOB_OVERDUE_CARE_ENABLED" envDefault:"true"`
	OverdueCareInterval time.Duration `env:"JOB_OVERDUE_CARE_INTERVAL" envDefault:"1h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
