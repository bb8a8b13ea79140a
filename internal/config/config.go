package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-required:"true"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-required:"true"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// Mongo holds the document store with kitchens and their menus.
type Mongo struct {
	URI      string `yaml:"MONGO_URI" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `yaml:"MONGO_DATABASE" env:"MONGO_DATABASE" env-default:"cloud_kitchen"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`

	// addresses or CIDR ranges whose X-Forwarded-For header is believed
	TrustedProxies []string `yaml:"TRUSTED_PROXIES" env:"TRUSTED_PROXIES" env-separator:","`
}

type Stripe struct {
	SecretKey          string   `yaml:"STRIPE_SECRET_KEY" env:"STRIPE_SECRET_KEY" env-default:""`
	WebhookSecret      string   `yaml:"STRIPE_WEBHOOK_SECRET" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
	ClientURL          string   `yaml:"CLIENT_URL" env:"CLIENT_URL" env-default:"http://localhost:5173"`
	Currency           string   `yaml:"STRIPE_CURRENCY" env:"STRIPE_CURRENCY" env-default:"pkr"`
	PaymentMethodTypes []string `yaml:"STRIPE_PAYMENT_METHODS" env:"STRIPE_PAYMENT_METHODS" env-default:"card"`
	ProductDescription string   `yaml:"PRODUCT_DESCRIPTION" env:"STRIPE_PRODUCT_DESCRIPTION" env-default:"Unlock premium benefits and elevate your Cloud Kitchen experience today! Enjoy exclusive features and seamless management for your kitchen."`
	ProductImage       string   `yaml:"PRODUCT_IMAGE" env:"STRIPE_PRODUCT_IMAGE" env-default:"https://images.unsplash.com/vector-1739647326753-fe8c6e6e81e0?w=500&auto=format&fit=crop&q=60"`
}

// KitchenAPI is the remote the menu fetcher reads from.
type KitchenAPI struct {
	BaseURL     string        `yaml:"API_BASE_URL" env:"API_BASE_URL" env-default:"http://localhost:8080"`
	ViewIdleTTL time.Duration `yaml:"VIEW_IDLE_TTL" env:"MENU_VIEW_IDLE_TTL" env-default:"30m"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@cloudkitchen.local"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Cloud Kitchen"`
}

type Kafka struct {
	Brokers       []string `yaml:"BROKERS" env:"KAFKA_BROKERS"`
	CheckoutTopic string   `yaml:"CHECKOUT_TOPIC" env:"KAFKA_CHECKOUT_TOPIC" env-default:"checkout.completed"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"cloud-kitchen"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	MenuTTL    time.Duration `yaml:"menu_ttl" env:"CACHE_MENU_TTL" env-default:"2m"`
	CartTTL    time.Duration `yaml:"cart_ttl" env:"CACHE_CART_TTL" env-default:"720h"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Mongo        Mongo        `yaml:"mongo"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Stripe       Stripe       `yaml:"stripe"`
	KitchenAPI   KitchenAPI   `yaml:"kitchen_api"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Kafka        Kafka        `yaml:"kafka"`
	Security     Security     `yaml:"security"`
	Otel         Otel         `yaml:"otel"`
	Cache        CacheConfig  `yaml:"cache"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = defaultConfigPath
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
