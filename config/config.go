package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/op/go-logging"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

var log = logging.MustGetLogger("config")

// Config holds every setting shared by the services. Each service reads only
// the fields it needs.
type Config struct {
	HTTPAddr       string        `mapstructure:"http_addr"`
	LogLevel       string        `mapstructure:"log_level"`
	Storage        string        `mapstructure:"storage"`
	DBHost         string        `mapstructure:"db_host"`
	DBPort         string        `mapstructure:"db_port"`
	DBName         string        `mapstructure:"db_name"`
	DBUser         string        `mapstructure:"db_user"`
	DBPassword     string        `mapstructure:"db_password"`
	RedisHost      string        `mapstructure:"redis_host"`
	RedisPort      string        `mapstructure:"redis_port"`
	KafkaBroker    string        `mapstructure:"kafka_broker"`
	OrderTopic     string        `mapstructure:"order_topic"`
	ConsumerGroup  string        `mapstructure:"consumer_group"`
	RabbitMQURL    string        `mapstructure:"rabbitmq_url"`
	NoticeExchange string        `mapstructure:"notice_exchange"`
	PaymentDelay   time.Duration `mapstructure:"payment_delay"`
	PublicBaseURL  string        `mapstructure:"public_base_url"`
	RestaurantURL  string        `mapstructure:"restaurant_svc_url"`
	AggURL         string        `mapstructure:"agg_svc_url"`
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var defaults = map[string]interface{}{
	"log_level":          "INFO",
	"storage":            StorageMemory,
	"db_host":            "localhost",
	"db_port":            "5432",
	"db_name":            "restaurant",
	"db_user":            "postgres",
	"db_password":        "",
	"redis_host":         "localhost",
	"redis_port":         "6379",
	"kafka_broker":       "",
	"order_topic":        "orders",
	"consumer_group":     "agg-svc",
	"rabbitmq_url":       "",
	"notice_exchange":    "checkout_notices",
	"payment_delay":      3 * time.Second,
	"public_base_url":    "http://localhost:8080",
	"restaurant_svc_url": "http://localhost:8081",
	"agg_svc_url":        "http://localhost:8083",
}

// listenAddrs are the default ports of each service.
var listenAddrs = map[string]string{
	"api-gateway":    ":8080",
	"restaurant-svc": ":8081",
	"agg-svc":        ":8083",
}

// Load reads defaults, then the optional file named by CONFIG_FILE, then the
// environment. Environment variables win. service picks the default listen
// address.
func Load(service string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	addr, ok := listenAddrs[service]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", service)
	}
	v.SetDefault("http_addr", addr)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	switch cfg.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	if cfg.PaymentDelay < 0 {
		return nil, fmt.Errorf("payment_delay must not be negative")
	}

	return &cfg, nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

// RedisAddr returns host:port for go-redis.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// KafkaEnabled reports whether a broker is configured.
func (c *Config) KafkaEnabled() bool {
	return c.KafkaBroker != ""
}

// NoticesEnabled reports whether checkout notices go to RabbitMQ.
func (c *Config) NoticesEnabled() bool {
	return c.RabbitMQURL != ""
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	return client
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.OrderTopic,
		GroupID: cfg.ConsumerGroup,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.OrderTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

// MustInitRabbit dials RabbitMQ and declares the durable topic exchange
// checkout notices are published on.
func MustInitRabbit(cfg *Config) (*amqp.Connection, *amqp.Channel) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		log.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}

	err = ch.ExchangeDeclare(
		cfg.NoticeExchange,
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		conn.Close()
		log.Fatalf("Failed to declare exchange %s: %v", cfg.NoticeExchange, err)
	}

	return conn, ch
}
