package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Demo mode runs without DynamoDB and Kafka: carts go to the local
	// data dir, orders to memory.
	DemoMode bool   `envconfig:"DEMO_MODE" default:"true"`
	DataDir  string `envconfig:"DATA_DIR" default:"./data/carts"`

	// DemoFallback substitutes a synthesized confirmation when the
	// order store rejects a write, instead of failing the checkout.
	DemoFallback bool `envconfig:"DEMO_FALLBACK" default:"true"`

	DeliveryPrice         float64 `envconfig:"DELIVERY_PRICE" default:"35"`
	FreeShippingThreshold float64 `envconfig:"FREE_SHIPPING_THRESHOLD" default:"1000"`

	AWSRegion        string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	OrderTableName   string `envconfig:"ORDER_TABLE_NAME" default:"orders"`
	CartTableName    string `envconfig:"CART_TABLE_NAME" default:"carts"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""`
	KafkaBrokers     string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
