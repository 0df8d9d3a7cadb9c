package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type CommissionConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	CommissionDB  `yaml:"commission_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	WalletService `yaml:"wallet-service"`
	Commission    `yaml:"commission"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type CommissionDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	InvoiceTopic    string `yaml:"invoice_topic" env-default:"invoice-events"`
	CommissionTopic string `yaml:"commission_topic" env-default:"commission-events"`
	GroupID         string `yaml:"group_id" env-default:"commission-ledger-service"`
}

type WalletService struct {
	// Mode "db" keeps the wallet ledger in the service's own store;
	// "http" delegates to an external wallet service.
	Mode string `yaml:"mode" env-default:"db"`
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Commission struct {
	// Fallback cycle length when the coach's organization has none set.
	DefaultCycleDays int `yaml:"default_cycle_days" env-default:"90"`
}

func MustLoad() *CommissionConfig {

	// Processing env config variable and file
	configPath := os.Getenv("COMMISSION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("COMMISSION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CommissionConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
