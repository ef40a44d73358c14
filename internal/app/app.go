package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath - переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "STOREFRONT_CONFIG"

type Config struct {
	CfgClient ConfigClient `yaml:"client"`
	CfgServer ConfigServer `yaml:"server"`
}

// ConfigClient - настройки клиента витрины (cmd/storefront)
type ConfigClient struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// Storage - "file", "redis" или "memory"
	Storage     string      `yaml:"storage"`
	StoragePath string      `yaml:"storage_path"`
	Redis       ConfigRedis `yaml:"redis"`
}

// ConfigServer - настройки эталонного бэкенда (cmd/cartd)
type ConfigServer struct {
	CfgDB           ConfigDB      `yaml:"db"`
	Redis           ConfigRedis   `yaml:"redis"`
	Kafka           ConfigKafka   `yaml:"kafka"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	Secret          string        `yaml:"secret"`
	ServerPort      string        `yaml:"srv_port"`
	SessionDuration time.Duration `yaml:"session_duration"`
	SecureCookie    bool          `yaml:"secure_cookie"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigRedis struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	Namespace string `yaml:"namespace"`
}

type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// NewConfig читает yaml-конфиг и проставляет значения по умолчанию
func NewConfig(configPath string) (*Config, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		configPath = p
	}

	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	c.setDefaults()
	return &c, nil
}

func (c *Config) setDefaults() {
	if c.CfgClient.BaseURL == "" {
		c.CfgClient.BaseURL = "http://localhost:8080"
	}
	if c.CfgClient.Timeout == 0 {
		c.CfgClient.Timeout = 15 * time.Second
	}
	if c.CfgClient.Storage == "" {
		c.CfgClient.Storage = "file"
	}
	if c.CfgServer.ServerPort == "" {
		c.CfgServer.ServerPort = ":8080"
	}
	if c.CfgServer.SessionDuration == 0 {
		c.CfgServer.SessionDuration = 24 * time.Hour
	}
	if c.CfgServer.Kafka.Topic == "" {
		c.CfgServer.Kafka.Topic = "storefront-events"
	}
}
