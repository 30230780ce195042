package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version string      `env:"APP_VERSION" envDefault:"local"`
		Env     Environment `env:"APP_ENV" envDefault:"local"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Postgres struct {
		URL string `env:"POSTGRES_URL"`
	}

	Auth struct {
		// Пары username:password через запятую, пусто - аутентификация выключена
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:""`
		BasicClients       []ConfigBasicClient
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разбор клиентов basic-аутентификации
	cfg.Auth.BasicClients = []ConfigBasicClient{}
	if cfg.Auth.BasicClientsString != "" {
		clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
		for _, pair := range clientPairs {
			parts := strings.Split(pair, ":")
			if len(parts) == 2 {
				cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
					Username: parts[0],
					Password: parts[1],
				})
			}
		}
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}

func (c *Config) AuthEnabled() bool {
	return len(c.Auth.BasicClients) > 0
}
