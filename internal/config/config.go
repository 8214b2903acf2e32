// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
//
// Каждый ключ имеет встроенное значение по умолчанию: порядок разрешения
// "значение пользователя -> значение по умолчанию" (наследие настроек
// настольного клиента).
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env           string              `yaml:"env" env:"ENV" env-default:"local"`
	HTTP          HTTPConfig          `yaml:"http"`
	DB            DBConfig            `yaml:"db"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Timeouts      TimeoutConfig       `yaml:"timeouts"`
	FirstRun      bool                `yaml:"first_run" env:"FIRST_RUN" env-default:"true"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
// Набор ключей повторяет настройки настольного клиента; Driver —
// аналог прежнего qsql_driver, поддерживается только "postgres".
type DBConfig struct {
	HostName     string `yaml:"host_name" env:"DB_HOST_NAME" env-default:"localhost"`
	Port         int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	DatabaseName string `yaml:"database_name" env:"DB_DATABASE_NAME" env-default:"phone_book"`
	Username     string `yaml:"username" env:"DB_USERNAME" env-default:"phone_book"`
	Password     string `yaml:"password" env:"DB_PASSWORD" env-default:""`
	Driver       string `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
}

// URL собирает DSN для pgx из отдельных ключей подключения.
func (d DBConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.HostName, fmt.Sprintf("%d", d.Port)),
		Path:   "/" + d.DatabaseName,
	}
	if d.Username != "" {
		u.User = url.UserPassword(d.Username, d.Password)
	}

	return u.String()
}

// NotificationsConfig — пользовательские настройки уведомлений.
type NotificationsConfig struct {
	Birthdays BirthdaysConfig `yaml:"birthdays"`
}

// BirthdaysConfig — окно напоминаний о днях рождения.
// Единственный поддерживаемый тип диапазона — "day" (значение в днях);
// неизвестный тип — фатальная ошибка конфигурации, а не рабочий исход.
type BirthdaysConfig struct {
	TurnedOn   bool   `yaml:"turned_on" env:"NOTIFICATIONS_BIRTHDAYS_TURNED_ON" env-default:"true"`
	RangeType  string `yaml:"range_type" env:"NOTIFICATIONS_BIRTHDAYS_RANGE_TYPE" env-default:"day"`
	RangeValue int    `yaml:"range_value" env:"NOTIFICATIONS_BIRTHDAYS_RANGE_VALUE" env-default:"7"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	switch {
	// 1) Явный путь.
	case path != "":
		if _, err := tryRead(path); err != nil {
			return nil, err
		}

	// 2) CONFIG_PATH.
	case os.Getenv("CONFIG_PATH") != "":
		if _, err := tryRead(os.Getenv("CONFIG_PATH")); err != nil {
			return nil, err
		}

	// 3) ./local.yaml.
	default:
		if _, err := os.Stat("local.yaml"); err == nil {
			if _, err := tryRead("local.yaml"); err != nil {
				return nil, err
			}
			break
		}

		// 4) Только ENV.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate отсекает заведомо нерабочие конфигурации на старте.
func (c *Config) validate() error {
	if c.DB.Driver != "postgres" {
		return fmt.Errorf("unsupported db driver %q (only \"postgres\")", c.DB.Driver)
	}

	if c.Notifications.Birthdays.RangeType != "day" {
		return fmt.Errorf("unknown birthdays range type %q (only \"day\")", c.Notifications.Birthdays.RangeType)
	}

	if c.Notifications.Birthdays.RangeValue < 0 {
		return fmt.Errorf("birthdays range value must be non-negative, got %d", c.Notifications.Birthdays.RangeValue)
	}

	return nil
}
