// Package config отвечает за:
// - чтение songfactory.yaml (файл не обязателен)
// - подстановку переменных окружения вида ${SONGFACTORY_LOG_LEVEL}
// - проставление дефолтов
// - валидацию (чтобы демо не стартовало с кривыми настройками)
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	serr "github.com/IvanChernomyrdin/go-songfactory/internal/shared/errors"
)

// Порядок уничтожения элементов контейнера
const (
	OrderForward = "forward"
	OrderReverse = "reverse"
)

// Куда пишем текстовый trace
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputNone   = "none"
)

// Config — корневая структура конфига.
type Config struct {
	Env   string      `yaml:"env"` // dev|prod
	Log   LogConfig   `yaml:"log"`
	Trace TraceConfig `yaml:"trace"`
	Arena ArenaConfig `yaml:"arena"`
	Demo  DemoConfig  `yaml:"demo"`
}

// LogConfig — настройки логирования (zap + lumberjack).
type LogConfig struct {
	Level      string `yaml:"level"`  // debug|info|warn|error
	Format     string `yaml:"format"` // json|console
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// TraceConfig — поток событий создания/уничтожения.
type TraceConfig struct {
	Output       string `yaml:"output"`        // stdout|stderr|none
	Color        string `yaml:"color"`         // auto|always|never
	DestroyOrder string `yaml:"destroy_order"` // forward|reverse
	Log          bool   `yaml:"log"`           // дублировать события в лог
}

// ArenaConfig — ограничения арены.
type ArenaConfig struct {
	MaxSlots int `yaml:"max_slots"` // 0 — без ограничения
}

// DemoConfig — данные для демонстрации.
type DemoConfig struct {
	Factory SongConfig   `yaml:"factory"`
	Songs   []SongConfig `yaml:"songs"`
}

type SongConfig struct {
	Artist string `yaml:"artist"`
	Title  string `yaml:"title"`
}

// Default возвращает конфиг без файла: только дефолты.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, проставляет дефолты и валидирует.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	raw = []byte(ExpandEnvStrict(string(raw)))

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// Validate() потом упадёт на неизвестном значении.
func ExpandEnvStrict(s string) string {
	re := regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "runtime/logs/songfactory.log"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 100
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 10
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 30
	}
	if cfg.Trace.Output == "" {
		cfg.Trace.Output = OutputStdout
	}
	if cfg.Trace.Color == "" {
		cfg.Trace.Color = "auto"
	}
	if cfg.Trace.DestroyOrder == "" {
		cfg.Trace.DestroyOrder = OrderForward
	}
	if cfg.Demo.Factory.Artist == "" && cfg.Demo.Factory.Title == "" {
		cfg.Demo.Factory = SongConfig{Artist: "Michael Jackson", Title: "Beat It"}
	}
	if len(cfg.Demo.Songs) == 0 {
		cfg.Demo.Songs = []SongConfig{
			{Artist: "Bob Dylan", Title: "The Times They Are A Changing"},
			{Artist: "Cyndi Lauper", Title: "Time After Time"},
			{Artist: "Garrison Keillor", Title: "The Mira Chanted"},
		}
	}
}

// Validate проверяет, что конфиг заполнен корректно.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level должен быть debug|info|warn|error (сейчас %q)", serr.ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("%w: log.format должен быть json|console (сейчас %q)", serr.ErrInvalidConfig, c.Log.Format)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: параметры ротации лога не могут быть отрицательными", serr.ErrInvalidConfig)
	}

	switch c.Trace.Output {
	case OutputStdout, OutputStderr, OutputNone:
	default:
		return fmt.Errorf("%w: trace.output должен быть stdout|stderr|none (сейчас %q)", serr.ErrInvalidConfig, c.Trace.Output)
	}
	switch c.Trace.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: trace.color должен быть auto|always|never (сейчас %q)", serr.ErrInvalidConfig, c.Trace.Color)
	}
	if c.Trace.DestroyOrder != OrderForward && c.Trace.DestroyOrder != OrderReverse {
		return fmt.Errorf("%w: trace.destroy_order должен быть forward|reverse (сейчас %q)", serr.ErrInvalidConfig, c.Trace.DestroyOrder)
	}

	if c.Arena.MaxSlots < 0 {
		return fmt.Errorf("%w: arena.max_slots должен быть >= 0 (сейчас %d)", serr.ErrInvalidConfig, c.Arena.MaxSlots)
	}
	return nil
}

// ApplyEnvOverrides даёт переопределить часть настроек через окружение без ${...} в yaml.
// Например SONGFACTORY_TRACE_ORDER=reverse.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SONGFACTORY_TRACE_ORDER"); v != "" {
		c.Trace.DestroyOrder = strings.ToLower(v)
	}
	if v := os.Getenv("SONGFACTORY_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("SONGFACTORY_MAX_SLOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Arena.MaxSlots = n
		}
	}
}
