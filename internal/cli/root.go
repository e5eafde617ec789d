// Package cli реализует командный интерфейс songfactory.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - загрузку .env и конфигурации (файл не обязателен);
//   - создание логгера и trace-потока;
//   - запуск демонстрации и вывод результата.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-songfactory/internal/config"
	"github.com/IvanChernomyrdin/go-songfactory/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-songfactory/internal/trace"
)

// App содержит состояние CLI, разделяемое между командами.
type App struct {
	// ConfigPath — путь к YAML-конфигу. Пустой — только дефолты.
	ConfigPath string
	// Config — загруженный конфиг, заполняется в PersistentPreRunE.
	Config *config.Config
	// Logger — файловый логгер, заполняется в PersistentPreRunE.
	Logger *logger.Logger
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются командой version.
// В PersistentPreRunE загружаются .env, конфиг и создаётся логгер.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "songfactory",
		Short: "songfactory — демонстрация эксклюзивного владения объектами",
		Long: `songfactory.

Команды:
  demo      Полная демонстрация: фабрика, Vector, обход по ссылкам
  make      Один вызов фабрики: создать песню, показать, уничтожить
  version   Версия и дата сборки

Примеры:
  songfactory demo
  songfactory demo --order reverse
  songfactory demo --config ./configs/songfactory.yaml
  songfactory make --artist "Michael Jackson" --title "Beat It"
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}

			cfg, err := loadConfig(app.ConfigPath)
			if err != nil {
				return err
			}
			app.Config = cfg

			log, err := NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			app.Logger = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "path to songfactory.yaml (optional)")

	cmd.AddCommand(NewDemoCmd(app))
	cmd.AddCommand(NewMakeCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке сообщение выводится в stderr, процесс завершается с кодом 1.
// Так же обрабатывается и ErrAllocation: она фатальна.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newTracer собирает trace-поток по конфигу: текст в stdout/stderr команды
// и, если включено, структурированные записи в лог.
func newTracer(cmd *cobra.Command, cfg *config.Config, log *logger.Logger) trace.Tracer {
	var w io.Writer
	switch cfg.Trace.Output {
	case config.OutputStdout:
		w = cmd.OutOrStdout()
	case config.OutputStderr:
		w = cmd.ErrOrStderr()
	}

	var tracers []trace.Tracer
	if w != nil {
		f, _ := w.(*os.File)
		tracers = append(tracers, trace.NewWriter(w, trace.UseColor(cfg.Trace.Color, f)))
	}
	if cfg.Trace.Log && log != nil {
		tracers = append(tracers, trace.NewZap(log.Logger))
	}
	return trace.Multi(tracers...)
}
