// Package logger содержит общий логгер приложения.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack), и удобный метод для логирования итогов демонстрации.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/IvanChernomyrdin/go-songfactory/internal/config"
)

// Logger представляет обёртку над zap.Logger.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type Logger struct {
	*zap.Logger
}

// New создаёт файловый zap-логгер по настройкам из конфига.
//
// Для файла включена ротация (MaxSize/MaxBackups/MaxAge) и, по желанию, сжатие архивов.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func New(cfg config.LogConfig) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	if dir := filepath.Dir(cfg.File); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	encoder := zapcore.NewConsoleEncoder(encoderCfg)
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, level)
	return &Logger{Logger: zap.New(core, zap.AddCaller())}, nil
}

// Nop возвращает логгер, который ничего не пишет (для тестов и --quiet).
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// LogRun записывает структурированный итог одного прогона демонстрации.
//
// runID — идентификатор прогона,
// constructed/destroyed — количество событий создания и уничтожения,
// visited — сколько элементов посетила итерация,
// duration — длительность прогона.
func (l *Logger) LogRun(runID string, constructed, destroyed, visited int, duration time.Duration) {
	fields := []zap.Field{
		zap.String("run_id", runID),
		zap.Int("constructed", constructed),
		zap.Int("destroyed", destroyed),
		zap.Int("visited", visited),
		zap.Float64("duration_ms", float64(duration.Microseconds())/1000),
	}
	if constructed != destroyed {
		l.Warn("demo run leaked", fields...)
		return
	}
	l.Info("demo run", fields...)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
