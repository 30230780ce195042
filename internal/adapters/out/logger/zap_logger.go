package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ligovsky/booking-slots-service/internal/core/ports/out"
)

// ZapLogger реализует LoggerPort поверх zap.
type ZapLogger struct {
	logger *zap.Logger
	module string
}

// NewZapLogger строит логгер в зависимости от окружения:
// production - json, иначе - цветной dev-вывод.
func NewZapLogger(env string) (*ZapLogger, error) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{logger: zapLogger}, nil
}

// NewZapLoggerWith оборачивает готовый zap-логгер, удобно для тестов.
func NewZapLoggerWith(zapLogger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: zapLogger}
}

func (l *ZapLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return &ZapLogger{
		logger: l.logger.With(toZapFields(fields)...),
		module: l.module,
	}
}

func (l *ZapLogger) WithModule(module string) out.LoggerPort {
	return &ZapLogger{
		logger: l.logger,
		module: module,
	}
}

func (l *ZapLogger) Debug(event string, fields out.LogFields) {
	l.logger.Debug(event, l.eventFields(fields)...)
}

func (l *ZapLogger) Info(event string, fields out.LogFields) {
	l.logger.Info(event, l.eventFields(fields)...)
}

func (l *ZapLogger) Warn(event string, fields out.LogFields) {
	l.logger.Warn(event, l.eventFields(fields)...)
}

func (l *ZapLogger) Error(event string, fields out.LogFields) {
	l.logger.Error(event, l.eventFields(fields)...)
}

func (l *ZapLogger) eventFields(fields out.LogFields) []zap.Field {
	module := l.module
	if module == "" {
		module = "unknown"
	}

	zapFields := make([]zap.Field, 0, len(fields)+1)
	zapFields = append(zapFields, zap.String("module", module))
	zapFields = append(zapFields, toZapFields(fields)...)
	return zapFields
}

func toZapFields(fields out.LogFields) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}
