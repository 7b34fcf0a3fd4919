package zap

import (
	"os"

	"hapsay-service/config"

	"github.com/natefinch/lumberjack"
	uzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Records go to stdout and, when LOG_FILE is
// set, to a size-rotated file as well. The logger is also installed as the
// zap global so packages without an injected logger can use zap.S().
func New(cfg *config.Config) (*uzap.SugaredLogger, error) {
	level := uzap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, err
	}

	encCfg := uzap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.IsProduction() {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   true,
		}
		fileEnc := zapcore.NewJSONEncoder(uzap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEnc, zapcore.AddSync(rotator), level))
	}

	logger := uzap.New(zapcore.NewTee(cores...), uzap.AddCaller()).
		With(uzap.String("service", cfg.ServiceName))
	uzap.ReplaceGlobals(logger)

	return logger.Sugar(), nil
}

// NewNop returns a logger that discards everything, for tests and tools.
func NewNop() *uzap.SugaredLogger {
	return uzap.NewNop().Sugar()
}
