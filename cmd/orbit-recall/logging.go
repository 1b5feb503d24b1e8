package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFileName = "orbit-recall.log"
	maxLogSize  = 10 << 20 // Rotate past 10 MB
)

// setupLogging returns a JSON file logger in dir when debug is set, otherwise a no-op logger
// The stdlib logger is redirected into zap until the returned closer runs
func setupLogging(debug bool, dir string) (*zap.Logger, func(), error) {
	if !debug {
		logger := zap.NewNop()
		restore := zap.RedirectStdLog(logger)
		return logger, restore, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, logPath+".old"); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller())
	restore := zap.RedirectStdLog(logger)

	closer := func() {
		restore()
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closer, nil
}
