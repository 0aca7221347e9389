// Package logger zap 日志器构造
package logger

import (
	"os"

	"github.com/haierkeys/link-moodboard-service/pkg/fileurl"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 日志配置
type Config struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string
	// File 日志文件路径，为空则只输出到 stderr
	File string
	// Production 是否使用 JSON 输出
	Production bool
}

// NewLogger creates the main logger from config
// NewLogger 根据配置创建主日志器
func NewLogger(c Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		level = zapcore.WarnLevel
	}

	var cores []zapcore.Core

	// Console output
	// 控制台输出
	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cores = append(cores, zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleConfig),
		zapcore.Lock(os.Stderr),
		level,
	))

	// File output
	// 文件输出
	if c.File != "" {
		if err := fileurl.CreatePath(c.File, os.ModePerm); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(c.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}

		fileConfig := zap.NewProductionEncoderConfig()
		fileConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		var fileEncoder zapcore.Encoder
		if c.Production {
			fileEncoder = zapcore.NewJSONEncoder(fileConfig)
		} else {
			fileEncoder = zapcore.NewConsoleEncoder(fileConfig)
		}

		cores = append(cores, zapcore.NewCore(
			fileEncoder,
			zapcore.Lock(file),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
