/*
 * Copyright 2022 CECTC, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level of a log entry, ordered by severity.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
	PanicLevel
	FatalLevel
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case PanicLevel:
		return zapcore.PanicLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l Level) String() string {
	return l.zapLevel().String()
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	if l == nil {
		return fmt.Errorf("can't unmarshal a nil *Level")
	}
	switch string(bytes.ToLower(text)) {
	case "debug":
		*l = DebugLevel
	case "info", "":
		*l = InfoLevel
	case "warn", "warning":
		*l = WarnLevel
	case "error":
		*l = ErrorLevel
	case "panic":
		*l = PanicLevel
	case "fatal":
		*l = FatalLevel
	default:
		return fmt.Errorf("unrecognized log level: %q", text)
	}
	return nil
}

// Config describes where and how verbosely to log. An empty File logs to stderr.
type Config struct {
	Level      Level  `yaml:"level" mapstructure:"level"`
	File       string `yaml:"file" mapstructure:"file"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	JSON       bool   `yaml:"json" mapstructure:"json"`
}

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = newLogger(zapcore.AddSync(os.Stderr), false)
)

func newLogger(ws zapcore.WriteSyncer, json bool) *zap.SugaredLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	var encoder zapcore.Encoder
	if json {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}
	core := zapcore.NewCore(encoder, ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Init replaces the process logger.
func Init(cfg *Config) {
	if cfg == nil {
		return
	}
	var ws zapcore.WriteSyncer
	if cfg.File != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	} else {
		ws = zapcore.AddSync(os.Stderr)
	}
	mu.Lock()
	defer mu.Unlock()
	level.SetLevel(cfg.Level.zapLevel())
	logger = newLogger(ws, cfg.JSON)
}

// SetLevel changes the minimum level of the process logger.
func SetLevel(l Level) {
	level.SetLevel(l.zapLevel())
}

// Enabled reports whether entries at l are written.
func Enabled(l Level) bool {
	return level.Enabled(l.zapLevel())
}

// SetOutput redirects the process logger, used by tests to capture entries.
func SetOutput(ws zapcore.WriteSyncer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(ws, false)
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync flushes buffered entries.
func Sync() error {
	return current().Sync()
}

func Debug(args ...interface{}) { current().Debug(args...) }

func Debugf(format string, args ...interface{}) { current().Debugf(format, args...) }

func Info(args ...interface{}) { current().Info(args...) }

func Infof(format string, args ...interface{}) { current().Infof(format, args...) }

func Warn(args ...interface{}) { current().Warn(args...) }

func Warnf(format string, args ...interface{}) { current().Warnf(format, args...) }

func Error(args ...interface{}) { current().Error(args...) }

func Errorf(format string, args ...interface{}) { current().Errorf(format, args...) }

func Panic(args ...interface{}) { current().Panic(args...) }

func Panicf(format string, args ...interface{}) { current().Panicf(format, args...) }

func Fatal(args ...interface{}) { current().Fatal(args...) }

func Fatalf(format string, args ...interface{}) { current().Fatalf(format, args...) }
