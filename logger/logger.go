/*
 * Copyright 2025 The RuleGo Authors.
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

// Package logger provides the leveled logging used by the translator.
// Output backends are pluggable; the default writes to stderr at WARN level.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level defines log levels
type Level int32

const (
	// DEBUG logs every produced fragment and parameter table
	DEBUG Level = iota
	// INFO logs informational messages
	INFO
	// WARN logs failed translations
	WARN
	// ERROR logs errors only
	ERROR
	// OFF disables logging
	OFF
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel resolves a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	}
	return OFF, fmt.Errorf("unknown log level %q", s)
}

// Logger is the printf-style logging interface accepted by the translator.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	// SetLevel changes the minimum level written
	SetLevel(level Level)
}

// writerLogger writes "[timestamp] [LEVEL] message" lines. It is safe for
// concurrent use.
type writerLogger struct {
	level  atomic.Int32
	mu     sync.Mutex
	logger *log.Logger
}

// NewLogger creates a logger writing to output.
//
// Example:
//
//	log := NewLogger(DEBUG, os.Stderr)
//	log.Debug("filter %s -> %s", alias, text)
func NewLogger(level Level, output io.Writer) Logger {
	l := &writerLogger{logger: log.New(output, "", 0)}
	l.level.Store(int32(level))
	return l
}

func (l *writerLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *writerLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *writerLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *writerLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *writerLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *writerLogger) log(level Level, format string, args ...interface{}) {
	threshold := Level(l.level.Load())
	if threshold == OFF || level < threshold {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	line := fmt.Sprintf("[%s] [%s] %s", timestamp, level, fmt.Sprintf(format, args...))
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Println(line)
}

type discardLogger struct{}

// NewDiscardLogger creates a logger that drops everything.
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(format string, args ...interface{}) {}
func (discardLogger) Info(format string, args ...interface{})  {}
func (discardLogger) Warn(format string, args ...interface{})  {}
func (discardLogger) Error(format string, args ...interface{}) {}
func (discardLogger) SetLevel(level Level)                     {}

type holder struct{ Logger }

var defaultInstance atomic.Value

func init() {
	defaultInstance.Store(holder{NewLogger(WARN, os.Stderr)})
}

// SetDefault replaces the package default logger; nil installs a discard logger.
func SetDefault(logger Logger) {
	if logger == nil {
		logger = NewDiscardLogger()
	}
	defaultInstance.Store(holder{logger})
}

// GetDefault returns the package default logger.
func GetDefault() Logger {
	return defaultInstance.Load().(holder).Logger
}

// Debug logs through the default logger.
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info logs through the default logger.
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn logs through the default logger.
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error logs through the default logger.
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
