package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bartossh/KeypairTransform/logger"
)

// Level is a logging severity. Records below the Helper level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"debug", "info", "warn", "error", "fatal"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelFatal {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses level name. Empty name is the error level.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LevelError, nil
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelError, fmt.Errorf("unknown logging level %q", name)
}

// Config holds configuration of the logging Helper.
type Config struct {
	Level string `yaml:"level"` // one of debug, info, warn, error, fatal
}

// Helper helps with writing logs to io.Writers.
// Helper implements logger.Logger interface.
// Writing is synchronous so no record is lost when the process exits right after logging.
type Helper struct {
	callOnErr func(error)
	level     Level
	writers   []io.Writer
}

// New creates new Helper.
func New(callOnErr func(error), level Level, writers ...io.Writer) Helper {
	return Helper{callOnErr: callOnErr, level: level, writers: writers}
}

// Debug writes debug log.
func (h Helper) Debug(msg string) {
	h.write(LevelDebug, msg)
}

// Info writes info log.
func (h Helper) Info(msg string) {
	h.write(LevelInfo, msg)
}

// Warn writes warning log.
func (h Helper) Warn(msg string) {
	h.write(LevelWarn, msg)
}

// Error writes error log.
func (h Helper) Error(msg string) {
	h.write(LevelError, msg)
}

// Fatal writes fatal log.
func (h Helper) Fatal(msg string) {
	h.write(LevelFatal, msg)
}

func (h Helper) write(level Level, msg string) {
	if level < h.level {
		return
	}
	l := logger.Log{
		ID:        primitive.NewObjectID(),
		Level:     level.String(),
		Msg:       msg,
		CreatedAt: time.Now(),
	}
	raw, err := json.Marshal(&l)
	if err != nil {
		h.onErr(err)
		return
	}
	for _, w := range h.writers {
		if _, err := w.Write(raw); err != nil {
			h.onErr(err)
		}
	}
}

func (h Helper) onErr(err error) {
	if h.callOnErr != nil {
		h.callOnErr(err)
	}
}
