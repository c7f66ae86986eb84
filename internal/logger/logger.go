// Package logger builds the structured logger used across the game.
// The terminal belongs to the renderer, so logs go to a file or other writer.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"crab-roguelike/internal/config"
)

// New returns a logger writing to out. LOG_LEVEL and LOG_FORMAT override
// the configured level and format when set.
func New(cfg config.Log, out io.Writer) *logrus.Logger {
	log := logrus.New()

	levelName := cfg.Level
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		levelName = env
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := cfg.Format
	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = env
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	log.SetOutput(out)
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Component tags entries with the subsystem that produced them.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithFields(logrus.Fields{"component": name})
}
