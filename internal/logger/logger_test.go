package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"crab-roguelike/internal/config"
)

func TestNewUsesConfiguredLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	cases := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"bogus", logrus.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tc.level)
			log := New(config.Log{}, &bytes.Buffer{})
			if log.GetLevel() != tc.want {
				t.Errorf("level = %v; want %v", log.GetLevel(), tc.want)
			}
		})
	}
}

func TestNewFromConfigWithoutEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")

	var buf bytes.Buffer
	log := New(config.Log{Level: "error", Format: "json"}, &buf)
	if log.GetLevel() != logrus.ErrorLevel {
		t.Errorf("level = %v; want error", log.GetLevel())
	}
	log.Error("boom")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("configured json format not used: %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")
	var buf bytes.Buffer
	log := New(config.Log{}, &buf)
	Component(log, "turn").WithField("turn", 3).Info("turn spent")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "turn" || entry["msg"] != "turn spent" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestTextFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_LEVEL", "info")
	var buf bytes.Buffer
	log := New(config.Log{}, &buf)
	Component(log, "ai").Info("wander")
	if !strings.Contains(buf.String(), "component=ai") {
		t.Errorf("missing component field: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing to see")
}
