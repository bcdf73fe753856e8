package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ocevave/ocevave/internal/config"
	log "github.com/sirupsen/logrus"
)

func TestConfigureJSONToStdout(t *testing.T) {
	logger := log.New()
	var buf bytes.Buffer

	closer, errSetup := configure(logger, config.LogConfig{Level: "debug", Format: "json"}, &buf)
	if errSetup != nil {
		t.Fatalf("configure: %v", errSetup)
	}
	defer closer.Close()

	logger.WithField("order_number", "ORD-1").Debug("order created")
	out := buf.String()
	if !strings.Contains(out, `"order_number":"ORD-1"`) {
		t.Fatalf("expected json field in output, got %q", out)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	if _, errSetup := configure(log.New(), config.LogConfig{Level: "loud"}, &bytes.Buffer{}); errSetup == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestConfigureWritesRotatedFile(t *testing.T) {
	logger := log.New()
	path := filepath.Join(t.TempDir(), "logs", "server.log")

	closer, errSetup := configure(logger, config.LogConfig{File: path, MaxSizeMB: 1}, &bytes.Buffer{})
	if errSetup != nil {
		t.Fatalf("configure: %v", errSetup)
	}
	logger.Info("hello file")
	if errClose := closer.Close(); errClose != nil {
		t.Fatalf("close: %v", errClose)
	}

	data, errRead := os.ReadFile(path)
	if errRead != nil {
		t.Fatalf("read log file: %v", errRead)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("expected message in log file, got %q", string(data))
	}
}
