package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Aurelian-Chen/NovasX/pkg/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
output:
  format: csv
server:
  address: ":9090"
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error: %v", err)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("logging level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Logging.Format != "json" {
		t.Errorf("logging format = %q, expected json", conf.Logging.Format)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("output format = %q, expected %q", conf.Output.Format, constants.OutputFormatCSV)
	}
	if conf.Server.Address != ":9090" {
		t.Errorf("server address = %q, expected :9090", conf.Server.Address)
	}
}

func TestLoadConfigurationMissingFileUsesDefaults(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if conf.Output.Format != constants.OutputFormatPretty {
		t.Errorf("default output format = %q, expected %q", conf.Output.Format, constants.OutputFormatPretty)
	}
	if conf.Server.Address != constants.DefaultServerAddress {
		t.Errorf("default server address = %q, expected %q", conf.Server.Address, constants.DefaultServerAddress)
	}
}

func TestApplyDefaultsFillsEmptyFields(t *testing.T) {
	conf := &Configuration{}
	conf.applyDefaults()
	if conf.Output.Format != constants.OutputFormatPretty {
		t.Errorf("output format = %q, expected %q", conf.Output.Format, constants.OutputFormatPretty)
	}
	if conf.Server.Address != constants.DefaultServerAddress {
		t.Errorf("server address = %q, expected %q", conf.Server.Address, constants.DefaultServerAddress)
	}
}
