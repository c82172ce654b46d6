//go:build !integration && !e2e

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reactor.de/timehandler/internal/domain"
)

func newUpdater(path string) (*YAMLConfigUpdater, *YAMLConfigLoader) {
	loader := NewYAMLConfigLoader(path)
	return NewYAMLConfigUpdater(path, loader), loader
}

func TestSetCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "timehandler.yaml")
	updater, loader := newUpdater(path)

	if err := updater.Set("formats.date", "%d/%m/%Y"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := updater.Set("timezone", "Asia/Tokyo"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load after Set: %v", err)
	}
	if cfg.DatePattern() != "%d/%m/%Y" || cfg.Timezone != "Asia/Tokyo" {
		t.Errorf("config after Set = %+v", cfg)
	}
}

func TestSetPreservesComments(t *testing.T) {
	path := writeConfig(t, `# team defaults
timezone: UTC # keep servers on UTC
formats:
  # used in reports
  date: "%Y-%m-%d"
`)
	updater, loader := newUpdater(path)

	if err := updater.Set("timezone", "Europe/Berlin"); err != nil {
		t.Fatalf("Set timezone: %v", err)
	}
	if err := updater.Set("formats.time", "%H:%M"); err != nil {
		t.Fatalf("Set formats.time: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	for _, want := range []string{"# team defaults", "# keep servers on UTC", "# used in reports", "Europe/Berlin", `"%H:%M"`} {
		if !strings.Contains(content, want) {
			t.Errorf("updated file lacks %q:\n%s", want, content)
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timezone != "Europe/Berlin" || cfg.TimePattern() != "%H:%M" || cfg.DatePattern() != "%Y-%m-%d" {
		t.Errorf("config after Set = %+v", cfg)
	}
}

func TestSetFillsNullMapping(t *testing.T) {
	path := writeConfig(t, "formats:\n")
	updater, loader := newUpdater(path)

	if err := updater.Set("formats.timestamp", "%F %T"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TimestampPattern() != "%F %T" {
		t.Errorf("TimestampPattern() = %q", cfg.TimestampPattern())
	}
}

func TestSetRejects(t *testing.T) {
	original := "timezone: UTC\n"
	path := writeConfig(t, original)
	updater, _ := newUpdater(path)

	if err := updater.Set("colour", "blue"); !errors.Is(err, domain.ErrUnknownKey) {
		t.Errorf("unknown key error = %v, want ErrUnknownKey", err)
	}
	if err := updater.Set("timezone", "Nowhere/Land"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad zone error = %v, want ErrValidation", err)
	}
	if err := updater.Set("formats.date", "%Y-%Q"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad pattern error = %v, want ErrValidation", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != original {
		t.Errorf("rejected updates must leave the file untouched, got:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestSetRejectsScalarParent(t *testing.T) {
	path := writeConfig(t, "formats: short\n")
	updater, _ := newUpdater(path)
	if err := updater.Set("formats.date", "%Y"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("scalar parent error = %v, want ErrValidation", err)
	}
}
